package users

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash = %q, want $argon2id$ prefix", hash)
	}

	u := User{PasswordHash: hash}

	ok, err := u.VerifyPassword("hunter2!")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, err = u.VerifyPassword("hunter3!")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same password")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("same password")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt not applied")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	hashes := []string{
		"",
		"plaintext",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=65536,t=1,p=4$notbase64!!$also-not",
		"$argon2id$v=19$bad-params$c2FsdA$aGFzaA",
	}
	for _, h := range hashes {
		u := User{PasswordHash: h}
		if _, err := u.VerifyPassword("anything"); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("VerifyPassword with hash %q: err = %v, want ErrMalformedHash", h, err)
		}
	}
}

func TestUserHelpers(t *testing.T) {
	u := User{FirstName: "Thandi", LastName: "Nkosi", Role: RoleCustomer}
	if got := u.FullName(); got != "Thandi Nkosi" {
		t.Errorf("FullName() = %q", got)
	}
	if u.IsAdmin() {
		t.Error("customer reported as admin")
	}

	u.Role = RoleAdmin
	if !u.IsAdmin() {
		t.Error("admin not reported as admin")
	}
}
