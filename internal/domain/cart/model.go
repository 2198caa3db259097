package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrOutOfStock      = errors.New("item not in stock")
)

// Cart belongs to a session; the user link is optional so guests can
// shop before registering.
type Cart struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Item struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	WoodPlankID uuid.UUID
	Quantity    int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AddItemRequest struct {
	WoodPlankID uuid.UUID
	Quantity    int32
}

type Summary struct {
	CartID     uuid.UUID
	Items      []ItemSummary
	TotalItems int32
	Subtotal   decimal.Decimal
}

type ItemSummary struct {
	ID          uuid.UUID
	WoodPlankID uuid.UUID
	Name        string
	Quantity    int32
	Price       decimal.Decimal
	ImageURL    string
	Subtotal    decimal.Decimal
}
