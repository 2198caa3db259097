package planks

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validDraft() NewWoodPlank {
	return NewWoodPlank{
		Name:          "23 x 100 x 2500 Baltic",
		Category:      CategoryLongTimber,
		WoodType:      WoodBaltic,
		Grade:         GradeA,
		Finish:        FinishRough,
		ThicknessMM:   23,
		WidthMM:       100,
		LengthMM:      2500,
		Price:         decimal.NewFromInt(40),
		StockQuantity: 10,
		UnitOfMeasure: "EA",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewWoodPlank)
		wantErr error
	}{
		{"valid", func(p *NewWoodPlank) {}, nil},
		{"zero length", func(p *NewWoodPlank) { p.LengthMM = 0 }, ErrInvalidDimensions},
		{"negative width", func(p *NewWoodPlank) { p.WidthMM = -1 }, ErrInvalidDimensions},
		{"zero thickness", func(p *NewWoodPlank) { p.ThicknessMM = 0 }, ErrInvalidDimensions},
		{"zero price", func(p *NewWoodPlank) { p.Price = decimal.Zero }, ErrInvalidPrice},
		{"negative price", func(p *NewWoodPlank) { p.Price = decimal.NewFromInt(-5) }, ErrInvalidPrice},
		{"negative stock", func(p *NewWoodPlank) { p.StockQuantity = -1 }, ErrInvalidStock},
		{"zero stock ok", func(p *NewWoodPlank) { p.StockQuantity = 0 }, nil},
	}

	for _, tt := range tests {
		p := validDraft()
		tt.mutate(&p)
		if err := p.Validate(); err != tt.wantErr {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestGenerateSKU(t *testing.T) {
	p := validDraft()
	if got := p.GenerateSKU(); got != "LT-A-23x100x2500" {
		t.Errorf("GenerateSKU() = %q, want LT-A-23x100x2500", got)
	}

	// Deterministic.
	if p.GenerateSKU() != p.GenerateSKU() {
		t.Error("GenerateSKU() not deterministic")
	}

	// Wood type and finish are not encoded: variants collide by design.
	q := validDraft()
	q.WoodType = WoodPine
	q.Finish = FinishPlanedAllRound
	if q.GenerateSKU() != p.GenerateSKU() {
		t.Errorf("sku changed with wood type/finish: %q vs %q", q.GenerateSKU(), p.GenerateSKU())
	}

	// An existing SKU is kept as-is.
	r := validDraft()
	r.SKU = "CUSTOM-1"
	if got := r.GenerateSKU(); got != "CUSTOM-1" {
		t.Errorf("GenerateSKU() = %q, want CUSTOM-1", got)
	}
}

func TestGenerateSKU_Codes(t *testing.T) {
	tests := []struct {
		category ProductCategory
		grade    ProductGrade
		want     string
	}{
		{CategoryHeavyDutyBox, GradeStandard, "HDB-S-23x100x2500"},
		{CategoryPallet, GradeStandard, "PAL-S-23x100x2500"},
		{CategoryShortTimber, GradeB, "ST-B-23x100x2500"},
		{CategoryPlanedTimber, GradeStandard, "PT-S-23x100x2500"},
		{CategoryMachinedTimber, GradeStandard, "MT-S-23x100x2500"},
		{CategoryComponent, GradeStandard, "COMP-S-23x100x2500"},
		{CategoryLaminatedTable, GradeStandard, "LAM-S-23x100x2500"},
		{CategoryPlywood, GradeStandard, "PLY-S-23x100x2500"},
		{CategoryCustom, GradeStandard, "CUST-S-23x100x2500"},
	}
	for _, tt := range tests {
		p := validDraft()
		p.Category = tt.category
		p.Grade = tt.grade
		if got := p.GenerateSKU(); got != tt.want {
			t.Errorf("GenerateSKU(%s,%s) = %q, want %q", tt.category, tt.grade, got, tt.want)
		}
	}
}

func TestParseFromDescription(t *testing.T) {
	p, ok := ParseFromDescription("23 X 100 X 2500 BALTIC EA R40")
	if !ok {
		t.Fatal("expected a product")
	}
	if p.ThicknessMM != 23 || p.WidthMM != 100 || p.LengthMM != 2500 {
		t.Errorf("dimensions = %dx%dx%d, want 23x100x2500", p.ThicknessMM, p.WidthMM, p.LengthMM)
	}
	if p.WoodType != WoodBaltic {
		t.Errorf("wood type = %s, want baltic", p.WoodType)
	}
	// Length > 2000 and no category keyword.
	if p.Category != CategoryLongTimber {
		t.Errorf("category = %s, want longtimber", p.Category)
	}
	if p.Grade != GradeA {
		t.Errorf("grade = %s, want agrade (no B marker)", p.Grade)
	}
}

func TestParseFromDescription_Variants(t *testing.T) {
	tests := []struct {
		name  string
		desc  string
		check func(t *testing.T, p NewWoodPlank)
	}{
		{"bare integer price", "23 X 100 X 2500 BALTIC EA 40", func(t *testing.T, p NewWoodPlank) {
			if p.Price.String() != "40" {
				t.Errorf("price = %s, want 40", p.Price)
			}
		}},
		{"B grade marker", "23 X 100 X 2500 B BALTIC R30", func(t *testing.T, p NewWoodPlank) {
			if p.Grade != GradeB {
				t.Errorf("grade = %s, want bgrade", p.Grade)
			}
		}},
		{"PBS finish", "23 X 100 X 1800 PBS PINE R60", func(t *testing.T, p NewWoodPlank) {
			if p.Finish != FinishPlanedBothSides {
				t.Errorf("finish = %s, want planedbothsides", p.Finish)
			}
		}},
		{"pallet keyword", "22 X 1000 X 1200 PALLET EA R150", func(t *testing.T, p NewWoodPlank) {
			if p.Category != CategoryPallet {
				t.Errorf("category = %s, want pallet", p.Category)
			}
		}},
		{"box keyword", "22 X 400 X 600 BOX PINE R95", func(t *testing.T, p NewWoodPlank) {
			if p.Category != CategoryHeavyDutyBox {
				t.Errorf("category = %s, want heavydutybox", p.Category)
			}
		}},
		{"short timber by length", "23 X 100 X 1200 BALTIC EA R20", func(t *testing.T, p NewWoodPlank) {
			if p.Category != CategoryShortTimber {
				t.Errorf("category = %s, want shorttimber", p.Category)
			}
		}},
	}

	for _, tt := range tests {
		p, ok := ParseFromDescription(tt.desc)
		if !ok {
			t.Errorf("%s: ParseFromDescription(%q) rejected", tt.name, tt.desc)
			continue
		}
		tt.check(t, p)
	}
}

func TestParseFromDescription_Rejects(t *testing.T) {
	descs := []string{
		"",
		"23 X 100 X 2500", // five tokens
		"a X b X c BALTIC R40",
		"23 X 100 X 2500 BALTIC PRICE",
	}
	for _, d := range descs {
		if _, ok := ParseFromDescription(d); ok {
			t.Errorf("ParseFromDescription(%q) parsed, want reject", d)
		}
	}
}

func TestPlankHelpers(t *testing.T) {
	p := WoodPlank{
		ThicknessMM:   23,
		WidthMM:       100,
		LengthMM:      2500,
		Price:         decimal.NewFromInt(40),
		StockQuantity: 10,
	}
	if !p.IsInStock() {
		t.Error("IsInStock() = false, want true")
	}
	if got := p.Volume(); got != 23*100*2500 {
		t.Errorf("Volume() = %d, want %d", got, 23*100*2500)
	}
	if got := p.SurfaceArea(); got != 2*(2500*100+2500*23+100*23) {
		t.Errorf("SurfaceArea() = %d", got)
	}
	if got := p.DimensionsString(); got != "23 x 100 x 2500" {
		t.Errorf("DimensionsString() = %q", got)
	}
	if got := p.PriceString(); got != "R 40" {
		t.Errorf("PriceString() = %q", got)
	}

	p.StockQuantity = 0
	if p.IsInStock() {
		t.Error("IsInStock() = true, want false")
	}
}

func TestParseTaxonomy(t *testing.T) {
	if _, err := ParseWoodType("baltic"); err != nil {
		t.Errorf("ParseWoodType(baltic) error = %v", err)
	}
	if _, err := ParseWoodType("plastic"); err == nil {
		t.Error("ParseWoodType(plastic) expected error")
	}
	if _, err := ParseProductCategory("longtimber"); err != nil {
		t.Errorf("ParseProductCategory(longtimber) error = %v", err)
	}
	if _, err := ParseProductCategory(""); err == nil {
		t.Error("ParseProductCategory(empty) expected error")
	}
	if _, err := ParseProductGrade("bgrade"); err != nil {
		t.Errorf("ParseProductGrade(bgrade) error = %v", err)
	}
	if _, err := ParseFinishType("planedallround"); err != nil {
		t.Errorf("ParseFinishType(planedallround) error = %v", err)
	}
	if _, err := ParseFinishType("polished"); err == nil {
		t.Error("ParseFinishType(polished) expected error")
	}
}
