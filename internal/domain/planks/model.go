package planks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDimensions = errors.New("all dimensions must be positive")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidStock      = errors.New("stock quantity cannot be negative")
)

// WoodPlank is a persisted product row. Identity and timestamps are
// assigned by the repository at insert time.
type WoodPlank struct {
	ID            uuid.UUID
	SKU           string
	Name          string
	Category      ProductCategory
	WoodType      WoodType
	Grade         ProductGrade
	Finish        FinishType
	ThicknessMM   int32
	WidthMM       int32
	LengthMM      int32
	Price         decimal.Decimal // Rands
	StockQuantity int32
	UnitOfMeasure string
	Description   string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWoodPlank is an un-persisted product draft. SKU may be empty until
// GenerateSKU assigns one; nothing else is mutated after creation.
type NewWoodPlank struct {
	SKU           string
	Name          string
	Category      ProductCategory
	WoodType      WoodType
	Grade         ProductGrade
	Finish        FinishType
	ThicknessMM   int32
	WidthMM       int32
	LengthMM      int32
	Price         decimal.Decimal
	StockQuantity int32
	UnitOfMeasure string
	Description   string
	ImageURL      string
}

// Query holds optional catalog filters for listing planks.
type Query struct {
	Category     *ProductCategory
	WoodType     *WoodType
	Grade        *ProductGrade
	Finish       *FinishType
	MinLength    *int32
	MaxLength    *int32
	MinWidth     *int32
	MaxWidth     *int32
	MinThickness *int32
	MaxThickness *int32
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      *bool
	SearchTerm   string
	Page         int64
	PageSize     int64
}

// Validate checks the draft invariants: positive dimensions, positive
// price, non-negative stock.
func (p *NewWoodPlank) Validate() error {
	if p.LengthMM <= 0 || p.WidthMM <= 0 || p.ThicknessMM <= 0 {
		return ErrInvalidDimensions
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.StockQuantity < 0 {
		return ErrInvalidStock
	}
	return nil
}

// GenerateSKU returns the existing SKU, or builds one as
// <category>-<grade>-<thickness>x<width>x<length>, e.g. LT-A-23x100x2500.
// Wood type and finish are deliberately not encoded, so variants differing
// only in those fields collide on SKU; re-seeding relies on this formula
// staying stable.
func (p *NewWoodPlank) GenerateSKU() string {
	if p.SKU != "" {
		return p.SKU
	}
	return fmt.Sprintf("%s-%s-%dx%dx%d",
		p.Category.Code(), p.Grade.Code(), p.ThicknessMM, p.WidthMM, p.LengthMM)
}

func (p *WoodPlank) IsInStock() bool { return p.StockQuantity > 0 }

// Volume in cubic millimeters.
func (p *WoodPlank) Volume() int64 {
	return int64(p.LengthMM) * int64(p.WidthMM) * int64(p.ThicknessMM)
}

// SurfaceArea in square millimeters.
func (p *WoodPlank) SurfaceArea() int64 {
	l, w, t := int64(p.LengthMM), int64(p.WidthMM), int64(p.ThicknessMM)
	return 2 * (l*w + l*t + w*t)
}

func (p *WoodPlank) DimensionsString() string {
	return fmt.Sprintf("%d x %d x %d", p.ThicknessMM, p.WidthMM, p.LengthMM)
}

func (p *WoodPlank) PriceString() string {
	return fmt.Sprintf("R %s", p.Price)
}

// ParseFromDescription parses a standalone price-list line with no section
// context, e.g. "23 X 100 X 2500 BALTIC EA R40". Unlike the section-driven
// parser it accepts a bare integer as the trailing price token, treats a
// lone "B" token as the B-grade marker, and guesses the category from
// keywords and length. Returns false when the line is not a product.
func ParseFromDescription(desc string) (NewWoodPlank, bool) {
	parts := strings.Fields(strings.TrimSpace(desc))
	if len(parts) < 6 {
		return NewWoodPlank{}, false
	}

	thickness, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return NewWoodPlank{}, false
	}
	width, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return NewWoodPlank{}, false
	}
	length, err := strconv.ParseInt(parts[4], 10, 32)
	if err != nil {
		return NewWoodPlank{}, false
	}

	woodType := WoodMixed
	if hasToken(parts, "BALTIC") {
		woodType = WoodBaltic
	} else if hasToken(parts, "PINE") {
		woodType = WoodPine
	}

	priceTok := parts[len(parts)-1]
	priceTok = strings.TrimPrefix(priceTok, "R")
	priceVal, err := strconv.ParseInt(priceTok, 10, 64)
	if err != nil {
		return NewWoodPlank{}, false
	}
	price := decimal.NewFromInt(priceVal)

	grade := GradeA
	if hasToken(parts, "B") {
		grade = GradeB
	}

	var finish FinishType
	switch {
	case hasToken(parts, "PAR"):
		finish = FinishPlanedAllRound
	case hasToken(parts, "PBS"):
		finish = FinishPlanedBothSides
	case strings.Contains(desc, "MACHINED"):
		finish = FinishMachined
	case strings.Contains(desc, "LAMINATED"):
		finish = FinishLaminated
	default:
		finish = FinishRough
	}

	var category ProductCategory
	switch {
	case strings.Contains(desc, "PALLET"):
		category = CategoryPallet
	case strings.Contains(desc, "BOX"):
		category = CategoryHeavyDutyBox
	case strings.Contains(desc, "PLYWOOD"):
		category = CategoryPlywood
	case length > 2000:
		category = CategoryLongTimber
	default:
		category = CategoryShortTimber
	}

	return NewWoodPlank{
		Name:          fmt.Sprintf("%d x %d x %d %s", thickness, width, length, woodType.DisplayName()),
		Category:      category,
		WoodType:      woodType,
		Grade:         grade,
		Finish:        finish,
		ThicknessMM:   int32(thickness),
		WidthMM:       int32(width),
		LengthMM:      int32(length),
		Price:         price,
		StockQuantity: 10,
		UnitOfMeasure: "EA",
		Description:   desc,
	}, true
}

func hasToken(parts []string, tok string) bool {
	for _, p := range parts {
		if p == tok {
			return true
		}
	}
	return false
}
