package planks

import "fmt"

// Taxonomy values are persisted as lowercase text tags, so every variant
// here must stay in sync with the parse/string tables below.

type WoodType string

const (
	WoodBaltic   WoodType = "baltic"
	WoodPine     WoodType = "pine"
	WoodOak      WoodType = "oak"
	WoodRecycled WoodType = "recycled"
	WoodMixed    WoodType = "mixed"
)

type ProductCategory string

const (
	CategoryHeavyDutyBox   ProductCategory = "heavydutybox"
	CategoryPallet         ProductCategory = "pallet"
	CategoryLongTimber     ProductCategory = "longtimber"
	CategoryShortTimber    ProductCategory = "shorttimber"
	CategoryPlanedTimber   ProductCategory = "planedtimber"
	CategoryMachinedTimber ProductCategory = "machinedtimber"
	CategoryComponent      ProductCategory = "component"
	CategoryLaminatedTable ProductCategory = "laminatedtable"
	CategoryPlywood        ProductCategory = "plywood"
	CategoryCustom         ProductCategory = "custom"
)

type ProductGrade string

const (
	GradeA        ProductGrade = "agrade"
	GradeB        ProductGrade = "bgrade"
	GradeStandard ProductGrade = "standard"
)

type FinishType string

const (
	FinishRough           FinishType = "rough"
	FinishPlanedBothSides FinishType = "planedbothsides" // PBS
	FinishPlanedAllRound  FinishType = "planedallround"  // PAR
	FinishMachined        FinishType = "machined"
	FinishLaminated       FinishType = "laminated"
	FinishRaw             FinishType = "raw"
)

// DisplayName returns the human-readable wood type used in product names.
func (w WoodType) DisplayName() string {
	switch w {
	case WoodBaltic:
		return "Baltic"
	case WoodPine:
		return "Pine"
	case WoodOak:
		return "Oak"
	case WoodRecycled:
		return "Recycled"
	default:
		return "Mixed"
	}
}

// Code returns the short SKU code for a category. The table is total over
// the category variants; unknown input falls back to the custom code.
func (c ProductCategory) Code() string {
	switch c {
	case CategoryHeavyDutyBox:
		return "HDB"
	case CategoryPallet:
		return "PAL"
	case CategoryLongTimber:
		return "LT"
	case CategoryShortTimber:
		return "ST"
	case CategoryPlanedTimber:
		return "PT"
	case CategoryMachinedTimber:
		return "MT"
	case CategoryComponent:
		return "COMP"
	case CategoryLaminatedTable:
		return "LAM"
	case CategoryPlywood:
		return "PLY"
	default:
		return "CUST"
	}
}

func (g ProductGrade) Code() string {
	switch g {
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	default:
		return "S"
	}
}

func ParseWoodType(s string) (WoodType, error) {
	switch WoodType(s) {
	case WoodBaltic, WoodPine, WoodOak, WoodRecycled, WoodMixed:
		return WoodType(s), nil
	}
	return "", fmt.Errorf("unknown wood type %q", s)
}

func ParseProductCategory(s string) (ProductCategory, error) {
	switch ProductCategory(s) {
	case CategoryHeavyDutyBox, CategoryPallet, CategoryLongTimber, CategoryShortTimber,
		CategoryPlanedTimber, CategoryMachinedTimber, CategoryComponent,
		CategoryLaminatedTable, CategoryPlywood, CategoryCustom:
		return ProductCategory(s), nil
	}
	return "", fmt.Errorf("unknown product category %q", s)
}

func ParseProductGrade(s string) (ProductGrade, error) {
	switch ProductGrade(s) {
	case GradeA, GradeB, GradeStandard:
		return ProductGrade(s), nil
	}
	return "", fmt.Errorf("unknown product grade %q", s)
}

func ParseFinishType(s string) (FinishType, error) {
	switch FinishType(s) {
	case FinishRough, FinishPlanedBothSides, FinishPlanedAllRound,
		FinishMachined, FinishLaminated, FinishRaw:
		return FinishType(s), nil
	}
	return "", fmt.Errorf("unknown finish type %q", s)
}
