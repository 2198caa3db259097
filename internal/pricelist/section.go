// Package pricelist converts the supplier's semi-structured price list
// text into validated product drafts. Parsing is a single forward pass:
// section headers switch the current section, every other line is either
// a product row or noise.
package pricelist

import (
	"strings"

	"github.com/hearteco/woodplanks/internal/domain/planks"
)

// Section identifies the region of the price list currently being read.
type Section int

const (
	SectionNone Section = iota
	SectionHeavyDutyBoxes
	SectionPallets
	SectionAGradeLongTimbers
	SectionBGradeLongTimbers
	SectionAGradeShortTimbers
	SectionBGradeShortTimbers
	SectionPlanedBothSides
	SectionPlanedAllRound
	SectionMachinedTimbers
	SectionShortBalticComponents
	SectionLaminatedBaltic
	SectionPlywood
)

// IdentifySection reports whether the line is a section header. Matching
// is exact on the trimmed, upper-cased line: headers with extra tokens or
// punctuation are not recognized and fall through to product parsing.
func IdentifySection(line string) (Section, bool) {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "HEAVY DUTY WOODEN BOXES":
		return SectionHeavyDutyBoxes, true
	case "PALLETS":
		return SectionPallets, true
	case "A GRADE LONG TIMBERS":
		return SectionAGradeLongTimbers, true
	case "B GRADE LONG TIMBERS":
		return SectionBGradeLongTimbers, true
	case "A GRADE SHORT TIMBERS":
		return SectionAGradeShortTimbers, true
	case "B GRADE SHORT TIMBERS":
		return SectionBGradeShortTimbers, true
	case "PLANED BOTH SIDES":
		return SectionPlanedBothSides, true
	case "PLANED ALL ROUND":
		return SectionPlanedAllRound, true
	case "MACHINED TIMBERS":
		return SectionMachinedTimbers, true
	case "SHORT BALTIC COMPONENTS":
		return SectionShortBalticComponents, true
	case "LAMINATED BALTIC TABLE AND SHELVES TO ORDER":
		return SectionLaminatedBaltic, true
	case "INT/EXTERIOR PLYWOOD", "INTERIOR PLYWOOD":
		return SectionPlywood, true
	}
	return SectionNone, false
}

// CategoryGrade maps a section to its product taxonomy. The table is
// total over the Section variants; SectionNone falls back to custom.
func (s Section) CategoryGrade() (planks.ProductCategory, planks.ProductGrade) {
	switch s {
	case SectionHeavyDutyBoxes:
		return planks.CategoryHeavyDutyBox, planks.GradeStandard
	case SectionPallets:
		return planks.CategoryPallet, planks.GradeStandard
	case SectionAGradeLongTimbers:
		return planks.CategoryLongTimber, planks.GradeA
	case SectionBGradeLongTimbers:
		return planks.CategoryLongTimber, planks.GradeB
	case SectionAGradeShortTimbers:
		return planks.CategoryShortTimber, planks.GradeA
	case SectionBGradeShortTimbers:
		return planks.CategoryShortTimber, planks.GradeB
	case SectionPlanedBothSides:
		return planks.CategoryPlanedTimber, planks.GradeStandard
	case SectionPlanedAllRound:
		return planks.CategoryPlanedTimber, planks.GradeStandard
	case SectionMachinedTimbers:
		return planks.CategoryMachinedTimber, planks.GradeStandard
	case SectionShortBalticComponents:
		return planks.CategoryComponent, planks.GradeStandard
	case SectionLaminatedBaltic:
		return planks.CategoryLaminatedTable, planks.GradeStandard
	case SectionPlywood:
		return planks.CategoryPlywood, planks.GradeStandard
	default:
		return planks.CategoryCustom, planks.GradeStandard
	}
}

func (s Section) String() string {
	switch s {
	case SectionHeavyDutyBoxes:
		return "heavy duty boxes"
	case SectionPallets:
		return "pallets"
	case SectionAGradeLongTimbers:
		return "a grade long timbers"
	case SectionBGradeLongTimbers:
		return "b grade long timbers"
	case SectionAGradeShortTimbers:
		return "a grade short timbers"
	case SectionBGradeShortTimbers:
		return "b grade short timbers"
	case SectionPlanedBothSides:
		return "planed both sides"
	case SectionPlanedAllRound:
		return "planed all round"
	case SectionMachinedTimbers:
		return "machined timbers"
	case SectionShortBalticComponents:
		return "short baltic components"
	case SectionLaminatedBaltic:
		return "laminated baltic"
	case SectionPlywood:
		return "plywood"
	default:
		return "none"
	}
}
