package pricelist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hearteco/woodplanks/internal/domain/planks"
	"github.com/shopspring/decimal"
)

// ParseFile reads the price list at path and parses it into product drafts.
func ParseFile(path string, log *slog.Logger) ([]planks.NewWoodPlank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f, log)
}

// Parse runs the pipeline over a line-oriented source. One state variable:
// the current section, starting at none. Header lines switch it, product
// lines under a known section become drafts, everything else is skipped.
// Output order follows source order.
func Parse(r io.Reader, log *slog.Logger) ([]planks.NewWoodPlank, error) {
	var products []planks.NewWoodPlank
	section := SectionNone

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if s, ok := IdentifySection(line); ok {
			section = s
			continue
		}

		if section == SectionNone {
			// No section context yet: a product row cannot be attributed.
			continue
		}

		product, ok := ParseProductLine(line, section)
		if !ok {
			if strings.ContainsAny(line, "xX") {
				log.Warn("could not parse product line", "line", line, "section", section.String())
			}
			continue
		}
		products = append(products, product)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	log.Info("parsed price list", "products", len(products))
	return products, nil
}

// ParseProductLine parses a trimmed line under the given section. The
// supported layout is `<thickness> X <width> X <length> <tag...> <price>`
// with at least 7 whitespace tokens and an R-prefixed integer price, e.g.
// "23 X 100 X 2500 BALTIC EA R40". Returns false for anything else.
func ParseProductLine(line string, section Section) (planks.NewWoodPlank, bool) {
	// Product rows always carry the dimension separator.
	if !strings.ContainsAny(line, "xX") {
		return planks.NewWoodPlank{}, false
	}

	parts := strings.Fields(line)
	if len(parts) < 7 {
		return planks.NewWoodPlank{}, false
	}

	thickness, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return planks.NewWoodPlank{}, false
	}
	width, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return planks.NewWoodPlank{}, false
	}
	length, err := strconv.ParseInt(parts[4], 10, 32)
	if err != nil {
		return planks.NewWoodPlank{}, false
	}

	price, ok := extractPrice(parts)
	if !ok {
		return planks.NewWoodPlank{}, false
	}

	woodType := identifyWoodType(parts)
	category, grade := section.CategoryGrade()

	return planks.NewWoodPlank{
		Name:          fmt.Sprintf("%d x %d x %d %s", thickness, width, length, woodType.DisplayName()),
		Category:      category,
		WoodType:      woodType,
		Grade:         grade,
		Finish:        identifyFinish(section, parts),
		ThicknessMM:   int32(thickness),
		WidthMM:       int32(width),
		LengthMM:      int32(length),
		Price:         price,
		StockQuantity: 10,
		UnitOfMeasure: "EA",
		Description:   line,
	}, true
}

func identifyWoodType(parts []string) planks.WoodType {
	switch {
	case containsToken(parts, "BALTIC"):
		return planks.WoodBaltic
	case containsToken(parts, "PINE"):
		return planks.WoodPine
	case containsToken(parts, "OAK"):
		return planks.WoodOak
	default:
		return planks.WoodMixed
	}
}

// identifyFinish resolves the finish: some sections dictate it outright,
// otherwise a PAR token marks planed-all-round and the default is rough.
func identifyFinish(section Section, parts []string) planks.FinishType {
	switch section {
	case SectionPlanedBothSides:
		return planks.FinishPlanedBothSides
	case SectionPlanedAllRound:
		return planks.FinishPlanedAllRound
	case SectionMachinedTimbers:
		return planks.FinishMachined
	case SectionLaminatedBaltic:
		return planks.FinishLaminated
	default:
		if containsToken(parts, "PAR") {
			return planks.FinishPlanedAllRound
		}
		return planks.FinishRough
	}
}

// extractPrice finds the price token: the last token if it is R<int>,
// otherwise the first R<int> token scanning from the end.
func extractPrice(parts []string) (decimal.Decimal, bool) {
	if last := parts[len(parts)-1]; strings.HasPrefix(last, "R") {
		if v, err := strconv.ParseInt(last[1:], 10, 64); err == nil {
			return decimal.NewFromInt(v), true
		}
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if strings.HasPrefix(parts[i], "R") {
			if v, err := strconv.ParseInt(parts[i][1:], 10, 64); err == nil {
				return decimal.NewFromInt(v), true
			}
		}
	}
	return decimal.Decimal{}, false
}

func containsToken(parts []string, tok string) bool {
	for _, p := range parts {
		if p == tok {
			return true
		}
	}
	return false
}
