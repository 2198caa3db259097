package pricelist

import (
	"fmt"
	"io"

	"github.com/hearteco/woodplanks/internal/domain/planks"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the parsed drafts to an Excel workbook so the import
// can be reviewed before it hits the store. SKUs shown are the ones the
// seeder would generate.
func WriteXLSX(w io.Writer, products []planks.NewWoodPlank) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"sku",
		"name",
		"category",
		"wood_type",
		"grade",
		"finish",
		"thickness_mm",
		"width_mm",
		"length_mm",
		"price",
		"stock_quantity",
		"unit_of_measure",
		"description",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, p := range products {
		excelRow := []interface{}{
			p.GenerateSKU(),
			p.Name,
			string(p.Category),
			string(p.WoodType),
			string(p.Grade),
			string(p.Finish),
			p.ThicknessMM,
			p.WidthMM,
			p.LengthMM,
			p.Price.String(),
			p.StockQuantity,
			p.UnitOfMeasure,
			p.Description,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
