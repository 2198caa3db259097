package pricelist

import (
	"bytes"
	"testing"

	"github.com/hearteco/woodplanks/internal/domain/planks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	products := []planks.NewWoodPlank{
		{
			Name:          "23 x 100 x 2500 Baltic",
			Category:      planks.CategoryLongTimber,
			WoodType:      planks.WoodBaltic,
			Grade:         planks.GradeA,
			Finish:        planks.FinishRough,
			ThicknessMM:   23,
			WidthMM:       100,
			LengthMM:      2500,
			Price:         decimal.NewFromInt(40),
			StockQuantity: 10,
			UnitOfMeasure: "EA",
			Description:   "23 X 100 X 2500 BALTIC EA R40",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, products))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "sku", rows[0][0])
	assert.Equal(t, "price", rows[0][9])

	// The sku shown is the one the seeder would generate.
	assert.Equal(t, "LT-A-23x100x2500", rows[1][0])
	assert.Equal(t, "23 x 100 x 2500 Baltic", rows[1][1])
	assert.Equal(t, "longtimber", rows[1][2])
	assert.Equal(t, "40", rows[1][9])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
