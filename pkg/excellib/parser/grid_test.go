package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

func TestBuildGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 1)
	f.SetCellValue(sheetName, "B1", "Model")
	f.SetCellValue(sheetName, "C1", "LS4")
	f.SetCellValue(sheetName, "A2", 2)
	f.SetCellValue(sheetName, "B2", "Price")
	f.SetCellValue(sheetName, "C2", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	grid, err := BuildGrid(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 3, grid.Cols())
	assert.Equal(t, int64(1), grid.Value(0, 0))
	assert.Equal(t, "Model", grid.Value(0, 1))
	assert.Equal(t, "LS4", grid.Value(0, 2))
	assert.Equal(t, 200.5, grid.Value(1, 2))

	// Out-of-range reads are empty, not panics.
	assert.Nil(t, grid.Value(-1, 0))
	assert.Nil(t, grid.Value(5, 0))
	assert.Nil(t, grid.Value(0, 9))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"11.11.2024", "11.11.2024"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestGridEmptyCells(t *testing.T) {
	grid := models.NewGrid([][]any{
		{int64(1), "Model", nil},
		{nil, "", "AC"},
	})

	assert.Nil(t, grid.Value(0, 2))
	assert.Nil(t, grid.Value(1, 0))
	assert.True(t, models.IsEmpty(grid.Value(1, 1)))
	assert.False(t, models.IsEmpty(grid.Value(1, 2)))
}
