// Package parser implements the form extraction pipeline: grid
// construction, section detection, template building, reconciliation,
// and record assembly.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

// BuildGrid reads one sheet of an open workbook into an immutable
// grid. Cell text is coerced to int64 or float64 where it parses as a
// number; empty cells become nil.
func BuildGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	cells := make([][]any, len(rows))
	for rowIdx, row := range rows {
		parsed := make([]any, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			parsed[colIdx] = parseValue(cellValue)
		}
		cells[rowIdx] = parsed
	}

	return models.NewGrid(cells), nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
