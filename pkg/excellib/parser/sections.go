package parser

import (
	"strings"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

// Marker and label column positions within a form grid. Columns past
// the label hold one data column per entity.
const (
	// MarkerCol carries auxiliary numbering and section headers.
	MarkerCol = 0
	// LabelCol carries the labels templates are keyed by.
	LabelCol = 1
	// FirstDataCol is the first entity column.
	FirstDataCol = 2
)

// DetectSections scans the marker column top to bottom and returns the
// grid's sections in row order. A header row is one whose marker value
// is a non-empty string equal to its own upper-case form. A section's
// data starts the row after its header and ends the row before the
// next header; the last section ends at the last marker-column row
// holding any value. Consecutive headers produce a section with an
// empty data range (Start > End).
func DetectSections(grid *models.Grid) *models.SectionIndex {
	var sections []models.Section
	lastPopulated := -1

	for row := 0; row < grid.Rows(); row++ {
		v := grid.Value(row, MarkerCol)
		if !models.IsEmpty(v) {
			lastPopulated = row
		}
		if !isSectionHeader(v) {
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].End = row - 1
		}
		sections = append(sections, models.Section{
			Name:   v.(string),
			Header: row,
			Start:  row + 1,
		})
	}

	if n := len(sections); n > 0 {
		sections[n-1].End = lastPopulated
	}

	return models.NewSectionIndex(sections)
}

// isSectionHeader reports whether a marker-column value is a section
// header: a non-empty string already in upper case.
func isSectionHeader(v any) bool {
	s, ok := v.(string)
	return ok && s != "" && s == strings.ToUpper(s)
}
