package models

// WorkbookReport carries the advisory findings of container inspection.
// Nothing in it is an error: extraction proceeds regardless.
type WorkbookReport struct {
	// WorksheetCount is the number of sheets in the workbook.
	WorksheetCount int `json:"worksheet_count"`
	// NonCellObjects lists human-readable notices about images,
	// charts, and media entries that live outside the cell grid.
	NonCellObjects []string `json:"non_cell_objects,omitempty"`
	// Notices lists other advisories, such as a multi-sheet warning.
	Notices []string `json:"notices,omitempty"`
}
