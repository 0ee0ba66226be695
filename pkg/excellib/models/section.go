package models

// Section is a contiguous row range belonging to one section header.
// Header is the row holding the section name; Start is the first data
// row (the row after the header) and End the last (inclusive). A
// section with Start > End has an empty data range, which is legal:
// two headers on consecutive rows produce one.
type Section struct {
	// Name is the header text as read from the marker column.
	Name string `json:"name"`
	// Header is the row index of the header itself.
	Header int `json:"header"`
	// Start is the first data row (1 past the header).
	Start int `json:"start_row"`
	// End is the last data row, inclusive.
	End int `json:"end_row"`
}

// SectionIndex holds the sections of a grid in row order with name
// lookup. It is computed once per grid and passed explicitly to the
// locator and reconciler.
type SectionIndex struct {
	sections []Section
	byName   map[string]Section
}

// NewSectionIndex builds an index from sections in row order. When two
// sections share a name the later one wins the name lookup.
func NewSectionIndex(sections []Section) *SectionIndex {
	byName := make(map[string]Section, len(sections))
	for _, s := range sections {
		byName[s.Name] = s
	}
	return &SectionIndex{sections: sections, byName: byName}
}

// Sections returns all sections in row order.
func (ix *SectionIndex) Sections() []Section {
	return ix.sections
}

// Len returns the number of sections.
func (ix *SectionIndex) Len() int {
	return len(ix.sections)
}

// Lookup returns the section with the given header name.
func (ix *SectionIndex) Lookup(name string) (Section, bool) {
	s, ok := ix.byName[name]
	return s, ok
}
