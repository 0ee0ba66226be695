package parser

import "github.com/CWK-Elocity/excel-lib/pkg/excellib/models"

// Scope narrows a key lookup to one part of the grid. The zero value
// (NoScope) means no narrowing. A scope carries either a literal
// section name or a logical role, never both.
type Scope struct {
	section string
	role    Role
	kind    scopeKind
}

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeSection
	scopeRole
)

// NoScope is the unscoped lookup.
var NoScope = Scope{}

// SectionScope narrows a lookup to the rows of a named section.
func SectionScope(name string) Scope {
	return Scope{kind: scopeSection, section: name}
}

// RoleScope narrows a lookup to the rows a logical role resolves to.
func RoleScope(role Role) Scope {
	return Scope{kind: scopeRole, role: role}
}

// name returns a printable form of the scope for error reporting.
func (s Scope) name() string {
	switch s.kind {
	case scopeSection:
		return s.section
	case scopeRole:
		return string(s.role)
	}
	return ""
}

// Locator finds label rows in a grid's label column. The section index
// is supplied up front, so repeated lookups never recompute it.
type Locator struct {
	grid     *models.Grid
	sections *models.SectionIndex
	cfg      SectionsConfig
}

// NewLocator returns a locator over the given grid and its section
// index.
func NewLocator(grid *models.Grid, sections *models.SectionIndex, cfg SectionsConfig) *Locator {
	return &Locator{grid: grid, sections: sections, cfg: cfg}
}

// FindAll returns every label-column row whose value matches the key,
// in row order.
func (l *Locator) FindAll(key any) []int {
	var rows []int
	for row := 0; row < l.grid.Rows(); row++ {
		if Match(l.grid.Value(row, LabelCol), key) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Find locates the single row holding the key. A unique match wins
// outright, scope or not. With several matches the scope's row range
// filters them: one survivor is returned, none yields RowNotFound, and
// several fail with an AmbiguousKeyError. Several matches without a
// scope fail the same way.
func (l *Locator) Find(key any, scope Scope) (int, error) {
	rows := l.FindAll(key)
	switch len(rows) {
	case 0:
		return RowNotFound, nil
	case 1:
		return rows[0], nil
	}

	start, end, ok := l.scopeRange(scope)
	if !ok {
		return RowNotFound, &AmbiguousKeyError{Key: key, Section: scope.name(), Rows: rows}
	}

	var filtered []int
	for _, row := range rows {
		if row >= start && row <= end {
			filtered = append(filtered, row)
		}
	}
	switch len(filtered) {
	case 0:
		return RowNotFound, nil
	case 1:
		return filtered[0], nil
	}
	return RowNotFound, &AmbiguousKeyError{Key: key, Section: scope.name(), Rows: filtered}
}

// scopeRange resolves a scope to its row range. An unscoped lookup and
// a scope naming an unknown section both report no range; the caller
// decides whether that means ambiguity or no match.
func (l *Locator) scopeRange(scope Scope) (start, end int, ok bool) {
	switch scope.kind {
	case scopeSection:
		s, found := l.sections.Lookup(scope.section)
		if !found {
			return 0, -1, true
		}
		return s.Start, s.End, true
	case scopeRole:
		start, end, found := l.cfg.ResolveRange(l.grid, l.sections, scope.role)
		if !found {
			return 0, -1, true
		}
		return start, end, true
	}
	return 0, 0, false
}
