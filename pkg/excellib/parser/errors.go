package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidContainer indicates the input is not a readable xlsx
// archive or is missing the workbook manifest entry.
var ErrInvalidContainer = errors.New("invalid workbook container")

// RowNotFound is the sentinel row index meaning a label could not be
// located. It is not an error: downstream reads of a missing row
// produce empty values instead of aborting extraction.
const RowNotFound = -1

// AmbiguousKeyError reports a label that matched more than one row and
// could not be narrowed by section context.
type AmbiguousKeyError struct {
	// Key is the label that was searched for.
	Key any
	// Section is the narrowing section name, empty when none applied.
	Section string
	// Rows lists every matching row index.
	Rows []int
}

func (e *AmbiguousKeyError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("ambiguous key %v: matches rows %v", e.Key, e.Rows)
	}
	return fmt.Sprintf("ambiguous key %v in section %q: matches rows %v", e.Key, e.Section, e.Rows)
}

// MalformedTemplateSectionError reports a template leaf that is
// neither a mapping nor null in an externally supplied template
// document.
type MalformedTemplateSectionError struct {
	// Section names the offending leaf ("global_data", a station
	// name, ...).
	Section string
	// Kind describes what was found instead of a mapping.
	Kind string
}

func (e *MalformedTemplateSectionError) Error() string {
	return fmt.Sprintf("template section %q: expected a mapping or null, got %s", e.Section, e.Kind)
}
