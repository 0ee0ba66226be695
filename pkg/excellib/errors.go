package excellib

import (
	"errors"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidContainer indicates the input is not a valid xlsx archive.
var ErrInvalidContainer = parser.ErrInvalidContainer

// AmbiguousKeyError reports a label matching several rows that section
// context could not narrow.
type AmbiguousKeyError = parser.AmbiguousKeyError

// MalformedTemplateSectionError reports a template leaf that is
// neither a mapping nor null.
type MalformedTemplateSectionError = parser.MalformedTemplateSectionError
