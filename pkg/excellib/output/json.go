// Package output serializes templates and extracted records.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

// ToJSON serializes any value to JSON, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// TemplateFromJSON decodes an externally supplied template document.
// Every leaf must be a JSON object of label to row index, or null;
// anything else fails with a MalformedTemplateSectionError before any
// reconciliation can touch it.
func TemplateFromJSON(data []byte) (*models.Template, error) {
	var raw struct {
		Takeover map[string]json.RawMessage `json:"takeover"`
		Stations map[string]json.RawMessage `json:"stations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	tpl := &models.Template{}

	var err error
	if tpl.Takeover.GlobalData, err = decodeLeaf("global_data", raw.Takeover["global_data"]); err != nil {
		return nil, err
	}
	if tpl.Takeover.ContactPerson, err = decodeLeaf("contact_person", raw.Takeover["contact_person"]); err != nil {
		return nil, err
	}
	if tpl.Takeover.ResponsiblePerson, err = decodeLeaf("responsible_person", raw.Takeover["responsible_person"]); err != nil {
		return nil, err
	}

	if raw.Stations != nil {
		tpl.Stations = make(map[string]models.LabelRows, len(raw.Stations))
		for name, leaf := range raw.Stations {
			if tpl.Stations[name], err = decodeLeaf(name, leaf); err != nil {
				return nil, err
			}
		}
	}

	return tpl, nil
}

// decodeLeaf decodes one template leaf, enforcing the mapping-or-null
// shape.
func decodeLeaf(section string, data json.RawMessage) (models.LabelRows, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, &parser.MalformedTemplateSectionError{Section: section, Kind: jsonKind(trimmed)}
	}
	var labels models.LabelRows
	if err := json.Unmarshal(trimmed, &labels); err != nil {
		return nil, fmt.Errorf("decode template section %q: %w", section, err)
	}
	return labels, nil
}

// jsonKind names the JSON kind of an encoded value for error messages.
func jsonKind(data []byte) string {
	switch data[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}

// SummarizeTemplate renders a template as human-readable lines, each
// leaf's labels listed in ascending row order.
func SummarizeTemplate(tpl *models.Template) []string {
	var lines []string
	lines = append(lines, summarizeLeaf("global_data", tpl.Takeover.GlobalData)...)
	lines = append(lines, summarizeLeaf("contact_person", tpl.Takeover.ContactPerson)...)
	lines = append(lines, summarizeLeaf("responsible_person", tpl.Takeover.ResponsiblePerson)...)

	names := make([]string, 0, len(tpl.Stations))
	for name := range tpl.Stations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, summarizeLeaf("station "+name, tpl.Stations[name])...)
	}

	return lines
}

// summarizeLeaf lists one leaf's labels sorted by row.
func summarizeLeaf(title string, labels models.LabelRows) []string {
	if labels == nil {
		return []string{title + ": absent"}
	}

	byRow := treemap.NewWithIntComparator()
	for label, row := range labels {
		byRow.Put(row, label)
	}

	lines := make([]string, 0, byRow.Size()+1)
	lines = append(lines, fmt.Sprintf("%s: %d labels", title, byRow.Size()))
	it := byRow.Iterator()
	for it.Next() {
		lines = append(lines, fmt.Sprintf("  row %d: %v", it.Key(), it.Value()))
	}
	return lines
}
