package models

// LabelRows maps a label, as read from the label column, to the row
// index it was found at. A nil LabelRows means the section or role was
// absent when the template was built.
type LabelRows map[string]int

// Clone returns a copy of the map, or nil for nil input.
func (m LabelRows) Clone() LabelRows {
	if m == nil {
		return nil
	}
	out := make(LabelRows, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TakeoverTemplate holds the label positions of the form's takeover
// block: the global fields above the station divider plus the two
// person sections.
type TakeoverTemplate struct {
	// GlobalData covers the labels before the divider section.
	GlobalData LabelRows `json:"global_data"`
	// ContactPerson is nil when no contact section was found.
	ContactPerson LabelRows `json:"contact_person"`
	// ResponsiblePerson is nil when no responsible section was found.
	ResponsiblePerson LabelRows `json:"responsible_person"`
}

// Template records where every label of an exemplar form sits, so the
// same labels can be re-located in other files of the same layout.
// Row indices may go stale when a file drifts; reconciliation restores
// them without adding or dropping labels.
type Template struct {
	Takeover TakeoverTemplate `json:"takeover"`
	// Stations maps each detected section name to its label positions.
	Stations map[string]LabelRows `json:"stations"`
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() *Template {
	out := &Template{
		Takeover: TakeoverTemplate{
			GlobalData:        t.Takeover.GlobalData.Clone(),
			ContactPerson:     t.Takeover.ContactPerson.Clone(),
			ResponsiblePerson: t.Takeover.ResponsiblePerson.Clone(),
		},
	}
	if t.Stations != nil {
		out.Stations = make(map[string]LabelRows, len(t.Stations))
		for name, m := range t.Stations {
			out.Stations[name] = m.Clone()
		}
	}
	return out
}
