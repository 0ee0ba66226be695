package models

import (
	"encoding/json"
	"reflect"
)

// ConflictSentinel is the serialized marker for a person block whose
// fields differ between columns of the same group.
const ConflictSentinel = "differs per entity"

type personState int

const (
	personAbsent personState = iota
	personKnown
	personConflicting
)

// PersonFields is the value of a contact or responsible block inside a
// record group. It is a three-state variant: absent (no column filled
// it yet), known (every column agreed on one set of fields), or
// conflicting (two columns disagreed; the conflict is sticky).
type PersonFields struct {
	state  personState
	fields map[string]any
}

// AbsentPerson returns the absent variant.
func AbsentPerson() PersonFields {
	return PersonFields{state: personAbsent}
}

// KnownPerson returns the known variant holding the given fields.
func KnownPerson(fields map[string]any) PersonFields {
	return PersonFields{state: personKnown, fields: fields}
}

// ConflictingPerson returns the conflicting variant.
func ConflictingPerson() PersonFields {
	return PersonFields{state: personConflicting}
}

// IsAbsent reports whether no column has filled the block yet.
func (p PersonFields) IsAbsent() bool { return p.state == personAbsent }

// IsConflicting reports whether columns disagreed on the block.
func (p PersonFields) IsConflicting() bool { return p.state == personConflicting }

// Fields returns the agreed fields, or nil unless the block is known.
func (p PersonFields) Fields() map[string]any {
	if p.state != personKnown {
		return nil
	}
	return p.fields
}

// Merge folds one column's projection into the block: absent takes the
// projection as-is, known stays known only while projections agree,
// and conflicting never recovers.
func (p PersonFields) Merge(projected map[string]any) PersonFields {
	switch p.state {
	case personAbsent:
		return KnownPerson(projected)
	case personKnown:
		if reflect.DeepEqual(p.fields, projected) {
			return p
		}
		return ConflictingPerson()
	default:
		return p
	}
}

// MarshalJSON writes null for absent, the field object for known, and
// the conflict sentinel string for conflicting.
func (p PersonFields) MarshalJSON() ([]byte, error) {
	switch p.state {
	case personKnown:
		return json.Marshal(p.fields)
	case personConflicting:
		return json.Marshal(ConflictSentinel)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON restores the variant from its serialized form.
func (p *PersonFields) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = AbsentPerson()
	case string:
		*p = ConflictingPerson()
	case map[string]any:
		*p = KnownPerson(v)
	default:
		*p = AbsentPerson()
	}
	return nil
}

// StationRecord is one column's projection of every station section:
// section name to label/value pairs.
type StationRecord map[string]map[string]any

// RecordGroup is one extracted entity: the columns that shared an
// identical global-data projection, folded together.
type RecordGroup struct {
	// GlobalData identifies the group; two groups never hold deeply
	// equal global data.
	GlobalData map[string]any `json:"global_data"`
	// ContactPerson is the merged contact block.
	ContactPerson PersonFields `json:"contact_person"`
	// ResponsiblePerson is the merged responsible block.
	ResponsiblePerson PersonFields `json:"responsible_person"`
	// Stations holds one entry per contributing column, in column order.
	Stations []StationRecord `json:"stations"`
}
