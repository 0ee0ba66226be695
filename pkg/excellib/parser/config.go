package parser

import "github.com/CWK-Elocity/excel-lib/pkg/excellib/models"

// Role is a logical role a section can play in a takeover form.
type Role string

const (
	// RoleGlobalData covers the rows above the station divider.
	RoleGlobalData Role = "global_data"
	// RoleContactPerson is the contact person section.
	RoleContactPerson Role = "contact_person"
	// RoleResponsiblePerson is the responsible person section.
	RoleResponsiblePerson Role = "responsible_person"
)

// SectionsConfig maps each logical role to the section header
// spellings that may carry it. Lists are ordered: the first alias
// present among the detected sections wins.
type SectionsConfig struct {
	GlobalDividerAliases     []string `json:"global_divider_aliases" yaml:"global_divider_aliases"`
	ContactPersonAliases     []string `json:"contact_person_aliases" yaml:"contact_person_aliases"`
	ResponsiblePersonAliases []string `json:"responsible_person_aliases" yaml:"responsible_person_aliases"`
}

// aliases returns the alias list configured for a role.
func (c SectionsConfig) aliases(role Role) []string {
	switch role {
	case RoleGlobalData:
		return c.GlobalDividerAliases
	case RoleContactPerson:
		return c.ContactPersonAliases
	case RoleResponsiblePerson:
		return c.ResponsiblePersonAliases
	}
	return nil
}

// ResolveSection returns the detected section carrying a role: the
// first configured alias present in the index. RoleGlobalData resolves
// to the divider section itself; its data range is the rows above it.
func (c SectionsConfig) ResolveSection(ix *models.SectionIndex, role Role) (models.Section, bool) {
	for _, alias := range c.aliases(role) {
		if s, ok := ix.Lookup(alias); ok {
			return s, true
		}
	}
	return models.Section{}, false
}

// ResolveRange returns the row range a role spans on the given grid.
// RoleGlobalData spans row 0 up to the row before the divider header,
// or the whole grid when no divider is configured or present.
func (c SectionsConfig) ResolveRange(grid *models.Grid, ix *models.SectionIndex, role Role) (start, end int, ok bool) {
	if role == RoleGlobalData {
		if divider, found := c.ResolveSection(ix, role); found {
			return 0, divider.Header - 1, true
		}
		return 0, grid.Rows() - 1, true
	}
	s, found := c.ResolveSection(ix, role)
	if !found {
		return 0, 0, false
	}
	return s.Start, s.End, true
}
