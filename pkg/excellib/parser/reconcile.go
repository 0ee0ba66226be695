package parser

import "github.com/CWK-Elocity/excel-lib/pkg/excellib/models"

// Reconcile re-validates every row index of a template against the
// given grid and returns a fresh template with the indices repaired.
// A label whose recorded row still reads back as that label keeps its
// row; anything else is re-located through the locator, scoped to the
// enclosing role or section. Labels that cannot be found get
// RowNotFound; labels that stay ambiguous inside their scope fail the
// whole call. The input template is never mutated and no label is ever
// added or dropped.
func Reconcile(grid *models.Grid, sections *models.SectionIndex, cfg SectionsConfig, tpl *models.Template) (*models.Template, error) {
	loc := NewLocator(grid, sections, cfg)

	global, err := reconcileLabels(grid, loc, tpl.Takeover.GlobalData, RoleScope(RoleGlobalData))
	if err != nil {
		return nil, err
	}
	contact, err := reconcileLabels(grid, loc, tpl.Takeover.ContactPerson, RoleScope(RoleContactPerson))
	if err != nil {
		return nil, err
	}
	responsible, err := reconcileLabels(grid, loc, tpl.Takeover.ResponsiblePerson, RoleScope(RoleResponsiblePerson))
	if err != nil {
		return nil, err
	}

	out := &models.Template{
		Takeover: models.TakeoverTemplate{
			GlobalData:        global,
			ContactPerson:     contact,
			ResponsiblePerson: responsible,
		},
	}

	if tpl.Stations != nil {
		out.Stations = make(map[string]models.LabelRows, len(tpl.Stations))
		for name, labels := range tpl.Stations {
			reconciled, err := reconcileLabels(grid, loc, labels, SectionScope(name))
			if err != nil {
				return nil, err
			}
			out.Stations[name] = reconciled
		}
	}

	return out, nil
}

// reconcileLabels repairs one leaf mapping. nil passes through as nil.
func reconcileLabels(grid *models.Grid, loc *Locator, labels models.LabelRows, scope Scope) (models.LabelRows, error) {
	if labels == nil {
		return nil, nil
	}
	out := make(models.LabelRows, len(labels))
	for label, expected := range labels {
		if Match(grid.Value(expected, LabelCol), label) {
			out[label] = expected
			continue
		}
		row, err := loc.Find(label, scope)
		if err != nil {
			return nil, err
		}
		out[label] = row
	}
	return out, nil
}
