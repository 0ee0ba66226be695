package parser

import "github.com/CWK-Elocity/excel-lib/pkg/excellib/models"

// BuildTemplate learns the label positions of an exemplar form. Global
// data covers the rows above the divider header, or the whole grid
// when no divider alias resolves. The person roles map their resolved
// sections and are nil when absent. Every detected section also
// becomes a stations entry, the role sections included.
func BuildTemplate(grid *models.Grid, sections *models.SectionIndex, cfg SectionsConfig) *models.Template {
	globalStart, globalEnd, _ := cfg.ResolveRange(grid, sections, RoleGlobalData)

	tpl := &models.Template{
		Takeover: models.TakeoverTemplate{
			GlobalData:        collectLabels(grid, globalStart, globalEnd),
			ContactPerson:     buildRole(grid, sections, cfg, RoleContactPerson),
			ResponsiblePerson: buildRole(grid, sections, cfg, RoleResponsiblePerson),
		},
		Stations: make(map[string]models.LabelRows, sections.Len()),
	}

	for _, s := range sections.Sections() {
		tpl.Stations[s.Name] = collectLabels(grid, s.Start, s.End)
	}

	return tpl
}

// buildRole maps a person role's section, or nil when no alias
// resolves.
func buildRole(grid *models.Grid, sections *models.SectionIndex, cfg SectionsConfig, role Role) models.LabelRows {
	start, end, ok := cfg.ResolveRange(grid, sections, role)
	if !ok {
		return nil
	}
	return collectLabels(grid, start, end)
}

// collectLabels walks a row range and records each non-empty string in
// the label column at its row index. Labels are stored as read; the
// locator normalizes at lookup time instead.
func collectLabels(grid *models.Grid, start, end int) models.LabelRows {
	labels := make(models.LabelRows)
	for row := start; row <= end; row++ {
		label, ok := grid.Value(row, LabelCol).(string)
		if !ok || label == "" {
			continue
		}
		labels[label] = row
	}
	return labels
}
