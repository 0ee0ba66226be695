package parser

import (
	"fmt"
	"reflect"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

// Assemble projects every data column of the grid through a reconciled
// template and folds the columns into record groups. Columns sharing a
// deeply equal global-data projection join the same group, first-seen
// order; their person blocks merge with a sticky conflict marker and
// each column appends one station record. Columns whose global data
// projects to nothing but empty values are skipped and reported as
// notices.
func Assemble(grid *models.Grid, tpl *models.Template) ([]*models.RecordGroup, []string) {
	var groups []*models.RecordGroup
	var notices []string

	for col := FirstDataCol; col < grid.Cols(); col++ {
		global := project(grid, tpl.Takeover.GlobalData, col)
		if allEmpty(global) {
			notices = append(notices, fmt.Sprintf("column %d skipped: no global data", col))
			continue
		}

		group := matchGroup(groups, global)
		if group == nil {
			group = &models.RecordGroup{
				GlobalData:        global,
				ContactPerson:     models.AbsentPerson(),
				ResponsiblePerson: models.AbsentPerson(),
			}
			groups = append(groups, group)
		}

		if tpl.Takeover.ContactPerson != nil {
			group.ContactPerson = group.ContactPerson.Merge(project(grid, tpl.Takeover.ContactPerson, col))
		}
		if tpl.Takeover.ResponsiblePerson != nil {
			group.ResponsiblePerson = group.ResponsiblePerson.Merge(project(grid, tpl.Takeover.ResponsiblePerson, col))
		}

		station := make(models.StationRecord, len(tpl.Stations))
		for name, labels := range tpl.Stations {
			if labels == nil {
				continue
			}
			station[name] = project(grid, labels, col)
		}
		group.Stations = append(group.Stations, station)
	}

	return groups, notices
}

// project reads one column's value for every label of a leaf mapping.
// Missing rows (RowNotFound or out of range) read as nil; the label is
// kept either way.
func project(grid *models.Grid, labels models.LabelRows, col int) map[string]any {
	out := make(map[string]any, len(labels))
	for label, row := range labels {
		out[label] = grid.Value(row, col)
	}
	return out
}

// allEmpty reports whether every projected value is empty.
func allEmpty(projected map[string]any) bool {
	for _, v := range projected {
		if !models.IsEmpty(v) {
			return false
		}
	}
	return true
}

// matchGroup returns the first existing group with deeply equal global
// data, or nil.
func matchGroup(groups []*models.RecordGroup, global map[string]any) *models.RecordGroup {
	for _, g := range groups {
		if reflect.DeepEqual(g.GlobalData, global) {
			return g
		}
	}
	return nil
}
