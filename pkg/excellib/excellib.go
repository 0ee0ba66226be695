// Package excellib extracts structured takeover records from
// spreadsheet forms: it learns a label template from an exemplar file
// and re-applies it to other files of the same layout, tolerating row
// drift.
package excellib

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

// FormFile is a loaded form: the first worksheet's grid, its section
// index, and the container inspection report.
type FormFile struct {
	// Grid is the cell grid of the first worksheet.
	Grid *models.Grid
	// Sections is the grid's section index, computed once at load.
	Sections *models.SectionIndex
	// Report carries container findings and advisory notices.
	Report *models.WorkbookReport
}

// Load reads a form from a file on disk.
func Load(path string, opts Options) (*FormFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return LoadBytes(data, opts)
}

// LoadReader reads a form from a stream.
func LoadReader(r io.Reader, opts Options) (*FormFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data, opts)
}

// LoadBytes validates the workbook container, reports non-cell
// objects, and parses the first worksheet into a grid. Extra
// worksheets are an advisory notice, never an error.
func LoadBytes(data []byte, opts Options) (*FormFile, error) {
	report, err := parser.InspectContainer(data, opts.ShouldScanMedia())
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidContainer)
	}
	if len(sheets) > 1 {
		report.Notices = append(report.Notices,
			fmt.Sprintf("workbook has %d worksheets; only the first is used", len(sheets)))
	}

	grid, err := parser.BuildGrid(f, sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return &FormFile{
		Grid:     grid,
		Sections: parser.DetectSections(grid),
		Report:   report,
	}, nil
}

// BuildTemplate learns the label template of this form.
func (ff *FormFile) BuildTemplate(cfg parser.SectionsConfig) *models.Template {
	return parser.BuildTemplate(ff.Grid, ff.Sections, cfg)
}

// Reconcile re-validates a template's row indices against this form.
func (ff *FormFile) Reconcile(tpl *models.Template, cfg parser.SectionsConfig) (*models.Template, error) {
	return parser.Reconcile(ff.Grid, ff.Sections, cfg, tpl)
}

// Extract reconciles the template against this form and assembles one
// record group per distinct entity found in the data columns. The
// returned notices list the columns skipped for lack of global data.
func (ff *FormFile) Extract(tpl *models.Template, cfg parser.SectionsConfig) ([]*models.RecordGroup, []string, error) {
	reconciled, err := ff.Reconcile(tpl, cfg)
	if err != nil {
		return nil, nil, err
	}
	groups, notices := parser.Assemble(ff.Grid, reconciled)
	return groups, notices, nil
}

// FindRow locates a label's row in this form's label column.
func (ff *FormFile) FindRow(key any, scope parser.Scope, cfg parser.SectionsConfig) (int, error) {
	return parser.NewLocator(ff.Grid, ff.Sections, cfg).Find(key, scope)
}
