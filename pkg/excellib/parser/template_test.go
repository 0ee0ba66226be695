package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

func buildFrom(grid *models.Grid, cfg SectionsConfig) *models.Template {
	return BuildTemplate(grid, DetectSections(grid), cfg)
}

func TestBuildTemplateSplitsGlobalAndStation(t *testing.T) {
	// Divider header at row 2: labels above it are global, labels
	// below belong to the station section and not to global data.
	grid := models.NewGrid([][]any{
		{nil, "Pełna Nazwa Klienta", "ELOCITY"},     // 0
		{nil, "Numer jobu", "TEST"},                 // 1
		{"STACJA ŁADOWANIA – DANE", nil, nil},       // 2
		{int64(1), "Model", "LS4"},                  // 3
		{int64(2), "Numer seryjny", "M4756023-3"},   // 4
	})
	cfg := SectionsConfig{
		GlobalDividerAliases: []string{"STACJA ŁADOWANIA – DANE"},
	}

	tpl := buildFrom(grid, cfg)

	assert.Equal(t, models.LabelRows{
		"Pełna Nazwa Klienta": 0,
		"Numer jobu":          1,
	}, tpl.Takeover.GlobalData)
	assert.NotContains(t, tpl.Takeover.GlobalData, "Model")

	require.Contains(t, tpl.Stations, "STACJA ŁADOWANIA – DANE")
	assert.Equal(t, models.LabelRows{
		"Model":         3,
		"Numer seryjny": 4,
	}, tpl.Stations["STACJA ŁADOWANIA – DANE"])
}

func TestBuildTemplateDividerBoundary(t *testing.T) {
	// The header row itself contributes to neither side, even when
	// its label cell is populated.
	grid := models.NewGrid([][]any{
		{nil, "Numer jobu", "TEST"},              // 0
		{"STACJA ŁADOWANIA – DANE", "Uwagi", ""}, // 1
		{int64(1), "Model", "LS4"},               // 2
	})
	cfg := SectionsConfig{
		GlobalDividerAliases: []string{"STACJA ŁADOWANIA – DANE"},
	}

	tpl := buildFrom(grid, cfg)

	assert.NotContains(t, tpl.Takeover.GlobalData, "Uwagi")
	assert.NotContains(t, tpl.Stations["STACJA ŁADOWANIA – DANE"], "Uwagi")
	assert.Equal(t, models.LabelRows{"Model": 2}, tpl.Stations["STACJA ŁADOWANIA – DANE"])
}

func TestBuildTemplateNoHeadersAllGlobal(t *testing.T) {
	grid := models.NewGrid([][]any{
		{int64(1), "Model", "LS4"},
		{int64(2), nil, "skipped"},
		{int64(3), "Numer seryjny", "X1"},
	})

	tpl := buildFrom(grid, SectionsConfig{})

	assert.Equal(t, models.LabelRows{
		"Model":         0,
		"Numer seryjny": 2,
	}, tpl.Takeover.GlobalData)
	assert.Empty(t, tpl.Stations)
	assert.Nil(t, tpl.Takeover.ContactPerson)
	assert.Nil(t, tpl.Takeover.ResponsiblePerson)
}

func TestBuildTemplateRoleSections(t *testing.T) {
	grid := models.NewGrid([][]any{
		{nil, "Numer jobu", "TEST"},                 // 0
		{"STACJA ŁADOWANIA – DANE", nil, nil},       // 1
		{int64(1), "Model", "LS4"},                  // 2
		{"OSOBA KONTAKTOWA", nil, nil},              // 3
		{int64(1), "Imię i nazwisko", "Adam"},       // 4
		{int64(2), "Telefon", int64(123456789)},     // 5
	})
	cfg := SectionsConfig{
		GlobalDividerAliases: []string{"STACJA ŁADOWANIA – DANE"},
		ContactPersonAliases: []string{"KONTAKT", "OSOBA KONTAKTOWA"},
	}

	tpl := buildFrom(grid, cfg)

	// Second alias resolves when the first is absent.
	assert.Equal(t, models.LabelRows{
		"Imię i nazwisko": 4,
		"Telefon":         5,
	}, tpl.Takeover.ContactPerson)
	assert.Nil(t, tpl.Takeover.ResponsiblePerson)

	// Role sections double as stations.
	assert.Equal(t, tpl.Takeover.ContactPerson, tpl.Stations["OSOBA KONTAKTOWA"])
	assert.Contains(t, tpl.Stations, "STACJA ŁADOWANIA – DANE")
}

func TestBuildTemplateSkipsNonStringLabels(t *testing.T) {
	// Labels become JSON object keys when a template is persisted, so
	// only string cells qualify.
	grid := models.NewGrid([][]any{
		{int64(1), "Model", "LS4"},
		{int64(2), int64(42), "AC"},
		{int64(3), "", "DC"},
	})

	tpl := buildFrom(grid, SectionsConfig{})
	assert.Equal(t, models.LabelRows{"Model": 0}, tpl.Takeover.GlobalData)
}
