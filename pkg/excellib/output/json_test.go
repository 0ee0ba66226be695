package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

func sampleTemplate() *models.Template {
	return &models.Template{
		Takeover: models.TakeoverTemplate{
			GlobalData:    models.LabelRows{"Numer jobu": 1, "Pełna Nazwa Klienta": 0},
			ContactPerson: models.LabelRows{"Telefon": 8},
		},
		Stations: map[string]models.LabelRows{
			"STACJA ŁADOWANIA – DANE": {"Model": 3},
		},
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	tpl := sampleTemplate()

	data, err := ToJSON(tpl, true)
	require.NoError(t, err)

	decoded, err := TemplateFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, tpl, decoded)
	assert.Nil(t, decoded.Takeover.ResponsiblePerson)
}

func TestTemplateFromJSONNullLeaves(t *testing.T) {
	doc := `{
		"takeover": {
			"global_data": {"Model": 3},
			"contact_person": null,
			"responsible_person": null
		},
		"stations": {"PUSTA": null}
	}`

	tpl, err := TemplateFromJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, models.LabelRows{"Model": 3}, tpl.Takeover.GlobalData)
	assert.Nil(t, tpl.Takeover.ContactPerson)
	assert.Nil(t, tpl.Stations["PUSTA"])
}

func TestTemplateFromJSONMalformedLeaf(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind string
	}{
		{
			"number leaf",
			`{"takeover": {"global_data": 7}}`,
			"number",
		},
		{
			"string leaf",
			`{"takeover": {"global_data": {}, "contact_person": "oops"}}`,
			"string",
		},
		{
			"array station",
			`{"takeover": {"global_data": {}}, "stations": {"S": [1, 2]}}`,
			"array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TemplateFromJSON([]byte(tt.doc))
			var malformed *parser.MalformedTemplateSectionError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.kind, malformed.Kind)
		})
	}
}

func TestPersonFieldsJSON(t *testing.T) {
	absent, err := json.Marshal(models.AbsentPerson())
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	known, err := json.Marshal(models.KnownPerson(map[string]any{"Telefon": "111"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Telefon": "111"}`, string(known))

	conflicting, err := json.Marshal(models.ConflictingPerson())
	require.NoError(t, err)
	assert.Equal(t, `"differs per entity"`, string(conflicting))
}

func TestRecordGroupJSONConflict(t *testing.T) {
	group := &models.RecordGroup{
		GlobalData:        map[string]any{"Klient": "ELOCITY"},
		ContactPerson:     models.ConflictingPerson(),
		ResponsiblePerson: models.AbsentPerson(),
	}

	data, err := ToJSON(group, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"contact_person":"differs per entity"`)
	assert.Contains(t, string(data), `"responsible_person":null`)
}

func TestSummarizeTemplateRowOrder(t *testing.T) {
	lines := SummarizeTemplate(sampleTemplate())

	require.NotEmpty(t, lines)
	assert.Equal(t, "global_data: 2 labels", lines[0])
	// Labels sorted by row, not alphabetically.
	assert.Equal(t, "  row 0: Pełna Nazwa Klienta", lines[1])
	assert.Equal(t, "  row 1: Numer jobu", lines[2])
	assert.Contains(t, lines, "responsible_person: absent")
}
