package excellib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSectionsConfig(t *testing.T) {
	doc := `
global_divider_aliases:
  - "STACJA ŁADOWANIA – DANE"
contact_person_aliases:
  - "OSOBA KONTAKTOWA - EKSPOLATACJA STACJI"
responsible_person_aliases:
  - "OSOBA ODPOWIEDZIALNA ZA PRZEJĘCIE STACJI PO STRONIE KLIENTA"
`
	path := filepath.Join(t.TempDir(), "sections.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadSectionsConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"STACJA ŁADOWANIA – DANE"}, cfg.GlobalDividerAliases)
	assert.Len(t, cfg.ContactPersonAliases, 1)
	assert.Len(t, cfg.ResponsiblePersonAliases, 1)
}

func TestLoadSectionsConfigMissingFile(t *testing.T) {
	_, err := LoadSectionsConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestShouldScanMedia(t *testing.T) {
	assert.True(t, DefaultOptions().ShouldScanMedia())

	off := false
	opts := Options{ScanMedia: &off}
	assert.False(t, opts.ShouldScanMedia())
}
