package excellib

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

// Options configures form loading.
type Options struct {
	// Sections maps logical roles to their section header aliases.
	Sections parser.SectionsConfig
	// ScanMedia specifies whether to enumerate xl/media archive
	// entries in the container report. If nil, defaults to true.
	ScanMedia *bool
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldScanMedia returns whether to enumerate embedded media files.
func (o Options) ShouldScanMedia() bool {
	if o.ScanMedia != nil {
		return *o.ScanMedia
	}
	return true
}

// LoadSectionsConfig reads a sections alias config from a YAML file.
func LoadSectionsConfig(path string) (parser.SectionsConfig, error) {
	var cfg parser.SectionsConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read sections config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse sections config: %w", err)
	}
	return cfg, nil
}
