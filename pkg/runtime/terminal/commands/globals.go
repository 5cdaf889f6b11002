package commands

import (
	"github.com/de-tools/block-atlas/pkg/models/domain"
	"github.com/de-tools/block-atlas/pkg/services/config"
)

// Globals holds the root command's persistent flags and the settings loaded from them.
type Globals struct {
	ConfigPath   string
	DatasetsPath string
	LogLevel     string
	Settings     *config.Settings
}

// Registry returns the dataset profiles: the ini file when one is given, otherwise a single
// default profile reading the fixed file names from dataDir.
func (g *Globals) Registry(dataDir string) (config.Registry, error) {
	if g.DatasetsPath != "" {
		return config.NewRegistry(g.DatasetsPath)
	}
	return config.NewStaticRegistry(domain.DefaultDatasetProfile(dataDir)), nil
}
