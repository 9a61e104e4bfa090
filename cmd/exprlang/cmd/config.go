package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// rcConfig holds the defaults an optional .exprlangrc.yaml supplies for
// flags the user didn't set explicitly. Absence of the file is not an
// error — every field just keeps its zero value.
type rcConfig struct {
	TraceDir string `yaml:"trace_dir"`
	Format   string `yaml:"format"`
}

// loadConfig reads .exprlangrc.yaml from the current directory, if it
// exists. The root command calls it from its persistent pre-run hook,
// which cobra runs after the flags have been parsed.
func loadConfig() (rcConfig, error) {
	var cfg rcConfig
	data, err := os.ReadFile(".exprlangrc.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
