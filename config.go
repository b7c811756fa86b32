package greensim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration of the simulator CLI. CLI
// flags override individual fields.
type Config struct {
	Weather     string  `yaml:"weather"`      // weather CSV path; empty uses generated weather
	Schedule    string  `yaml:"schedule"`     // control schedule CSV; empty runs the controller rules
	Lamp        string  `yaml:"lamp"`         // "hps", "led" or "none"
	Days        float64 `yaml:"days"`         // generated-weather span in days
	SegmentDays float64 `yaml:"segment_days"` // season segment length in days; 0 runs in one piece
	OutputStep  float64 `yaml:"output_step"`  // result resolution in seconds
	Mature      bool    `yaml:"mature"`       // start from a mature crop
	FourHectare bool    `yaml:"four_hectare"` // apply the 4 ha greenhouse configuration
	Output      string  `yaml:"output"`       // result CSV path; empty writes to stdout
}

func DefaultConfig() *Config {
	return &Config{
		Lamp:       "led",
		Days:       1,
		OutputStep: OutputStep,
	}
}

// LoadConfig reads a YAML configuration, starting from the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes a configuration as YAML.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
