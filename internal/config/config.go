package config

import "github.com/katalvlaran/crucible/astar"

// Config is the root configuration.
type Config struct {
	// Input is the path of the digit grid file.
	Input string `yaml:"input"`

	// Policies are evaluated in order against the grid.
	Policies []PolicyConfig `yaml:"policies"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// PolicyConfig names a move policy. The names "standard" and "extended"
// may omit the run bounds; any other name must set both.
type PolicyConfig struct {
	Name   string `yaml:"name"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// LoggingConfig selects level ("debug", "info", "warn", "error") and
// format ("json", "text").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Policy converts pc into an astar.Policy.
func (pc PolicyConfig) Policy() (astar.Policy, error) {
	return astar.NewPolicy(pc.Name, pc.MinRun, pc.MaxRun)
}

// SearchPolicies converts every configured policy, in order.
func (c *Config) SearchPolicies() ([]astar.Policy, error) {
	out := make([]astar.Policy, 0, len(c.Policies))
	for _, pc := range c.Policies {
		p, err := pc.Policy()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Select keeps only the policies whose names are listed, in the listed
// order. An empty list keeps everything.
func (c *Config) Select(names []string) error {
	if len(names) == 0 {
		return nil
	}
	byName := make(map[string]PolicyConfig, len(c.Policies))
	for _, pc := range c.Policies {
		byName[pc.Name] = pc
	}
	picked := make([]PolicyConfig, 0, len(names))
	for _, n := range names {
		pc, ok := byName[n]
		if !ok {
			if preset, isPreset := presets[n]; isPreset {
				pc = preset
			} else {
				return FieldError{Field: "policies", Message: "unknown policy " + n}
			}
		}
		picked = append(picked, pc)
	}
	c.Policies = picked

	return nil
}
