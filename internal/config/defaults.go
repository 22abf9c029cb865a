package config

import "github.com/katalvlaran/crucible/astar"

// presets are the policies known by name alone.
var presets = map[string]PolicyConfig{
	"standard": fromPolicy(astar.Standard()),
	"extended": fromPolicy(astar.Extended()),
}

func fromPolicy(p astar.Policy) PolicyConfig {
	return PolicyConfig{Name: p.Name, MinRun: p.MinRun, MaxRun: p.MaxRun}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if len(cfg.Policies) == 0 {
		cfg.Policies = []PolicyConfig{presets["standard"], presets["extended"]}
	}
	for i, pc := range cfg.Policies {
		if preset, ok := presets[pc.Name]; ok && pc.MinRun == 0 && pc.MaxRun == 0 {
			cfg.Policies[i] = preset
		}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "crucible"
	}
}
