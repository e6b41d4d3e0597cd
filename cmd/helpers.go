package cmd

import (
	"strings"

	"facpoints/config"
	"facpoints/scoring"
)

// loadConfigLenient loads the configuration when one is available. Commands
// that only read the database work fine without a config file.
func loadConfigLenient() *config.Config {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil
	}
	return cfg
}

// resolveDBPath prefers the explicit flag value over the configured path.
func resolveDBPath(flagValue string, cfg *config.Config) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return "facpoints.db"
}

// scoringSourceFromConfig builds the built-in rule table with the configured
// overrides applied on top.
func scoringSourceFromConfig(cfg *config.Config) *scoring.StaticSource {
	if cfg == nil || len(cfg.Scoring) == 0 {
		return scoring.NewStaticSource()
	}

	overrides := make([]scoring.Rule, 0, len(cfg.Scoring))
	for _, override := range cfg.Scoring {
		overrides = append(overrides, scoring.Rule{
			Key:        override.Key,
			BasePoints: override.BasePoints,
			Modifier:   scoring.Modifier(strings.ToLower(strings.TrimSpace(override.Modifier))),
			MaxCount:   override.MaxCount,
			MaxPoints:  override.MaxPoints,
		})
	}
	return scoring.NewStaticSource(overrides...)
}
