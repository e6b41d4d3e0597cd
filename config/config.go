package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDBPath  = "db_path"
	KeyScoring = "scoring"
)

type Config struct {
	DBPath  string         `mapstructure:"db_path" validate:"required"`
	Scoring []RuleOverride `mapstructure:"scoring"`
}

// RuleOverride replaces or adds one scoring rule on top of the built-in set.
type RuleOverride struct {
	Key        string `mapstructure:"key"`
	BasePoints int    `mapstructure:"base_points"`
	Modifier   string `mapstructure:"modifier"`
	MaxCount   int    `mapstructure:"max_count"`
	MaxPoints  int    `mapstructure:"max_points"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# facpoints configuration
db_path: "facpoints.db"

# Scoring overrides replace or add rules on top of the built-in table.
# modifier: fixed | count | impact_factor
scoring: []
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateOverrides(cfg.Scoring); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, "facpoints.db")
	v.SetDefault(KeyScoring, []map[string]any{})
}

func validateOverrides(overrides []RuleOverride) error {
	validModifiers := map[string]bool{
		"":              true,
		"fixed":         true,
		"count":         true,
		"impact_factor": true,
	}
	seen := make(map[string]struct{}, len(overrides))
	for i, override := range overrides {
		key := strings.TrimSpace(override.Key)
		if key == "" {
			return fmt.Errorf("validation failed: scoring[%d].key is required", i)
		}
		lower := strings.ToLower(key)
		if _, exists := seen[lower]; exists {
			return fmt.Errorf("validation failed: duplicate scoring key %q", key)
		}
		seen[lower] = struct{}{}
		modifier := strings.ToLower(strings.TrimSpace(override.Modifier))
		if !validModifiers[modifier] {
			return fmt.Errorf(
				"validation failed: scoring[%d].modifier %q is not supported (valid: fixed, count, impact_factor)",
				i,
				override.Modifier,
			)
		}
		if override.BasePoints < 0 {
			return fmt.Errorf("validation failed: scoring[%d].base_points must not be negative", i)
		}
		if override.MaxCount < 0 || override.MaxPoints < 0 {
			return fmt.Errorf("validation failed: scoring[%d] caps must not be negative", i)
		}
	}
	return nil
}
