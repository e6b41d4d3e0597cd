package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_Valid(t *testing.T) {
	t.Parallel()

	content := []byte(`
db_path: "./facpoints.db"
scoring:
  - key: committee_unmc
    base_points: 1500
  - key: mytip_each
    base_points: 25
    modifier: count
    max_points: 3000
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "./facpoints.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if len(cfg.Scoring) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(cfg.Scoring))
	}
	if cfg.Scoring[1].Modifier != "count" || cfg.Scoring[1].MaxPoints != 3000 {
		t.Fatalf("unexpected override: %+v", cfg.Scoring[1])
	}
}

func TestValidateYAMLContent_DefaultsApply(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`scoring: []`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "facpoints.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestValidateYAMLContent_MissingOverrideKey(t *testing.T) {
	t.Parallel()

	content := []byte(`
db_path: "./facpoints.db"
scoring:
  - base_points: 100
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected error for override without key")
	}
}

func TestValidateYAMLContent_DuplicateOverrideKey(t *testing.T) {
	t.Parallel()

	content := []byte(`
db_path: "./facpoints.db"
scoring:
  - key: committee_unmc
    base_points: 100
  - key: Committee_UNMC
    base_points: 200
`)

	_, err := ValidateYAMLContent(content)
	if err == nil || !strings.Contains(err.Error(), "duplicate scoring key") {
		t.Fatalf("expected duplicate key error, got: %v", err)
	}
}

func TestValidateYAMLContent_InvalidModifier(t *testing.T) {
	t.Parallel()

	content := []byte(`
db_path: "./facpoints.db"
scoring:
  - key: committee_unmc
    base_points: 100
    modifier: percentage
`)

	_, err := ValidateYAMLContent(content)
	if err == nil || !strings.Contains(err.Error(), "modifier") {
		t.Fatalf("expected modifier error, got: %v", err)
	}
}

func TestValidateYAMLContent_NegativeValues(t *testing.T) {
	t.Parallel()

	content := []byte(`
db_path: "./facpoints.db"
scoring:
  - key: committee_unmc
    base_points: -5
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected error for negative base points")
	}
}

func TestExampleYAML_Validates(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("example template must validate: %v", err)
	}
}
