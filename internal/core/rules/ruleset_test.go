package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
platforms:
  - MobiKwik
  - FreeCharge
severity_tiers:
  - label: high
    score: 95
    keywords: ["kidnapping"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if len(set.Platforms) != 2 || set.Platforms[0] != "MobiKwik" {
		t.Fatalf("expected overridden platforms, got %v", set.Platforms)
	}
	if len(set.SeverityTiers) != 1 || set.SeverityTiers[0].Score != 95 {
		t.Fatalf("expected overridden severity tiers, got %v", set.SeverityTiers)
	}

	// Untouched sections keep their defaults.
	if len(set.CrimeRules) != 5 {
		t.Fatalf("expected default crime rules preserved, got %d", len(set.CrimeRules))
	}
	if set.DefaultCrime != "Online Fraud" {
		t.Fatalf("expected default crime label preserved, got %q", set.DefaultCrime)
	}
	if set.DefaultSeverity.Score != 30 {
		t.Fatalf("expected default severity preserved, got %d", set.DefaultSeverity.Score)
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing rules file")
	}
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("platforms: [unterminated"), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewEngineRejectsIncompleteRuleSet(t *testing.T) {
	set := Defaults()
	set.CrimeRules[1].AnyOf = nil

	if _, err := NewEngine(set); err == nil {
		t.Fatalf("expected validation error for rule without keywords")
	}
}

func TestOverriddenEngineUsesNewVocabulary(t *testing.T) {
	set := Defaults()
	set.Platforms = []string{"MobiKwik"}

	engine, err := NewEngine(set)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if got := engine.DetectPlatform("paid with mobikwik wallet"); got == nil || *got != "MobiKwik" {
		t.Fatalf("expected MobiKwik, got %v", got)
	}
	if got := engine.DetectPlatform("paid with PhonePe"); got != nil {
		t.Fatalf("expected default vocabulary replaced, got %q", *got)
	}
}
