package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

// CrimeRule matches when any AnyOf phrase is present, or when AllOf is
// non-empty and every AllOf word is present (not necessarily adjacent).
type CrimeRule struct {
	Label string   `yaml:"label"`
	AnyOf []string `yaml:"any_of"`
	AllOf []string `yaml:"all_of"`
}

// SeverityTier binds a fixed score to an ordered keyword list.
type SeverityTier struct {
	Label    string   `yaml:"label"`
	Score    int      `yaml:"score"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet holds every vocabulary the analysis engine evaluates. Loaded once
// at startup and read-only afterward.
type RuleSet struct {
	Platforms       []string       `yaml:"platforms"`
	CrimeRules      []CrimeRule    `yaml:"crime_rules"`
	DefaultCrime    string         `yaml:"default_crime"`
	SeverityTiers   []SeverityTier `yaml:"severity_tiers"`
	DefaultSeverity SeverityTier   `yaml:"default_severity"`
}

// Defaults returns the built-in rule tables. Rule order is part of the
// contract: harassment categories preempt financial ones, and severity tiers
// are evaluated high to low.
func Defaults() RuleSet {
	return RuleSet{
		Platforms: []string{
			"PhonePe", "Paytm", "Google Pay", "GPay", "BHIM",
			"UPI", "SBI", "HDFC", "ICICI", "Axis",
		},
		CrimeRules: []CrimeRule{
			{
				Label: domain.CrimeAcidAttack,
				AnyOf: []string{"acid attack"},
				AllOf: []string{"acid", "attack"},
			},
			{
				Label: domain.CrimeCyberHarassment,
				AnyOf: []string{"harassment", "blackmail", "sextortion", "stalking", "threat"},
			},
			{
				Label: domain.CrimeRobbery,
				AnyOf: []string{"robbery", "stolen", "theft", "snatched"},
			},
			{
				Label: domain.CrimeBankFraud,
				AnyOf: []string{
					"bank fraud", "upi", "phonepe", "paytm", "gpay",
					"google pay", "bhim", "otp", "fraud", "scam",
				},
			},
			{
				Label: domain.CrimePhishing,
				AnyOf: []string{"phishing", "fake link", "kyc", "verify", "login", "password"},
			},
		},
		DefaultCrime: domain.CrimeOnlineFraud,
		SeverityTiers: []SeverityTier{
			{
				Label: "high", Score: 90,
				Keywords: []string{"harassment", "acid attack", "blackmail", "rape", "assault", "threat"},
			},
			{
				Label: "medium", Score: 70,
				Keywords: []string{
					"bank fraud", "upi", "phonepe", "paytm", "gpay",
					"google pay", "bhim", "otp", "phishing", "fraud", "scam",
				},
			},
			{
				Label: "medium", Score: 50,
				Keywords: []string{"robbery", "stolen", "theft"},
			},
		},
		DefaultSeverity: SeverityTier{Label: "low", Score: 30},
	}
}

// LoadFile reads a YAML rule-set override. Sections omitted from the file
// keep their built-in defaults.
func LoadFile(path string) (RuleSet, error) {
	set := Defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rule set: %w", err)
	}

	var override RuleSet
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return RuleSet{}, fmt.Errorf("parse rule set: %w", err)
	}

	if len(override.Platforms) > 0 {
		set.Platforms = override.Platforms
	}
	if len(override.CrimeRules) > 0 {
		set.CrimeRules = override.CrimeRules
	}
	if override.DefaultCrime != "" {
		set.DefaultCrime = override.DefaultCrime
	}
	if len(override.SeverityTiers) > 0 {
		set.SeverityTiers = override.SeverityTiers
	}
	if override.DefaultSeverity.Label != "" {
		set.DefaultSeverity = override.DefaultSeverity
	}
	return set, nil
}

func (s RuleSet) validate() error {
	if len(s.Platforms) == 0 {
		return fmt.Errorf("rule set: empty platform vocabulary")
	}
	if s.DefaultCrime == "" {
		return fmt.Errorf("rule set: missing default crime label")
	}
	if s.DefaultSeverity.Label == "" || s.DefaultSeverity.Score == 0 {
		return fmt.Errorf("rule set: missing default severity tier")
	}
	for i, rule := range s.CrimeRules {
		if rule.Label == "" {
			return fmt.Errorf("rule set: crime rule %d has no label", i)
		}
		if len(rule.AnyOf) == 0 && len(rule.AllOf) == 0 {
			return fmt.Errorf("rule set: crime rule %q has no keywords", rule.Label)
		}
	}
	for i, tier := range s.SeverityTiers {
		if tier.Label == "" || len(tier.Keywords) == 0 {
			return fmt.Errorf("rule set: severity tier %d is incomplete", i)
		}
	}
	return nil
}
