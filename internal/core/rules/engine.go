package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

// amountPattern accepts Rs., Rs or the rupee sign followed by 1-3 digits and
// optional comma-separated thousands groups. Decimal paise and repeated
// amounts are deliberately out of scope: the first whole-rupee match is
// authoritative.
const amountPattern = `(?i)(?:rs\.?|₹)\s*(\d{1,3}(?:,\d{3})*)`

// Engine evaluates the compiled rule tables over normalized text. All
// methods are total: absence of a match is a valid outcome, never an error.
// Immutable after construction, safe for concurrent use.
type Engine struct {
	set        RuleSet
	platformRx *regexp.Regexp
	canonical  map[string]string
	amountRx   *regexp.Regexp
}

// NewEngine compiles the rule set's vocabularies.
func NewEngine(set RuleSet) (*Engine, error) {
	if err := set.validate(); err != nil {
		return nil, err
	}

	quoted := make([]string, len(set.Platforms))
	canonical := make(map[string]string, len(set.Platforms))
	for i, name := range set.Platforms {
		quoted[i] = regexp.QuoteMeta(name)
		canonical[strings.ToLower(name)] = name
	}
	platformRx, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile platform vocabulary: %w", err)
	}

	return &Engine{
		set:        set,
		platformRx: platformRx,
		canonical:  canonical,
		amountRx:   regexp.MustCompile(amountPattern),
	}, nil
}

// DetectPlatform returns the canonical spelling of the first payment or
// banking platform mentioned, or nil.
func (e *Engine) DetectPlatform(text string) *string {
	m := e.platformRx.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	name, ok := e.canonical[strings.ToLower(m[1])]
	if !ok {
		name = m[1]
	}
	return &name
}

// ExtractAmount returns the first rupee amount mentioned, or nil.
func (e *Engine) ExtractAmount(text string) *float64 {
	m := e.amountRx.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return nil
	}
	return &value
}

// ClassifyCrime walks the ordered rule cascade and returns the first
// matching label, falling back to the default.
func (e *Engine) ClassifyCrime(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range e.set.CrimeRules {
		if rule.matches(lower) {
			return rule.Label
		}
	}
	return e.set.DefaultCrime
}

func (r CrimeRule) matches(lower string) bool {
	for _, phrase := range r.AnyOf {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if len(r.AllOf) == 0 {
		return false
	}
	for _, word := range r.AllOf {
		if !strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// ScoreSeverity evaluates tiers high to low; the first tier with a matching
// keyword wins and reports that keyword. No match yields the default tier
// with an empty keyword list.
func (e *Engine) ScoreSeverity(text string) domain.Severity {
	lower := strings.ToLower(text)
	for _, tier := range e.set.SeverityTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(lower, keyword) {
				return domain.Severity{
					Label:           tier.Label,
					Score:           tier.Score,
					MatchedKeywords: []string{keyword},
				}
			}
		}
	}
	return domain.Severity{
		Label:           e.set.DefaultSeverity.Label,
		Score:           e.set.DefaultSeverity.Score,
		MatchedKeywords: []string{},
	}
}
