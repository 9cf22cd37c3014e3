package rules

import (
	"strings"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

// ResolveEntities reduces ordered NER spans to at most one value per
// category. The person name is the first run of consecutive PER spans joined
// with spaces; later runs never overwrite it. Location (LOC or GPE), date,
// and organization each keep their first occurrence only.
func ResolveEntities(spans []domain.EntitySpan) domain.EntitySet {
	var out domain.EntitySet

	var nameTokens []string
	for _, span := range spans {
		if span.Group == "PER" {
			if rest, ok := strings.CutPrefix(span.Word, "##"); ok && len(nameTokens) > 0 {
				// Continuation of the previous sub-word, glued without a space.
				nameTokens[len(nameTokens)-1] += stripContinuation(rest)
				continue
			}
			nameTokens = append(nameTokens, stripContinuation(span.Word))
			continue
		}
		if len(nameTokens) > 0 && out.Name == nil {
			name := strings.Join(nameTokens, " ")
			out.Name = &name
		}
		nameTokens = nil
	}
	if len(nameTokens) > 0 && out.Name == nil {
		name := strings.Join(nameTokens, " ")
		out.Name = &name
	}

	for _, span := range spans {
		word := stripContinuation(span.Word)
		switch span.Group {
		case "LOC", "GPE":
			if out.Location == nil {
				out.Location = &word
			}
		case "DATE":
			if out.Date == nil {
				out.Date = &word
			}
		case "ORG":
			if out.Organization == nil {
				out.Organization = &word
			}
		}
	}

	return out
}

// stripContinuation drops the "##" sub-word markers the model's aggregation
// occasionally leaves behind.
func stripContinuation(word string) string {
	return strings.ReplaceAll(word, "##", "")
}
