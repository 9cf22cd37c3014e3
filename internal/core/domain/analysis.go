package domain

import (
	"path/filepath"
	"strings"
)

// MediaKind identifies the accepted upload formats.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaPDF   MediaKind = "pdf"
)

// DetectMediaKind resolves the upload format from the declared content type,
// falling back to the filename extension. Returns false for anything that is
// neither a PNG/JPEG image nor a PDF.
func DetectMediaKind(contentType, filename string) (MediaKind, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "image/png", "image/jpeg", "image/jpg":
		return MediaImage, true
	case "application/pdf":
		return MediaPDF, true
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return MediaImage, true
	case ".pdf":
		return MediaPDF, true
	}
	return "", false
}

// Crime-type labels form a closed set; CrimeOnlineFraud is the fallback when
// no classification rule matches.
const (
	CrimeAcidAttack      = "Acid Attack"
	CrimeCyberHarassment = "Cyber Harassment"
	CrimeRobbery         = "Robbery"
	CrimeBankFraud       = "Bank Fraud"
	CrimePhishing        = "Phishing"
	CrimeOnlineFraud     = "Online Fraud"
)

// EntitySpan is a single aggregated span returned by the NER model.
// Ordering matches text order; sub-word fragments are already merged by the
// model's aggregation strategy, except for stray "##" continuation markers.
type EntitySpan struct {
	Group string  `json:"entity_group"`
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// EntitySet holds at most one resolved value per entity category.
// Nil fields serialize as JSON null.
type EntitySet struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Date         *string `json:"date"`
	Organization *string `json:"organization"`
}

// Severity is the outcome of keyword-tier scoring: a tier label, its fixed
// score, and the keyword that decided the tier (at most one entry).
type Severity struct {
	Label           string
	Score           int
	MatchedKeywords []string
}

// Analysis is the complete per-request result. Category always duplicates
// CrimeType; older clients read one or the other.
type Analysis struct {
	Text            string    `json:"text"`
	Entities        EntitySet `json:"entities"`
	CrimeType       string    `json:"crime_type"`
	Category        string    `json:"category"`
	Platform        *string   `json:"platform"`
	Amount          *float64  `json:"amount"`
	Severity        string    `json:"severity"`
	SeverityScore   int       `json:"severity_score"`
	MatchedKeywords []string  `json:"matched_keywords"`
}
