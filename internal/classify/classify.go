// Package classify maps free-text auto part descriptions to HS codes using
// the demo catalog and the HS reference table.
package classify

import (
	"sort"
	"strings"
	"unicode"

	"github.com/siamtrade/thai-customs-mcp/internal/catalog"
)

const (
	// DefaultMaxResults is the candidate cap applied when the caller does
	// not ask for a specific number.
	DefaultMaxResults = 5
	// MaxResultsLimit bounds how many candidates a single request may ask for.
	MaxResultsLimit = 10

	// minScore is the keyword overlap below which a candidate is discarded.
	minScore = 0.25
)

// Candidate is one classification suggestion for a part description.
type Candidate struct {
	PartID             string  `json:"part_id,omitempty"`
	DescriptionEN      string  `json:"description_en"`
	DescriptionTH      string  `json:"description_th,omitempty"`
	HSCode             string  `json:"hs_code"`
	WCOCode            string  `json:"wco_code"`
	HeadingDescription string  `json:"heading_description,omitempty"`
	Confidence         float64 `json:"confidence"`
	MatchType          string  `json:"match_type"`
}

// Result is the outcome of classifying one part description.
type Result struct {
	Query      string      `json:"query"`
	Matched    bool        `json:"matched"`
	Candidates []Candidate `json:"candidates"`
	Guidance   string      `json:"guidance,omitempty"`
}

// Classify suggests HS codes for the given part description. Exact catalog
// matches (part ID or full description) win outright; otherwise candidates
// are ranked by keyword overlap against catalog entries enriched with their
// HS heading descriptions.
func Classify(description string, maxResults int) Result {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > MaxResultsLimit {
		maxResults = MaxResultsLimit
	}

	result := Result{Query: description}

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		result.Guidance = "Provide a part description such as 'front brake pads' or a part ID such as 'P001'."
		return result
	}

	// Exact matches first: part ID or full description.
	if part, ok := catalog.FindPart(trimmed); ok {
		result.Matched = true
		result.Candidates = []Candidate{newCandidate(part, 1.0, "exact")}
		return result
	}
	for _, part := range catalog.Parts() {
		if strings.EqualFold(part.DescriptionEN, trimmed) || part.DescriptionTH == trimmed {
			result.Matched = true
			result.Candidates = []Candidate{newCandidate(part, 1.0, "exact")}
			return result
		}
	}

	queryTokens := tokenize(trimmed)
	if len(queryTokens) == 0 {
		result.Guidance = "Provide a part description such as 'front brake pads' or a part ID such as 'P001'."
		return result
	}

	var candidates []Candidate
	for _, part := range catalog.Parts() {
		text := part.DescriptionEN
		if heading, ok := catalog.HeadingFor(part.HSCode); ok {
			text += " " + heading.Description
		}

		score := overlap(queryTokens, tokenize(text))

		// Thai descriptions match by substring: Thai script has no word
		// boundaries the tokenizer could use.
		if strings.Contains(trimmed, part.DescriptionTH) || strings.Contains(part.DescriptionTH, trimmed) {
			score = 1.0
		}

		if score >= minScore {
			candidates = append(candidates, newCandidate(part, score, "keyword"))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].PartID < candidates[j].PartID
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	if len(candidates) == 0 {
		result.Guidance = "No catalog entry matched. Try the search_customs_reference tool with broader terms, or list the demo catalog with list_demo_parts."
		return result
	}

	result.Matched = true
	result.Candidates = candidates
	return result
}

func newCandidate(part catalog.Part, confidence float64, matchType string) Candidate {
	c := Candidate{
		PartID:        part.PartID,
		DescriptionEN: part.DescriptionEN,
		DescriptionTH: part.DescriptionTH,
		HSCode:        part.HSCode,
		WCOCode:       part.WCOCode,
		Confidence:    confidence,
		MatchType:     matchType,
	}
	if heading, ok := catalog.HeadingFor(part.HSCode); ok {
		c.HeadingDescription = heading.Description
	}
	return c
}

// tokenize lowercases and splits on non-letter/non-digit runes, folding
// trivial English plurals so "filters" matches "filter".
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 3 && strings.HasSuffix(f, "s") && !strings.HasSuffix(f, "ss") {
			f = strings.TrimSuffix(f, "s")
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// overlap returns the fraction of query tokens present in the target tokens.
func overlap(query, target []string) float64 {
	if len(query) == 0 {
		return 0
	}

	targetSet := make(map[string]bool, len(target))
	for _, t := range target {
		targetSet[t] = true
	}

	var hits int
	for _, q := range query {
		if targetSet[q] {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
