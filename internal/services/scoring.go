package services

import "strings"

// ScoringService computes a normalized similarity between a reference answer
// and a user-submitted answer using a character-bigram Dice coefficient.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score returns a similarity in [0.0, 1.0]. Both inputs are trimmed and
// lowercased before comparison. An empty string never earns credit, even
// against another empty string.
func (s *ScoringService) Score(reference, candidate string) float64 {
	a := strings.ToLower(strings.TrimSpace(reference))
	b := strings.ToLower(strings.TrimSpace(candidate))

	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		// No bigrams producible; only an exact match counts, handled above.
		return 0.0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	// Multiset intersection: a shared bigram counts once per overlapping
	// occurrence, not once per pair of occurrences.
	shared := 0
	for i := 0; i < len(rb)-1; i++ {
		key := string(rb[i : i+2])
		if bigrams[key] > 0 {
			bigrams[key]--
			shared++
		}
	}

	return 2.0 * float64(shared) / float64(len(ra)-1+len(rb)-1)
}
