package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name      string
		reference string
		candidate string
		want      float64
	}{
		{
			name:      "case insensitive exact match",
			reference: "Paris",
			candidate: "paris",
			want:      1.0,
		},
		{
			name:      "surrounding whitespace ignored",
			reference: "  Paris ",
			candidate: "paris",
			want:      1.0,
		},
		{
			name:      "empty candidate scores zero",
			reference: "Paris",
			candidate: "",
			want:      0.0,
		},
		{
			name:      "whitespace-only candidate scores zero",
			reference: "Paris",
			candidate: "   ",
			want:      0.0,
		},
		{
			name:      "both empty scores zero",
			reference: "",
			candidate: "",
			want:      0.0,
		},
		{
			name:      "single character equal",
			reference: "a",
			candidate: "A",
			want:      1.0,
		},
		{
			name:      "single character different",
			reference: "a",
			candidate: "b",
			want:      0.0,
		},
		{
			name:      "single character vs longer string",
			reference: "a",
			candidate: "ab",
			want:      0.0,
		},
		{
			name:      "no overlap at all",
			reference: "abc",
			candidate: "xyz",
			want:      0.0,
		},
		{
			// "aa" appears twice in the reference and once in the
			// candidate: the intersection counts it once, not twice.
			name:      "repeated bigrams use multiset intersection",
			reference: "aaa",
			candidate: "aa",
			want:      2.0 * 1 / 3,
		},
		{
			name:      "partial paraphrase keeps most bigrams",
			reference: "The mitochondria is the powerhouse of the cell",
			candidate: "mitochondria powerhouse cell",
			want:      0.75, // 2*27 / (45+27)
		},
		{
			name:      "unrelated paraphrase scores near zero",
			reference: "Photosynthesis",
			candidate: "plants making food from light",
			want:      2.0 * 1 / 41, // only "nt" is shared
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(tt.reference, tt.candidate), 1e-9)
		})
	}
}

func TestScoreSymmetry(t *testing.T) {
	s := NewScoringService()

	pairs := [][2]string{
		{"Paris", "paris"},
		{"photosynthesis", "the process plants use"},
		{"aaa", "aa"},
		{"", "something"},
		{"night", "nacht"},
		{"The mitochondria is the powerhouse of the cell", "mitochondria powerhouse cell"},
	}

	for _, p := range pairs {
		assert.Equal(t, s.Score(p[0], p[1]), s.Score(p[1], p[0]), "score(%q,%q) not symmetric", p[0], p[1])
	}
}

func TestScoreSelfIdentity(t *testing.T) {
	s := NewScoringService()

	for _, v := range []string{"a", "ab", "Paris", "the powerhouse of the cell", "héllo wörld"} {
		assert.Equal(t, 1.0, s.Score(v, v), "score(%q,%q)", v, v)
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScoringService()

	pairs := [][2]string{
		{"", ""},
		{"a", "b"},
		{"abab", "abab"},
		{"night", "nacht"},
		{"mitochondria", "powerhouse"},
		{"aaaa", "aa"},
		{"the quick brown fox", "fox brown quick the"},
	}

	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0, "score(%q,%q)", p[0], p[1])
		assert.LessOrEqual(t, got, 1.0, "score(%q,%q)", p[0], p[1])
	}
}
