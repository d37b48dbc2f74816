package services

import (
	"testing"

	"studyhub-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCards(n int) []models.Flashcard {
	cards := make([]models.Flashcard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, models.Flashcard{
			ID:       uint(i),
			Question: "question",
			Answer:   "answer",
		})
	}
	return cards
}

func TestSampleCards(t *testing.T) {
	t.Run("never exceeds requested count", func(t *testing.T) {
		sampled := sampleCards(makeCards(25), 10)
		assert.Len(t, sampled, 10)
	})

	t.Run("returns all cards when fewer than requested", func(t *testing.T) {
		sampled := sampleCards(makeCards(3), 10)
		assert.Len(t, sampled, 3)
	})

	t.Run("empty collection yields empty sample", func(t *testing.T) {
		sampled := sampleCards(nil, 10)
		assert.Empty(t, sampled)
	})

	t.Run("non-positive count falls back to default size", func(t *testing.T) {
		sampled := sampleCards(makeCards(25), 0)
		assert.Len(t, sampled, defaultQuizSize)
	})

	t.Run("sampled ids are distinct and from the collection", func(t *testing.T) {
		cards := makeCards(25)
		sampled := sampleCards(cards, 10)

		seen := make(map[uint]bool)
		for _, qc := range sampled {
			assert.False(t, seen[qc.ID], "id %d sampled twice", qc.ID)
			seen[qc.ID] = true
			assert.GreaterOrEqual(t, qc.ID, uint(1))
			assert.LessOrEqual(t, qc.ID, uint(25))
		}
	})
}

func TestEvaluateAnswers(t *testing.T) {
	scoring := NewScoringService()

	cards := []models.Flashcard{
		{ID: 1, UserID: 7, SetID: 1, Question: "Capital of France?", Answer: "Paris"},
		{ID: 2, UserID: 7, SetID: 1, Question: "Powerhouse of the cell?", Answer: "The mitochondria is the powerhouse of the cell"},
		{ID: 3, UserID: 7, SetID: 1, Question: "What is photosynthesis?", Answer: "Photosynthesis"},
	}

	t.Run("scores and classifies each answer in input order", func(t *testing.T) {
		answers := []QuizAnswer{
			{FlashcardID: 2, UserAnswer: "mitochondria powerhouse cell"},
			{FlashcardID: 1, UserAnswer: "paris"},
			{FlashcardID: 3, UserAnswer: "plants making food from light"},
		}

		result := evaluateAnswers(cards, answers, scoring)

		require.Equal(t, 3, result.Total)
		require.Len(t, result.Results, 3)
		assert.Equal(t, 2, result.Correct)
		assert.Equal(t, 1, result.Incorrect)

		assert.Equal(t, "Powerhouse of the cell?", result.Results[0].Question)
		assert.True(t, result.Results[0].IsCorrect)
		assert.InDelta(t, 0.75, result.Results[0].SimilarityScore, 1e-9)

		assert.Equal(t, "Capital of France?", result.Results[1].Question)
		assert.True(t, result.Results[1].IsCorrect)
		assert.Equal(t, 1.0, result.Results[1].SimilarityScore)

		assert.Equal(t, "What is photosynthesis?", result.Results[2].Question)
		assert.False(t, result.Results[2].IsCorrect)
		assert.Less(t, result.Results[2].SimilarityScore, 0.2)
	})

	t.Run("unknown card id degrades to incorrect without failing", func(t *testing.T) {
		answers := []QuizAnswer{
			{FlashcardID: 99, UserAnswer: "Paris"},
			{FlashcardID: 1, UserAnswer: "Paris"},
		}

		result := evaluateAnswers(cards, answers, scoring)

		require.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Correct)
		assert.Equal(t, 1, result.Incorrect)

		missing := result.Results[0]
		assert.Empty(t, missing.Question)
		assert.Empty(t, missing.CorrectAnswer)
		assert.Equal(t, "Paris", missing.UserAnswer)
		assert.False(t, missing.IsCorrect)
		assert.Zero(t, missing.SimilarityScore)
	})

	t.Run("empty user answer is incorrect with zero similarity", func(t *testing.T) {
		result := evaluateAnswers(cards, []QuizAnswer{{FlashcardID: 1, UserAnswer: ""}}, scoring)

		require.Len(t, result.Results, 1)
		assert.False(t, result.Results[0].IsCorrect)
		assert.Zero(t, result.Results[0].SimilarityScore)
		// The reference answer still comes back so the user can review it.
		assert.Equal(t, "Paris", result.Results[0].CorrectAnswer)
	})

	t.Run("threshold is inclusive at 0.2", func(t *testing.T) {
		// "abcdef" vs "xyzabq" share exactly the bigram "ab":
		// 2*1 / (5+5) = 0.2.
		boundary := []models.Flashcard{{ID: 10, Question: "q", Answer: "abcdef"}}
		result := evaluateAnswers(boundary, []QuizAnswer{{FlashcardID: 10, UserAnswer: "xyzabq"}}, scoring)

		require.Len(t, result.Results, 1)
		assert.InDelta(t, 0.2, result.Results[0].SimilarityScore, 1e-9)
		assert.True(t, result.Results[0].IsCorrect)
	})

	t.Run("empty submission yields empty result", func(t *testing.T) {
		result := evaluateAnswers(cards, nil, scoring)

		assert.Zero(t, result.Total)
		assert.Zero(t, result.Correct)
		assert.Zero(t, result.Incorrect)
		assert.Empty(t, result.Results)
	})

	t.Run("duplicate ids are each scored", func(t *testing.T) {
		answers := []QuizAnswer{
			{FlashcardID: 1, UserAnswer: "Paris"},
			{FlashcardID: 1, UserAnswer: "London"},
		}

		result := evaluateAnswers(cards, answers, scoring)

		require.Equal(t, 2, result.Total)
		assert.True(t, result.Results[0].IsCorrect)
		assert.False(t, result.Results[1].IsCorrect)
		assert.Equal(t, result.Correct+result.Incorrect, result.Total)
	})
}
