package services

import (
	"math/rand"

	"studyhub-backend/internal/models"

	"gorm.io/gorm"
)

// Answers at or above this bigram overlap count as correct. Deliberately
// lenient so paraphrased and partial answers still pass.
const correctThreshold = 0.2

const defaultQuizSize = 10

type FlashcardService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewFlashcardService(db *gorm.DB, scoring *ScoringService) *FlashcardService {
	return &FlashcardService{db: db, scoring: scoring}
}

type CreateSetInput struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"Biology 101"`
	Description string `json:"description" example:"Cell structure basics"`
	GroupID     *uint  `json:"groupId,omitempty"`
}

type CreateCardInput struct {
	SetID    uint   `json:"setId" binding:"required"`
	Question string `json:"question" binding:"required" example:"What is the powerhouse of the cell?"`
	Answer   string `json:"answer" binding:"required" example:"The mitochondria"`
	GroupID  *uint  `json:"groupId,omitempty"`
}

func (s *FlashcardService) CreateSet(userID uint, input CreateSetInput) (*models.FlashcardSet, error) {
	set := models.FlashcardSet{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		GroupID:     input.GroupID,
	}
	if err := s.db.Create(&set).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *FlashcardService) GetSets(userID uint, groupID *uint) ([]models.FlashcardSet, error) {
	query := s.db.Where("user_id = ?", userID)
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	var sets []models.FlashcardSet
	if err := query.Order("created_at DESC").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *FlashcardService) CreateCard(userID uint, input CreateCardInput) (*models.Flashcard, error) {
	var set models.FlashcardSet
	if err := s.db.Where("id = ? AND user_id = ?", input.SetID, userID).First(&set).Error; err != nil {
		return nil, ErrNotFound
	}

	card := models.Flashcard{
		UserID:   userID,
		SetID:    input.SetID,
		Question: input.Question,
		Answer:   input.Answer,
		GroupID:  input.GroupID,
	}
	if err := s.db.Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *FlashcardService) GetCardsBySet(userID, setID uint) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := s.db.Where("user_id = ? AND set_id = ?", userID, setID).
		Order("created_at ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *FlashcardService) DeleteSet(userID, setID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", setID, userID).Delete(&models.FlashcardSet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return s.db.Where("set_id = ? AND user_id = ?", setID, userID).Delete(&models.Flashcard{}).Error
}

func (s *FlashcardService) DeleteCard(userID, cardID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.Flashcard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// QuizCard is the projection handed out when a quiz starts. The answer is
// intentionally absent so the quiz-start response cannot be used to cheat.
type QuizCard struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

// GetQuizCards returns up to count random cards from the user's set. Fewer
// cards than requested is not an error; all of them are returned.
func (s *FlashcardService) GetQuizCards(userID, setID uint, count int) ([]QuizCard, error) {
	var cards []models.Flashcard
	if err := s.db.Where("user_id = ? AND set_id = ?", userID, setID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return sampleCards(cards, count), nil
}

func sampleCards(cards []models.Flashcard, count int) []QuizCard {
	if count <= 0 {
		count = defaultQuizSize
	}

	idx := rand.Perm(len(cards))
	if count > len(cards) {
		count = len(cards)
	}

	sampled := make([]QuizCard, 0, count)
	for _, i := range idx[:count] {
		sampled = append(sampled, QuizCard{ID: cards[i].ID, Question: cards[i].Question})
	}
	return sampled
}

type QuizAnswer struct {
	FlashcardID uint   `json:"flashcardId" binding:"required"`
	UserAnswer  string `json:"userAnswer"`
}

type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers" binding:"required"`
}

type QuizItemResult struct {
	Question        string  `json:"question,omitempty"`
	CorrectAnswer   string  `json:"correctAnswer,omitempty"`
	UserAnswer      string  `json:"userAnswer"`
	IsCorrect       bool    `json:"isCorrect"`
	SimilarityScore float64 `json:"similarityScore"`
}

type QuizResult struct {
	Total     int              `json:"total"`
	Correct   int              `json:"correct"`
	Incorrect int              `json:"incorrect"`
	Results   []QuizItemResult `json:"results"`
}

// EvaluateQuiz scores a submission against the user's own cards. Ids that do
// not resolve to a card owned by userID are scored as incorrect with zero
// similarity rather than failing the batch.
func (s *FlashcardService) EvaluateQuiz(userID uint, submission QuizSubmission) (*QuizResult, error) {
	ids := make([]uint, 0, len(submission.Answers))
	seen := make(map[uint]bool, len(submission.Answers))
	for _, a := range submission.Answers {
		if !seen[a.FlashcardID] {
			seen[a.FlashcardID] = true
			ids = append(ids, a.FlashcardID)
		}
	}

	var cards []models.Flashcard
	if len(ids) > 0 {
		if err := s.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&cards).Error; err != nil {
			return nil, err
		}
	}

	result := evaluateAnswers(cards, submission.Answers, s.scoring)
	return &result, nil
}

func evaluateAnswers(cards []models.Flashcard, answers []QuizAnswer, scoring *ScoringService) QuizResult {
	byID := make(map[uint]models.Flashcard, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	result := QuizResult{
		Total:   len(answers),
		Results: make([]QuizItemResult, 0, len(answers)),
	}

	for _, a := range answers {
		item := QuizItemResult{UserAnswer: a.UserAnswer}

		if original, ok := byID[a.FlashcardID]; ok {
			item.Question = original.Question
			item.CorrectAnswer = original.Answer
			item.SimilarityScore = scoring.Score(original.Answer, a.UserAnswer)
		}

		item.IsCorrect = item.SimilarityScore >= correctThreshold
		if item.IsCorrect {
			result.Correct++
		}
		result.Results = append(result.Results, item)
	}

	result.Incorrect = result.Total - result.Correct
	return result
}
