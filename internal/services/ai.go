package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"studyhub-backend/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

type AIService struct {
	client *openai.Client
	model  string
}

// NewAIService returns a degraded service when no API key is configured;
// IsAvailable gates every call.
func NewAIService(apiKey, baseURL, model string) *AIService {
	if apiKey == "" {
		return &AIService{}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIService{client: openai.NewClientWithConfig(cfg), model: model}
}

func (s *AIService) IsAvailable() bool {
	return s.client != nil
}

func (s *AIService) complete(ctx context.Context, system, user string) (string, error) {
	if !s.IsAvailable() {
		return "", ErrUnavailable
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}
	return resp.Choices[0].Message.Content, nil
}

// Chat answers a free-form assistant question scoped to an app section
// (notes, tasks, flashcards or dashboard).
func (s *AIService) Chat(ctx context.Context, section, message string) (string, error) {
	return s.complete(ctx, sectionSystemPrompt(section), message)
}

func (s *AIService) generateJSON(ctx context.Context, kind, topic string, out interface{}) error {
	content, err := s.complete(ctx, generateSystemPrompt(kind), generatePrompt(kind, topic))
	if err != nil {
		return err
	}

	content = cleanJSONContent(content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("AI returned invalid JSON: %w", err)
	}
	return nil
}

type generatedTask struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	DueDate     string           `json:"dueDate"`
	Subtasks    []models.Subtask `json:"subtasks"`
}

type GeneratedFlashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *AIService) GenerateTask(ctx context.Context, topic string) (*CreateTaskInput, error) {
	var gen generatedTask
	if err := s.generateJSON(ctx, "task", topic, &gen); err != nil {
		return nil, err
	}

	input := CreateTaskInput{
		Title:       gen.Title,
		Description: gen.Description,
		Priority:    gen.Priority,
		Subtasks:    gen.Subtasks,
	}
	switch gen.Priority {
	case models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh:
	default:
		input.Priority = models.TaskPriorityMedium
	}
	if due, err := time.Parse(time.RFC3339, gen.DueDate); err == nil {
		input.DueDate = &due
	}
	return &input, nil
}

func (s *AIService) GenerateNote(ctx context.Context, topic string) (*CreateNoteInput, error) {
	var input CreateNoteInput
	if err := s.generateJSON(ctx, "note", topic, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

func (s *AIService) GenerateFlashcards(ctx context.Context, topic string) ([]GeneratedFlashcard, error) {
	var cards []GeneratedFlashcard
	if err := s.generateJSON(ctx, "flashcard", topic, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
