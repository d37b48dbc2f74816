package handlers

import (
	"fmt"
	"net/http"

	"studyhub-backend/internal/models"
	"studyhub-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService        *services.AIService
	noteService      *services.NoteService
	taskService      *services.TaskService
	flashcardService *services.FlashcardService
}

func NewAIHandler(
	aiService *services.AIService,
	noteService *services.NoteService,
	taskService *services.TaskService,
	flashcardService *services.FlashcardService,
) *AIHandler {
	return &AIHandler{
		aiService:        aiService,
		noteService:      noteService,
		taskService:      taskService,
		flashcardService: flashcardService,
	}
}

type AIQueryRequest struct {
	Section string `json:"section" binding:"required,oneof=notes tasks flashcards dashboard" example:"notes"`
	Message string `json:"message" binding:"required" example:"Summarize my notes on photosynthesis"`
}

type AIQueryResponse struct {
	Response string `json:"response"`
}

type GenerateRequest struct {
	Topic string `json:"topic" binding:"required,min=1,max=500" example:"JavaScript Promises"`
}

type GenerateFlashcardsRequest struct {
	SetID uint   `json:"setId" binding:"required"`
	Topic string `json:"topic" binding:"required,min=1,max=500" example:"Cell biology"`
}

// Query godoc
// @Summary      Ask the study assistant
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AIQueryRequest true "Section and message"
// @Success      200 {object} AIQueryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/ai/query [post]
func (h *AIHandler) Query(c *gin.Context) {
	var req AIQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.aiService.Chat(c.Request.Context(), req.Section, req.Message)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AIQueryResponse{Response: response})
}

// GenerateTask godoc
// @Summary      Generate a task from a topic
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Topic"
// @Success      201 {object} Task
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/ai/generate/task [post]
func (h *AIHandler) GenerateTask(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	input, err := h.aiService.GenerateTask(c.Request.Context(), req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(userID, *input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GenerateNote godoc
// @Summary      Generate a note from a topic
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Topic"
// @Success      201 {object} Note
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/ai/generate/note [post]
func (h *AIHandler) GenerateNote(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	input, err := h.aiService.GenerateNote(c.Request.Context(), req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.noteService.CreateNote(userID, *input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GenerateFlashcards godoc
// @Summary      Generate flashcards into an existing set
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateFlashcardsRequest true "Set and topic"
// @Success      201 {array} Flashcard
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/ai/generate/flashcards [post]
func (h *AIHandler) GenerateFlashcards(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req GenerateFlashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	generated, err := h.aiService.GenerateFlashcards(c.Request.Context(), req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	cards := make([]models.Flashcard, 0, len(generated))
	for _, g := range generated {
		card, err := h.flashcardService.CreateCard(userID, services.CreateCardInput{
			SetID:    req.SetID,
			Question: g.Question,
			Answer:   g.Answer,
		})
		if err != nil {
			c.JSON(errorStatus(err), ErrorResponse{Error: "set not found"})
			return
		}
		cards = append(cards, *card)
	}

	c.JSON(http.StatusCreated, cards)
}

type StudySetResponse struct {
	Task       Task         `json:"task"`
	Note       Note         `json:"note"`
	Set        FlashcardSet `json:"set"`
	Flashcards []Flashcard  `json:"flashcards"`
}

// GenerateStudySet godoc
// @Summary      Generate a full study set
// @Description  Creates a task, a note linked to it, and a new flashcard set with generated cards
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Topic"
// @Success      201 {object} StudySetResponse
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/ai/generate/study-set [post]
func (h *AIHandler) GenerateStudySet(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()

	taskInput, err := h.aiService.GenerateTask(ctx, req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	noteInput, err := h.aiService.GenerateNote(ctx, req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	generated, err := h.aiService.GenerateFlashcards(ctx, req.Topic)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(userID, *taskInput)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	noteInput.TaskID = &task.ID
	note, err := h.noteService.CreateNote(userID, *noteInput)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	set, err := h.flashcardService.CreateSet(userID, services.CreateSetInput{
		Title:       fmt.Sprintf("Flashcards: %s", req.Topic),
		Description: fmt.Sprintf("Generated flashcards for %s", req.Topic),
	})
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	cards := make([]models.Flashcard, 0, len(generated))
	for _, g := range generated {
		card, err := h.flashcardService.CreateCard(userID, services.CreateCardInput{
			SetID:    set.ID,
			Question: g.Question,
			Answer:   g.Answer,
		})
		if err != nil {
			c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
			return
		}
		cards = append(cards, *card)
	}

	c.JSON(http.StatusCreated, StudySetResponse{
		Task:       *task,
		Note:       *note,
		Set:        *set,
		Flashcards: cards,
	})
}
