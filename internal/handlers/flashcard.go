package handlers

import (
	"net/http"
	"strconv"

	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type FlashcardHandler struct {
	flashcardService *services.FlashcardService
	hub              *ws.Hub
}

func NewFlashcardHandler(flashcardService *services.FlashcardService, hub *ws.Hub) *FlashcardHandler {
	return &FlashcardHandler{flashcardService: flashcardService, hub: hub}
}

// CreateSet godoc
// @Summary      Create a flashcard set
// @Tags         flashcards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateSetInput true "Set data"
// @Success      201 {object} FlashcardSet
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/flashcards/sets [post]
func (h *FlashcardHandler) CreateSet(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	set, err := h.flashcardService.CreateSet(userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	if set.GroupID != nil {
		h.hub.Broadcast(*set.GroupID, ws.GroupEvent{Type: ws.EventSetCreated, Data: set})
	}

	c.JSON(http.StatusCreated, set)
}

// ListSets godoc
// @Summary      List flashcard sets
// @Tags         flashcards
// @Produce      json
// @Security     BearerAuth
// @Param        groupId query int false "Group ID"
// @Success      200 {array} FlashcardSet
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/flashcards/sets [get]
func (h *FlashcardHandler) ListSets(c *gin.Context) {
	userID := c.GetUint("user_id")

	var groupID *uint
	if raw := c.Query("groupId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
			return
		}
		gid := uint(parsed)
		groupID = &gid
	}

	sets, err := h.flashcardService.GetSets(userID, groupID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sets)
}

// DeleteSet godoc
// @Summary      Delete a set and its cards
// @Tags         flashcards
// @Produce      json
// @Security     BearerAuth
// @Param        setId path int true "Set ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/flashcards/sets/{setId} [delete]
func (h *FlashcardHandler) DeleteSet(c *gin.Context) {
	userID := c.GetUint("user_id")
	setID, err := strconv.ParseUint(c.Param("setId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	if err := h.flashcardService.DeleteSet(userID, uint(setID)); err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "set not found"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "set and its cards deleted"})
}

// CreateCard godoc
// @Summary      Create a flashcard
// @Tags         flashcards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateCardInput true "Card data"
// @Success      201 {object} Flashcard
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/flashcards/cards [post]
func (h *FlashcardHandler) CreateCard(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	card, err := h.flashcardService.CreateCard(userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "set not found"})
		return
	}

	c.JSON(http.StatusCreated, card)
}

// ListCards godoc
// @Summary      List cards in a set
// @Tags         flashcards
// @Produce      json
// @Security     BearerAuth
// @Param        setId path int true "Set ID"
// @Success      200 {array} Flashcard
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/flashcards/sets/{setId}/cards [get]
func (h *FlashcardHandler) ListCards(c *gin.Context) {
	userID := c.GetUint("user_id")
	setID, err := strconv.ParseUint(c.Param("setId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	cards, err := h.flashcardService.GetCardsBySet(userID, uint(setID))
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// DeleteCard godoc
// @Summary      Delete a flashcard
// @Tags         flashcards
// @Produce      json
// @Security     BearerAuth
// @Param        cardId path int true "Card ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/flashcards/cards/{cardId} [delete]
func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	userID := c.GetUint("user_id")
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	if err := h.flashcardService.DeleteCard(userID, uint(cardID)); err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "card not found"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "card deleted"})
}

type QuizStartResponse struct {
	Flashcards []services.QuizCard `json:"flashcards"`
}

// StartQuiz godoc
// @Summary      Start a quiz
// @Description  Returns up to 10 random cards of the set, questions only
// @Tags         quiz
// @Produce      json
// @Security     BearerAuth
// @Param        setId path int true "Set ID"
// @Success      200 {object} QuizStartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/flashcards/quiz/start/{setId} [get]
func (h *FlashcardHandler) StartQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	setID, err := strconv.ParseUint(c.Param("setId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	cards, err := h.flashcardService.GetQuizCards(userID, uint(setID), 0)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, QuizStartResponse{Flashcards: cards})
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  Scores free-text answers with bigram similarity; unknown card ids score as incorrect
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.QuizSubmission true "Answers"
// @Success      200 {object} QuizResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/flashcards/quiz/submit [post]
func (h *FlashcardHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	var submission services.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.flashcardService.EvaluateQuiz(userID, submission)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
