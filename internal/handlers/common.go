package handlers

import (
	"errors"
	"net/http"

	"studyhub-backend/internal/models"
	"studyhub-backend/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Note = models.Note
type Task = models.Task
type FlashcardSet = models.FlashcardSet
type Flashcard = models.Flashcard
type StudyGroup = models.StudyGroup
type GroupMember = models.GroupMember
type QuizResult = services.QuizResult

// errorStatus maps service sentinel errors to HTTP status codes. Everything
// else is a server error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
