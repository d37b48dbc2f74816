package handlers

import (
	"net/http"
	"strconv"

	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteService *services.NoteService
	hub         *ws.Hub
}

func NewNoteHandler(noteService *services.NoteService, hub *ws.Hub) *NoteHandler {
	return &NoteHandler{noteService: noteService, hub: hub}
}

// ListNotes godoc
// @Summary      List notes
// @Description  All notes of the authenticated user, newest-updated first
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Note
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID := c.GetUint("user_id")

	notes, err := h.noteService.GetNotes(userID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateNoteInput true "Note data"
// @Success      201 {object} Note
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.noteService.CreateNote(userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	if note.GroupID != nil {
		h.hub.Broadcast(*note.GroupID, ws.GroupEvent{Type: ws.EventNoteCreated, Data: note})
	}

	c.JSON(http.StatusCreated, note)
}

// GetNote godoc
// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Note ID"
// @Success      200 {object} Note
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID := c.GetUint("user_id")
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid note id"})
		return
	}

	note, err := h.noteService.GetNoteByID(uint(noteID), userID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "note not found"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote godoc
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Note ID"
// @Param        request body services.UpdateNoteInput true "Fields to update"
// @Success      200 {object} Note
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID := c.GetUint("user_id")
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid note id"})
		return
	}

	var input services.UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.noteService.UpdateNote(uint(noteID), userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "note not found"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Note ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID := c.GetUint("user_id")
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid note id"})
		return
	}

	if err := h.noteService.DeleteNote(uint(noteID), userID); err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "note not found"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "note deleted"})
}
