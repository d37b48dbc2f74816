package services

import (
	"studyhub-backend/internal/models"

	"gorm.io/gorm"
)

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

type CreateNoteInput struct {
	Title   string   `json:"title" binding:"required,min=1,max=255" example:"Cell biology summary"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
	TaskID  *uint    `json:"taskId,omitempty"`
	GroupID *uint    `json:"groupId,omitempty"`
}

type UpdateNoteInput struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	TaskID  *uint     `json:"taskId,omitempty"`
	GroupID *uint     `json:"groupId,omitempty"`
}

func (s *NoteService) CreateNote(userID uint, input CreateNoteInput) (*models.Note, error) {
	note := models.Note{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
		TaskID:  input.TaskID,
		GroupID: input.GroupID,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) GetNotes(userID uint) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) GetNoteByID(noteID, userID uint) (*models.Note, error) {
	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return nil, ErrNotFound
	}
	return &note, nil
}

func (s *NoteService) UpdateNote(noteID, userID uint, input UpdateNoteInput) (*models.Note, error) {
	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Tags != nil {
		note.Tags = *input.Tags
	}
	if input.TaskID != nil {
		note.TaskID = input.TaskID
	}
	if input.GroupID != nil {
		note.GroupID = input.GroupID
	}

	if err := s.db.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) DeleteNote(noteID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", noteID, userID).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
