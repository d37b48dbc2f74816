package services

import (
	"time"

	"studyhub-backend/internal/models"

	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

type CreateTaskInput struct {
	Title       string           `json:"title" binding:"required,min=1,max=255" example:"Revise photosynthesis"`
	Description string           `json:"description"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	Priority    string           `json:"priority" binding:"omitempty,oneof=low medium high"`
	Subtasks    []models.Subtask `json:"subtasks"`
	GroupID     *uint            `json:"groupId,omitempty"`
}

type UpdateTaskInput struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Priority    *string           `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Completed   *bool             `json:"completed,omitempty"`
	Subtasks    *[]models.Subtask `json:"subtasks,omitempty"`
	GroupID     *uint             `json:"groupId,omitempty"`
}

func (s *TaskService) CreateTask(userID uint, input CreateTaskInput) (*models.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Subtasks:    input.Subtasks,
		GroupID:     input.GroupID,
	}
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTasks lists the user's tasks, or the group's tasks when groupID is set.
func (s *TaskService) GetTasks(userID uint, groupID *uint) ([]models.Task, error) {
	query := s.db.Where("user_id = ?", userID)
	if groupID != nil {
		query = s.db.Where("group_id = ?", *groupID)
	}

	var tasks []models.Task
	if err := query.Order("updated_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(taskID, userID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (s *TaskService) UpdateTask(taskID, userID uint, input UpdateTaskInput) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Subtasks != nil {
		task.Subtasks = *input.Subtasks
	}
	if input.GroupID != nil {
		task.GroupID = input.GroupID
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) DeleteTask(taskID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
