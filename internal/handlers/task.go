package handlers

import (
	"net/http"
	"strconv"

	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
	hub         *ws.Hub
}

func NewTaskHandler(taskService *services.TaskService, hub *ws.Hub) *TaskHandler {
	return &TaskHandler{taskService: taskService, hub: hub}
}

// ListTasks godoc
// @Summary      List tasks
// @Description  The user's tasks, or a group's tasks when groupId is given
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        groupId query int false "Group ID"
// @Success      200 {array} Task
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
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

	tasks, err := h.taskService.GetTasks(userID, groupID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateTaskInput true "Task data"
// @Success      201 {object} Task
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	if task.GroupID != nil {
		h.hub.Broadcast(*task.GroupID, ws.GroupEvent{Type: ws.EventTaskCreated, Data: task})
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task id"})
		return
	}

	task, err := h.taskService.GetTaskByID(uint(taskID), userID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Param        request body services.UpdateTaskInput true "Fields to update"
// @Success      200 {object} Task
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task id"})
		return
	}

	var input services.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(uint(taskID), userID, input)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetUint("user_id")
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task id"})
		return
	}

	if err := h.taskService.DeleteTask(uint(taskID), userID); err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "task not found"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "task deleted"})
}
