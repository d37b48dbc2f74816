package handlers

import (
	"net/http"
	"strconv"

	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type StudyGroupHandler struct {
	groupService *services.StudyGroupService
	hub          *ws.Hub
}

func NewStudyGroupHandler(groupService *services.StudyGroupService, hub *ws.Hub) *StudyGroupHandler {
	return &StudyGroupHandler{groupService: groupService, hub: hub}
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Algorithms study circle"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"omitempty,oneof=admin member"`
}

// CreateGroup godoc
// @Summary      Create a study group
// @Description  The creator becomes the group admin
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateGroupRequest true "Group data"
// @Success      201 {object} StudyGroup
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups [post]
func (h *StudyGroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(userID, req.Name, req.Description)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListGroups godoc
// @Summary      List my study groups
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} StudyGroup
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/groups [get]
func (h *StudyGroupHandler) ListGroups(c *gin.Context) {
	userID := c.GetUint("user_id")

	groups, err := h.groupService.GetGroupsForUser(userID)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// ListMembers godoc
// @Summary      List group members
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupId path int true "Group ID"
// @Success      200 {array} GroupMember
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/groups/{groupId}/members [get]
func (h *StudyGroupHandler) ListMembers(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("groupId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	members, err := h.groupService.GetGroupMembers(uint(groupID))
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "group not found"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary      Add a member (admin only)
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        groupId path int true "Group ID"
// @Param        request body AddMemberRequest true "Member data"
// @Success      201 {object} GroupMember
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/groups/{groupId}/members [post]
func (h *StudyGroupHandler) AddMember(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("groupId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.groupService.AddMember(uint(groupID), req.UserID, req.Role)
	if err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(uint(groupID), ws.GroupEvent{Type: ws.EventMemberAdded, Data: member})
	c.JSON(http.StatusCreated, member)
}

// RemoveMember godoc
// @Summary      Remove a member (admin only)
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupId path int true "Group ID"
// @Param        userId path int true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/groups/{groupId}/members/{userId} [delete]
func (h *StudyGroupHandler) RemoveMember(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("groupId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.groupService.RemoveMember(uint(groupID), uint(userID)); err != nil {
		c.JSON(errorStatus(err), ErrorResponse{Error: "member not found"})
		return
	}

	h.hub.Broadcast(uint(groupID), ws.GroupEvent{Type: ws.EventMemberRemoved, Data: gin.H{"userId": userID}})
	c.JSON(http.StatusOK, MessageResponse{Message: "member removed"})
}
