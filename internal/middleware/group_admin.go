package middleware

import (
	"net/http"
	"strconv"

	"studyhub-backend/internal/models"
	"studyhub-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RequireGroupAdmin guards member-management routes. Runs after JWTAuth.
func RequireGroupAdmin(groupService *services.StudyGroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		groupID, err := strconv.ParseUint(c.Param("groupId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
			return
		}

		role, err := groupService.MemberRole(uint(groupID), userID)
		if err != nil || role != models.GroupRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "group admin role required"})
			return
		}

		c.Next()
	}
}
