package handlers

import (
	"log"
	"net/http"
	"strconv"

	"studyhub-backend/internal/middleware"
	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub          *ws.Hub
	authService  *services.AuthService
	groupService *services.StudyGroupService
}

func NewWSHandler(hub *ws.Hub, authService *services.AuthService, groupService *services.StudyGroupService) *WSHandler {
	return &WSHandler{hub: hub, authService: authService, groupService: groupService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleGroupSocket godoc
// @Summary      WebSocket feed of group activity
// @Description  Members receive note/task/set creation and membership events in real time
// @Tags         websocket
// @Param        id path int true "Group ID"
// @Param        token query string false "JWT, for clients that cannot send cookies"
// @Router       /ws/groups/{id} [get]
func (h *WSHandler) HandleGroupSocket(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	token := c.Query("token")
	if token == "" {
		token, _ = c.Cookie(middleware.TokenCookie)
	}
	userID, err := h.authService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	gid := uint(groupID)
	if !h.groupService.IsMember(gid, userID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a group member"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(gid, conn)
	defer h.hub.RemoveConnection(gid, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
