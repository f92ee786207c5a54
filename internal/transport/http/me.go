package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomierooms/backend/internal/service"
)

type MeHandler struct {
	users *service.UserService
}

func NewMeHandler(users *service.UserService) *MeHandler {
	return &MeHandler{users: users}
}

// GET /v1/me — профиль из claims токена, создаётся при первом обращении
func (h *MeHandler) Get(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	email := c.GetString("email")
	name := c.GetString("name")
	role := c.GetString("role")

	user, err := h.users.EnsureProfile(c.Request.Context(), userID, email, name, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
