package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/service"
)

type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// GET /v1/availability?room_id=...&date=YYYY-MM-DD
// room_id не обязателен: без него слоты отдаются без пометок
func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(model.DateLayout))

	var roomID *uuid.UUID
	if raw := c.Query("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		roomID = &id
	}

	day, err := h.availability.GetDayAvailability(c.Request.Context(), roomID, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}
