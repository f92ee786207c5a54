package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/service"
)

type BlackoutHandler struct {
	blackouts *service.BlackoutService
}

func NewBlackoutHandler(blackouts *service.BlackoutService) *BlackoutHandler {
	return &BlackoutHandler{blackouts: blackouts}
}

// POST /v1/blackouts (STAFF)
func (h *BlackoutHandler) Create(c *gin.Context) {
	var in struct {
		Date      string `json:"date" binding:"required"`
		Scope     string `json:"scope" binding:"required"`
		RoomID    string `json:"room_id"`
		IsAllDay  bool   `json:"is_all_day"`
		StartTime string `json:"start_time"` // "HH:MM" или "HH:MM:SS"
		EndTime   string `json:"end_time"`
		Note      string `json:"note"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := service.BlackoutParams{
		Date:      in.Date,
		Scope:     model.BlackoutScope(in.Scope),
		AllDay:    in.IsAllDay,
		StartTime: normalizeClock(in.StartTime),
		EndTime:   normalizeClock(in.EndTime),
		Note:      in.Note,
	}
	if in.RoomID != "" {
		id, err := uuid.Parse(in.RoomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		params.RoomID = &id
	}

	blackout, err := h.blackouts.AddBlackout(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, blackout)
}

// DELETE /v1/blackouts/:id (STAFF)
func (h *BlackoutHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blackout id"})
		return
	}

	if err := h.blackouts.RemoveBlackout(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}

// GET /v1/blackouts?from=YYYY-MM-DD&to=YYYY-MM-DD (STAFF)
// По умолчанию — текущий календарный месяц
func (h *BlackoutHandler) List(c *gin.Context) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	from := c.DefaultQuery("from", monthStart.Format(model.DateLayout))
	to := c.DefaultQuery("to", monthEnd.Format(model.DateLayout))

	blackouts, err := h.blackouts.ListRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blackouts": blackouts})
}

// normalizeClock дополняет "HH:MM" до "HH:MM:SS"
func normalizeClock(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}
