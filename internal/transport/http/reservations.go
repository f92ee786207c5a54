package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/service"
)

type ReservationHandler struct {
	booking *service.BookingService
}

func NewReservationHandler(booking *service.BookingService) *ReservationHandler {
	return &ReservationHandler{booking: booking}
}

// POST /v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		RoomID     string `json:"room_id" binding:"required"`
		TimeslotID string `json:"timeslot_id" binding:"required"`
		Date       string `json:"date" binding:"required"` // "YYYY-MM-DD"
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roomID, err := uuid.Parse(in.RoomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
		return
	}
	timeslotID, err := uuid.Parse(in.TimeslotID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeslot_id"})
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	res, err := h.booking.CreateReservation(c.Request.Context(), userID, roomID, timeslotID, in.Date)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// POST /v1/reservations/preview
// Лёгкая проверка формы перед отправкой: только присутствие полей
func (h *ReservationHandler) Preview(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, k := range []string{"room", "date", "start", "duration"} {
		v, ok := body[k]
		if !ok || v == nil || fmt.Sprint(v) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + k})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /v1/reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	userID, isStaff, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.booking.CancelReservation(c.Request.Context(), userID, isStaff, id); err != nil {
		status := http.StatusConflict
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		} else if strings.Contains(err.Error(), "no permission") {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"canceled": id})
}

// GET /v1/reservations — активные брони текущего пользователя
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	reservations, err := h.booking.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
