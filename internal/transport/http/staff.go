package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/service"
)

type StaffHandler struct {
	schedule *service.ScheduleService
}

func NewStaffHandler(schedule *service.ScheduleService) *StaffHandler {
	return &StaffHandler{schedule: schedule}
}

// GET /v1/staff/schedule?date=YYYY-MM-DD (STAFF)
func (h *StaffHandler) DaySchedule(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(model.DateLayout))

	reservations, err := h.schedule.DaySchedule(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "reservations": reservations})
}

// GET /v1/staff/schedule.png?date=YYYY-MM-DD (STAFF)
func (h *StaffHandler) DayScheduleImage(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(model.DateLayout))

	data, err := h.schedule.RenderDayImage(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
