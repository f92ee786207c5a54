package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomierooms/backend/internal/repository"
)

// CatalogHandler отдаёт справочные данные: комнаты и каталог слотов
type CatalogHandler struct {
	roomRepo     *repository.RoomRepository
	timeslotRepo *repository.TimeslotRepository
}

func NewCatalogHandler(roomRepo *repository.RoomRepository, timeslotRepo *repository.TimeslotRepository) *CatalogHandler {
	return &CatalogHandler{roomRepo: roomRepo, timeslotRepo: timeslotRepo}
}

// GET /v1/rooms
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GET /v1/timeslots
func (h *CatalogHandler) ListTimeslots(c *gin.Context) {
	slots, err := h.timeslotRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeslots": slots})
}
