package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/config"
	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository"
	"github.com/roomierooms/backend/internal/service"
)

// Deps зависимости HTTP-слоя
type Deps struct {
	Config       *config.Config
	Logger       *zap.Logger
	RoomRepo     *repository.RoomRepository
	TimeslotRepo *repository.TimeslotRepository
	Users        *service.UserService
	Booking      *service.BookingService
	Availability *service.AvailabilityService
	Blackouts    *service.BlackoutService
	Schedule     *service.ScheduleService
}

// NewRouter собирает маршруты API
func NewRouter(deps Deps) *gin.Engine {
	if deps.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(deps.Logger), Tracing("roomie-backend"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalog := NewCatalogHandler(deps.RoomRepo, deps.TimeslotRepo)
	availability := NewAvailabilityHandler(deps.Availability)
	reservations := NewReservationHandler(deps.Booking)
	blackouts := NewBlackoutHandler(deps.Blackouts)
	staff := NewStaffHandler(deps.Schedule)
	me := NewMeHandler(deps.Users)

	v1 := r.Group("/v1")
	{
		v1.GET("/rooms", catalog.ListRooms)
		v1.GET("/timeslots", catalog.ListTimeslots)
		v1.GET("/availability", availability.GetDay)
		v1.POST("/reservations/preview", reservations.Preview)

		secured := v1.Group("")
		secured.Use(JWTAuth(deps.Config.JWTSecret))
		{
			secured.GET("/me", me.Get)
			secured.POST("/reservations", reservations.Create)
			secured.GET("/reservations", reservations.ListMine)
			secured.POST("/reservations/:id/cancel", reservations.Cancel)

			staffOnly := secured.Group("")
			staffOnly.Use(RequireRole(model.RoleStaff))
			{
				staffOnly.GET("/staff/schedule", staff.DaySchedule)
				staffOnly.GET("/staff/schedule.png", staff.DayScheduleImage)
				staffOnly.POST("/blackouts", blackouts.Create)
				staffOnly.DELETE("/blackouts/:id", blackouts.Delete)
				staffOnly.GET("/blackouts", blackouts.List)
			}
		}
	}

	return r
}
