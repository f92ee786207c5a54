package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/availability"
	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository"
)

type AvailabilityService struct {
	timeslotRepo    *repository.TimeslotRepository
	reservationRepo *repository.ReservationRepository
	blackoutRepo    *repository.BlackoutRepository
}

func NewAvailabilityService(
	timeslotRepo *repository.TimeslotRepository,
	reservationRepo *repository.ReservationRepository,
	blackoutRepo *repository.BlackoutRepository,
) *AvailabilityService {
	return &AvailabilityService{
		timeslotRepo:    timeslotRepo,
		reservationRepo: reservationRepo,
		blackoutRepo:    blackoutRepo,
	}
}

// SlotAvailability слот каталога с пометкой недоступности
type SlotAvailability struct {
	model.TimeSlot
	Disabled bool `json:"disabled"`
}

// DayAvailability ответ на запрос доступности: каталог с пометками и баннер
type DayAvailability struct {
	Date   string               `json:"date"`
	RoomID *uuid.UUID           `json:"room_id"`
	Slots  []SlotAvailability   `json:"slots"`
	Banner *availability.Banner `json:"banner,omitempty"`
}

// GetDayAvailability собирает три списка дня и прогоняет их через резолвер.
// roomID может быть nil — тогда пометок и баннера не будет
func (s *AvailabilityService) GetDayAvailability(ctx context.Context, roomID *uuid.UUID, date string) (*DayAvailability, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	slots, err := s.timeslotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list timeslots: %w", err)
	}
	reservations, err := s.reservationRepo.ListActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	blackouts, err := s.blackoutRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}

	result := availability.Resolve(
		roomID,
		date,
		availability.SlotsFromModel(slots),
		availability.ReservationsFromModel(reservations),
		availability.BlackoutsFromModel(blackouts),
	)

	out := &DayAvailability{
		Date:   date,
		RoomID: roomID,
		Slots:  make([]SlotAvailability, 0, len(slots)),
		Banner: result.Banner,
	}
	for _, slot := range slots {
		out.Slots = append(out.Slots, SlotAvailability{
			TimeSlot: slot,
			Disabled: result.IsDisabled(slot.ID),
		})
	}

	return out, nil
}
