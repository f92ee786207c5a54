package service

import (
	"context"
	"fmt"
	"time"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository"
	"github.com/roomierooms/backend/internal/schedule"
)

type ScheduleService struct {
	roomRepo        *repository.RoomRepository
	timeslotRepo    *repository.TimeslotRepository
	reservationRepo *repository.ReservationRepository
	blackoutRepo    *repository.BlackoutRepository
}

func NewScheduleService(
	roomRepo *repository.RoomRepository,
	timeslotRepo *repository.TimeslotRepository,
	reservationRepo *repository.ReservationRepository,
	blackoutRepo *repository.BlackoutRepository,
) *ScheduleService {
	return &ScheduleService{
		roomRepo:        roomRepo,
		timeslotRepo:    timeslotRepo,
		reservationRepo: reservationRepo,
		blackoutRepo:    blackoutRepo,
	}
}

// DaySchedule получает брони дня с деталями для таблицы персонала
func (s *ScheduleService) DaySchedule(ctx context.Context, date string) ([]model.ReservationDetail, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	reservations, err := s.reservationRepo.ListActiveDetailedByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("day schedule: %w", err)
	}
	return reservations, nil
}

// RenderDayImage рисует сетку дня комнаты×слоты в PNG
func (s *ScheduleService) RenderDayImage(ctx context.Context, date string) ([]byte, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
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

	return schedule.RenderDayGrid(date, rooms, slots, reservations, blackouts)
}
