package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/availability"
	"github.com/roomierooms/backend/internal/format"
	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/notify"
	"github.com/roomierooms/backend/internal/repository"
)

type BookingService struct {
	roomRepo        *repository.RoomRepository
	timeslotRepo    *repository.TimeslotRepository
	reservationRepo *repository.ReservationRepository
	blackoutRepo    *repository.BlackoutRepository
	notifier        notify.Notifier
	logger          *zap.Logger
}

func NewBookingService(
	roomRepo *repository.RoomRepository,
	timeslotRepo *repository.TimeslotRepository,
	reservationRepo *repository.ReservationRepository,
	blackoutRepo *repository.BlackoutRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		roomRepo:        roomRepo,
		timeslotRepo:    timeslotRepo,
		reservationRepo: reservationRepo,
		blackoutRepo:    blackoutRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// CreateReservation бронирует слот для пользователя. Доступность считается
// той же функцией, что отдаётся клиентам, поэтому занятые и закрытые
// запретами слоты отклоняются одинаково. Гонку двух одновременных броней
// окончательно решает частичный уникальный индекс в БД
func (s *BookingService) CreateReservation(ctx context.Context, userID, roomID, timeslotID uuid.UUID, date string) (*model.Reservation, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	slot, err := s.timeslotRepo.GetByID(ctx, timeslotID)
	if err != nil {
		return nil, fmt.Errorf("get timeslot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("timeslot not found")
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
		&roomID,
		date,
		availability.SlotsFromModel(slots),
		availability.ReservationsFromModel(reservations),
		availability.BlackoutsFromModel(blackouts),
	)
	if result.IsDisabled(timeslotID) {
		return nil, fmt.Errorf("slot is not available")
	}

	res := &model.Reservation{
		UserID:     userID,
		RoomID:     roomID,
		TimeslotID: timeslotID,
		Date:       date,
		Status:     model.ReservationStatusBooked,
	}

	if err := s.reservationRepo.Create(ctx, res); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("slot is not available")
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("Reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("room", room.Name),
		zap.String("date", date),
	)

	s.notifier.Send(ctx, fmt.Sprintf("📌 New booking: %s on %s, %s",
		room.Name, date, format.TimeRange(slot.StartsAt, slot.EndsAt)))

	return res, nil
}

// CancelReservation отменяет бронь. Разрешено владельцу или персоналу
func (s *BookingService) CancelReservation(ctx context.Context, userID uuid.UUID, isStaff bool, reservationID uuid.UUID) error {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if res == nil {
		return fmt.Errorf("reservation not found")
	}

	if res.UserID != userID && !isStaff {
		return fmt.Errorf("no permission to cancel this reservation")
	}

	if !res.IsActive() {
		return fmt.Errorf("reservation is not active")
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("Reservation canceled",
		zap.String("reservation_id", reservationID.String()),
		zap.String("user_id", userID.String()),
	)

	s.notifier.Send(ctx, fmt.Sprintf("❎ Booking canceled for %s", res.Date))

	return nil
}

// ListUserReservations получает активные брони пользователя
func (s *BookingService) ListUserReservations(ctx context.Context, userID uuid.UUID) ([]model.ReservationDetail, error) {
	reservations, err := s.reservationRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user reservations: %w", err)
	}
	return reservations, nil
}
