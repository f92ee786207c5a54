package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/notify"
	"github.com/roomierooms/backend/internal/repository"
)

type BlackoutService struct {
	roomRepo     *repository.RoomRepository
	blackoutRepo *repository.BlackoutRepository
	notifier     notify.Notifier
	logger       *zap.Logger
}

func NewBlackoutService(
	roomRepo *repository.RoomRepository,
	blackoutRepo *repository.BlackoutRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *BlackoutService {
	return &BlackoutService{
		roomRepo:     roomRepo,
		blackoutRepo: blackoutRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// BlackoutParams параметры нового правила запрета
type BlackoutParams struct {
	Date      string
	Scope     model.BlackoutScope
	RoomID    *uuid.UUID
	AllDay    bool
	StartTime string // "HH:MM:SS", только когда не весь день
	EndTime   string
	Note      string
}

// AddBlackout создаёт правило запрета. Конструкторы модели не дают собрать
// глобальное правило с комнатой или частичное без обоих времён — такие
// строки отклоняются здесь, на границе записи
func (s *BlackoutService) AddBlackout(ctx context.Context, params BlackoutParams) (*model.Blackout, error) {
	if params.Scope == model.BlackoutScopeRoom {
		if params.RoomID == nil {
			return nil, fmt.Errorf("room blackout requires a room")
		}
		room, err := s.roomRepo.GetByID(ctx, *params.RoomID)
		if err != nil {
			return nil, fmt.Errorf("get room: %w", err)
		}
		if room == nil {
			return nil, fmt.Errorf("room not found")
		}
	}

	var blackout *model.Blackout
	var err error
	if params.AllDay {
		blackout, err = model.NewAllDayBlackout(params.Date, params.Scope, params.RoomID, params.Note)
	} else {
		blackout, err = model.NewPartialBlackout(params.Date, params.Scope, params.RoomID, params.StartTime, params.EndTime, params.Note)
	}
	if err != nil {
		return nil, err
	}

	if err := s.blackoutRepo.Create(ctx, blackout); err != nil {
		return nil, fmt.Errorf("create blackout: %w", err)
	}

	s.logger.Info("Blackout added",
		zap.String("blackout_id", blackout.ID.String()),
		zap.String("date", blackout.Date),
		zap.String("scope", string(blackout.Scope)),
		zap.Bool("all_day", blackout.IsAllDay),
	)

	s.notifier.Send(ctx, fmt.Sprintf("🚫 Blackout added for %s (%s)", blackout.Date, blackout.Scope))

	return blackout, nil
}

// RemoveBlackout удаляет правило запрета
func (s *BlackoutService) RemoveBlackout(ctx context.Context, id uuid.UUID) error {
	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove blackout: %w", err)
	}

	s.logger.Info("Blackout removed", zap.String("blackout_id", id.String()))
	return nil
}

// ListRange получает правила в диапазоне дат включительно
func (s *BlackoutService) ListRange(ctx context.Context, from, to string) ([]model.Blackout, error) {
	for _, d := range []string{from, to} {
		if _, err := time.Parse(model.DateLayout, d); err != nil {
			return nil, fmt.Errorf("invalid date %q", d)
		}
	}
	if from > to {
		return nil, fmt.Errorf("range start is after range end")
	}

	blackouts, err := s.blackoutRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}
	return blackouts, nil
}
