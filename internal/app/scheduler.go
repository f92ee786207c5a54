package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/format"
	"github.com/roomierooms/backend/internal/notify"
	"github.com/roomierooms/backend/internal/repository"
	"github.com/roomierooms/backend/internal/service"
)

// Сколько дней храним отработавшие правила запрета
const blackoutRetentionDays = 90

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	blackoutRepo    *repository.BlackoutRepository
	scheduleService *service.ScheduleService
	notifier        notify.Notifier
	logger          *zap.Logger
	stopChan        chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(
	blackoutRepo *repository.BlackoutRepository,
	scheduleService *service.ScheduleService,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		blackoutRepo:    blackoutRepo,
		scheduleService: scheduleService,
		notifier:        notifier,
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runDailyTasks(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runDailyTasks выполняет ежедневные задачи: первый прогон сразу при
// старте, дальше раз в сутки
func (s *Scheduler) runDailyTasks(ctx context.Context) {
	s.cleanupBlackouts(ctx)
	s.sendDailySummary(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupBlackouts(ctx)
			s.sendDailySummary(ctx)
		case <-s.stopChan:
			s.logger.Info("Daily tasks stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Daily tasks cancelled")
			return
		}
	}
}

// cleanupBlackouts удаляет правила запрета старше периода хранения
func (s *Scheduler) cleanupBlackouts(ctx context.Context) {
	cutoff := format.Date(time.Now().AddDate(0, 0, -blackoutRetentionDays))

	deleted, err := s.blackoutRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to clean up old blackouts", zap.Error(err))
		return
	}

	if deleted > 0 {
		s.logger.Info("Old blackouts cleaned up",
			zap.Int64("deleted", deleted),
			zap.String("cutoff", cutoff),
		)
	}
}

// sendDailySummary отправляет персоналу сводку броней на сегодня
func (s *Scheduler) sendDailySummary(ctx context.Context) {
	today := format.Date(time.Now())

	reservations, err := s.scheduleService.DaySchedule(ctx, today)
	if err != nil {
		s.logger.Error("Failed to build daily summary", zap.Error(err))
		return
	}

	perRoom := make(map[string]int)
	for _, r := range reservations {
		perRoom[r.RoomName]++
	}

	text := fmt.Sprintf("🗓 %s: %d booking(s)", today, len(reservations))
	for room, count := range perRoom {
		text += fmt.Sprintf("\n• %s — %d", room, count)
	}

	s.notifier.Send(ctx, text)
}
