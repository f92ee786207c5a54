package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository/base"
)

type BlackoutRepository struct {
	*base.Repository
}

func NewBlackoutRepository(pool *pgxpool.Pool) *BlackoutRepository {
	return &BlackoutRepository{Repository: base.NewRepository(pool)}
}

// Create создаёт новое правило запрета
func (r *BlackoutRepository) Create(ctx context.Context, b *model.Blackout) error {
	query := `
		INSERT INTO blackouts (date, scope, room_id, is_all_day, start_time, end_time, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		b.Date,
		b.Scope,
		b.RoomID,
		b.IsAllDay,
		b.StartTime,
		b.EndTime,
		b.Note,
	).Scan(&b.ID, &b.CreatedAt)

	if err != nil {
		return fmt.Errorf("create blackout: %w", err)
	}

	return nil
}

// Delete удаляет правило запрета
func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM blackouts
		WHERE id = $1
	`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete blackout: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("blackout not found")
	}

	return nil
}

// ListByDate получает все правила на дату (по всем комнатам и scope)
func (r *BlackoutRepository) ListByDate(ctx context.Context, date string) ([]model.Blackout, error) {
	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), scope, room_id, is_all_day, start_time, end_time, note, created_at
		FROM blackouts
		WHERE date = $1
	`

	return r.query(ctx, query, date)
}

// ListByDateRange получает правила в диапазоне дат включительно
// (календарь месяца на панели персонала)
func (r *BlackoutRepository) ListByDateRange(ctx context.Context, from, to string) ([]model.Blackout, error) {
	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), scope, room_id, is_all_day, start_time, end_time, note, created_at
		FROM blackouts
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	return r.query(ctx, query, from, to)
}

// DeleteOlderThan удаляет правила с датой строго раньше указанной,
// возвращает число удалённых строк
func (r *BlackoutRepository) DeleteOlderThan(ctx context.Context, date string) (int64, error) {
	query := `
		DELETE FROM blackouts
		WHERE date < $1
	`

	affected, err := r.ExecAffected(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("delete old blackouts: %w", err)
	}

	return affected, nil
}

func (r *BlackoutRepository) query(ctx context.Context, query string, args ...any) ([]model.Blackout, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}
	defer rows.Close()

	var blackouts []model.Blackout
	for rows.Next() {
		var b model.Blackout
		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.Scope,
			&b.RoomID,
			&b.IsAllDay,
			&b.StartTime,
			&b.EndTime,
			&b.Note,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan blackout: %w", err)
		}
		blackouts = append(blackouts, b)
	}

	return blackouts, nil
}
