package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository/base"
)

type TimeslotRepository struct {
	*base.Repository
}

func NewTimeslotRepository(pool *pgxpool.Pool) *TimeslotRepository {
	return &TimeslotRepository{Repository: base.NewRepository(pool)}
}

// List получает каталог слотов, отсортированный по времени начала
func (r *TimeslotRepository) List(ctx context.Context) ([]model.TimeSlot, error) {
	query := `
		SELECT id, starts_at, ends_at, created_at
		FROM timeslots
		ORDER BY starts_at
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list timeslots: %w", err)
	}
	defer rows.Close()

	var slots []model.TimeSlot
	for rows.Next() {
		var slot model.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.StartsAt, &slot.EndsAt, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan timeslot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *TimeslotRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	query := `
		SELECT id, starts_at, ends_at, created_at
		FROM timeslots
		WHERE id = $1
	`

	var slot model.TimeSlot
	err := r.QueryRow(ctx, query, id).Scan(&slot.ID, &slot.StartsAt, &slot.EndsAt, &slot.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get timeslot by id: %w", err)
	}

	return &slot, nil
}
