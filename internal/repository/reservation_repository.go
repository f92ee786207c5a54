package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository/base"
)

type ReservationRepository struct {
	*base.Repository
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{Repository: base.NewRepository(pool)}
}

// Create создаёт новую бронь
func (r *ReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, room_id, timeslot_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		res.UserID,
		res.RoomID,
		res.TimeslotID,
		res.Date,
		res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

// GetByID получает бронь по ID
func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	query := `
		SELECT id, user_id, room_id, timeslot_id, to_char(date, 'YYYY-MM-DD'), status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var res model.Reservation
	err := r.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.UserID,
		&res.RoomID,
		&res.TimeslotID,
		&res.Date,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation by id: %w", err)
	}

	return &res, nil
}

// ListActiveByDate получает все неотменённые брони на дату (по всем комнатам)
func (r *ReservationRepository) ListActiveByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	query := `
		SELECT id, user_id, room_id, timeslot_id, to_char(date, 'YYYY-MM-DD'), status, created_at, updated_at
		FROM reservations
		WHERE date = $1
		  AND status <> 'CANCELED'
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var res model.Reservation
		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.RoomID,
			&res.TimeslotID,
			&res.Date,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// ListActiveDetailedByDate получает брони дня с именем комнаты и временем
// слота, отсортированные по времени начала (для расписания персонала)
func (r *ReservationRepository) ListActiveDetailedByDate(ctx context.Context, date string) ([]model.ReservationDetail, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.room_id, rv.timeslot_id, to_char(rv.date, 'YYYY-MM-DD'),
		       rv.status, rv.created_at, rv.updated_at,
		       rm.name, ts.starts_at, ts.ends_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN timeslots ts ON ts.id = rv.timeslot_id
		WHERE rv.date = $1
		  AND rv.status <> 'CANCELED'
		ORDER BY ts.starts_at, rm.name
	`

	return r.queryDetailed(ctx, query, date)
}

// ListActiveByUser получает активные брони пользователя с деталями,
// отсортированные по дате
func (r *ReservationRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.ReservationDetail, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.room_id, rv.timeslot_id, to_char(rv.date, 'YYYY-MM-DD'),
		       rv.status, rv.created_at, rv.updated_at,
		       rm.name, ts.starts_at, ts.ends_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN timeslots ts ON ts.id = rv.timeslot_id
		WHERE rv.user_id = $1
		  AND rv.status <> 'CANCELED'
		ORDER BY rv.date, ts.starts_at
	`

	return r.queryDetailed(ctx, query, userID)
}

func (r *ReservationRepository) queryDetailed(ctx context.Context, query string, args ...any) ([]model.ReservationDetail, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detailed reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.ReservationDetail
	for rows.Next() {
		var res model.ReservationDetail
		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.RoomID,
			&res.TimeslotID,
			&res.Date,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
			&res.RoomName,
			&res.StartsAt,
			&res.EndsAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan detailed reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// Cancel переводит бронь в статус CANCELED
func (r *ReservationRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reservations
		SET status = 'CANCELED', updated_at = now()
		WHERE id = $1 AND status <> 'CANCELED'
	`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("reservation not found or already canceled")
	}

	return nil
}
