package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout формат календарной даты во всём приложении
const DateLayout = "2006-01-02"

type ReservationStatus string

const (
	ReservationStatusBooked   ReservationStatus = "BOOKED"
	ReservationStatusCanceled ReservationStatus = "CANCELED"
)

// Reservation бронь: одна комбинация (комната, дата, слот) пока активна
type Reservation struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	RoomID     uuid.UUID         `json:"room_id"`
	TimeslotID uuid.UUID         `json:"timeslot_id"`
	Date       string            `json:"date"` // "YYYY-MM-DD"
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ReservationDetail бронь вместе с именем комнаты и временем слота (для списков)
type ReservationDetail struct {
	Reservation
	RoomName string `json:"room_name"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

// IsActive активна ли бронь (не отменена)
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationStatusCanceled
}
