package model

import (
	"time"

	"github.com/google/uuid"
)

// Room комната для бронирования (справочные данные)
type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
