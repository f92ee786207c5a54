package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot фиксированный ежедневный слот времени (не привязан к дате)
// StartsAt и EndsAt хранятся как "HH:MM:SS" без таймзоны
type TimeSlot struct {
	ID        uuid.UUID `json:"id"`
	StartsAt  string    `json:"starts_at"`
	EndsAt    string    `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}
