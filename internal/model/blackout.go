package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BlackoutScope string

const (
	BlackoutScopeGlobal BlackoutScope = "GLOBAL"
	BlackoutScopeRoom   BlackoutScope = "ROOM"
)

// Blackout правило запрета бронирования на дату: глобальное или для одной
// комнаты, на весь день или на окно времени. Строка хранения — см. Validate
// для инвариантов формы
type Blackout struct {
	ID        uuid.UUID     `json:"id"`
	Date      string        `json:"date"` // "YYYY-MM-DD"
	Scope     BlackoutScope `json:"scope"`
	RoomID    *uuid.UUID    `json:"room_id"`
	IsAllDay  bool          `json:"is_all_day"`
	StartTime *string       `json:"start_time"` // "HH:MM:SS", только для частичного
	EndTime   *string       `json:"end_time"`   // "HH:MM:SS", только для частичного
	Note      *string       `json:"note"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewAllDayBlackout создаёт запрет на весь день. roomID обязателен только
// для scope=ROOM и запрещён для scope=GLOBAL
func NewAllDayBlackout(date string, scope BlackoutScope, roomID *uuid.UUID, note string) (*Blackout, error) {
	b := &Blackout{
		Date:     date,
		Scope:    scope,
		RoomID:   roomID,
		IsAllDay: true,
		Note:     optionalText(note),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewPartialBlackout создаёт запрет на окно времени [start, end)
func NewPartialBlackout(date string, scope BlackoutScope, roomID *uuid.UUID, start, end, note string) (*Blackout, error) {
	b := &Blackout{
		Date:      date,
		Scope:     scope,
		RoomID:    roomID,
		IsAllDay:  false,
		StartTime: &start,
		EndTime:   &end,
		Note:      optionalText(note),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate проверяет инварианты формы правила
func (b *Blackout) Validate() error {
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return fmt.Errorf("invalid blackout date %q", b.Date)
	}

	switch b.Scope {
	case BlackoutScopeGlobal:
		if b.RoomID != nil {
			return fmt.Errorf("global blackout must not carry a room")
		}
	case BlackoutScopeRoom:
		if b.RoomID == nil {
			return fmt.Errorf("room blackout requires a room")
		}
	default:
		return fmt.Errorf("unknown blackout scope %q", b.Scope)
	}

	if b.IsAllDay {
		if b.StartTime != nil || b.EndTime != nil {
			return fmt.Errorf("all-day blackout must not carry start/end time")
		}
		return nil
	}

	if b.StartTime == nil || b.EndTime == nil {
		return fmt.Errorf("partial blackout requires both start and end time")
	}
	if *b.StartTime >= *b.EndTime {
		return fmt.Errorf("blackout start must be before end")
	}
	return nil
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
