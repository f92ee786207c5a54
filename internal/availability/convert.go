package availability

import (
	"github.com/roomierooms/backend/internal/format"
	"github.com/roomierooms/backend/internal/model"
)

// SlotsFromModel переводит каталог слотов во входной тип резолвера
func SlotsFromModel(slots []model.TimeSlot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{ID: s.ID, StartsAt: s.StartsAt, EndsAt: s.EndsAt})
	}
	return out
}

// ReservationsFromModel оставляет только активные брони
func ReservationsFromModel(reservations []model.Reservation) []Reservation {
	out := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		out = append(out, Reservation{RoomID: r.RoomID, TimeslotID: r.TimeslotID})
	}
	return out
}

// BlackoutsFromModel нормализует строки хранилища. Частичное правило без
// начала или конца молча пропускается — так вела себя исходная система
func BlackoutsFromModel(blackouts []model.Blackout) []Blackout {
	out := make([]Blackout, 0, len(blackouts))
	for _, b := range blackouts {
		nb := Blackout{Scope: Scope(b.Scope), RoomID: b.RoomID}
		if b.Note != nil {
			nb.Note = *b.Note
		}
		if !b.IsAllDay {
			if b.StartTime == nil || b.EndTime == nil {
				continue
			}
			nb.Window = &Window{
				Start: format.ClockMinutes(*b.StartTime),
				End:   format.ClockMinutes(*b.EndTime),
			}
		}
		out = append(out, nb)
	}
	return out
}
