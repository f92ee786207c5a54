package schedule

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/model"
)

func TestRenderDayGrid_ProducesPNG(t *testing.T) {
	roomID := uuid.New()
	slotID := uuid.New()

	rooms := []model.Room{{ID: roomID, Name: "Study Room 1"}}
	slots := []model.TimeSlot{
		{ID: slotID, StartsAt: "09:00:00", EndsAt: "10:00:00"},
		{ID: uuid.New(), StartsAt: "10:00:00", EndsAt: "11:00:00"},
	}
	reservations := []model.Reservation{
		{RoomID: roomID, TimeslotID: slotID, Status: model.ReservationStatusBooked},
	}

	data, err := RenderDayGrid("2025-03-10", rooms, slots, reservations, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		t.Fatalf("expected PNG output, got %d bytes", len(data))
	}
}

func TestRenderDayGrid_EmptyCatalog(t *testing.T) {
	if _, err := RenderDayGrid("2025-03-10", nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}
