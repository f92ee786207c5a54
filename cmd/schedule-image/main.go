package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/schedule"
)

// Отладочная утилита: рисует сетку дня на тестовых данных без БД
func main() {
	out := flag.String("out", "schedule.png", "output file")
	date := flag.String("date", time.Now().Format(model.DateLayout), "date to render")
	flag.Parse()

	rooms := []model.Room{
		{ID: uuid.New(), Name: "Study Room 1"},
		{ID: uuid.New(), Name: "Study Room 2"},
		{ID: uuid.New(), Name: "Quiet Room"},
	}

	var slots []model.TimeSlot
	for hour := 9; hour < 18; hour++ {
		slots = append(slots, model.TimeSlot{
			ID:       uuid.New(),
			StartsAt: fmt.Sprintf("%02d:00:00", hour),
			EndsAt:   fmt.Sprintf("%02d:00:00", hour+1),
		})
	}

	reservations := []model.Reservation{
		{RoomID: rooms[0].ID, TimeslotID: slots[1].ID, Status: model.ReservationStatusBooked},
		{RoomID: rooms[1].ID, TimeslotID: slots[4].ID, Status: model.ReservationStatusBooked},
	}

	start := "14:00:00"
	end := "16:00:00"
	blackouts := []model.Blackout{
		{
			Date:      *date,
			Scope:     model.BlackoutScopeRoom,
			RoomID:    &rooms[2].ID,
			StartTime: &start,
			EndTime:   &end,
		},
	}

	data, err := schedule.RenderDayGrid(*date, rooms, slots, reservations, blackouts)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("schedule image written to %s (%d bytes)", *out, len(data))
}
