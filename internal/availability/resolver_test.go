package availability

import (
	"testing"

	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/model"
)

var (
	roomA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	roomB = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	slot9  = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000009")
	slot10 = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000010")
	slot11 = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000011")
)

const testDate = "2025-03-10"

func catalog() []Slot {
	return []Slot{
		{ID: slot9, StartsAt: "09:00:00", EndsAt: "10:00:00"},
		{ID: slot10, StartsAt: "10:00:00", EndsAt: "11:00:00"},
		{ID: slot11, StartsAt: "11:00:00", EndsAt: "12:00:00"},
	}
}

func window(start, end int) *Window {
	return &Window{Start: start, End: end}
}

func TestResolve_NoRoomSelected(t *testing.T) {
	res := Resolve(nil, testDate, catalog(),
		[]Reservation{{RoomID: roomA, TimeslotID: slot10}},
		[]Blackout{{Scope: ScopeGlobal}},
	)
	if len(res.Disabled) != 0 {
		t.Fatalf("expected empty disabled set, got %d entries", len(res.Disabled))
	}
	if res.Banner != nil {
		t.Fatalf("expected no banner, got %+v", res.Banner)
	}
}

func TestResolve_AllFree(t *testing.T) {
	res := Resolve(&roomA, testDate, catalog(), nil, nil)
	if len(res.Disabled) != 0 {
		t.Fatalf("expected all slots bookable, got %d disabled", len(res.Disabled))
	}
	if res.Banner != nil {
		t.Fatalf("expected no banner, got %+v", res.Banner)
	}
}

func TestResolve_ReservedSlotDisabled(t *testing.T) {
	reservations := []Reservation{{RoomID: roomA, TimeslotID: slot10}}

	res := Resolve(&roomA, testDate, catalog(), reservations, nil)
	if !res.IsDisabled(slot10) {
		t.Fatalf("expected reserved slot disabled")
	}
	if res.IsDisabled(slot9) || res.IsDisabled(slot11) {
		t.Fatalf("expected other slots bookable")
	}
}

func TestResolve_ReservationScopedToRoom(t *testing.T) {
	reservations := []Reservation{{RoomID: roomA, TimeslotID: slot10}}

	res := Resolve(&roomB, testDate, catalog(), reservations, nil)
	if len(res.Disabled) != 0 {
		t.Fatalf("room A reservation must not affect room B, got %d disabled", len(res.Disabled))
	}
}

func TestResolve_GlobalAllDayDisablesEverything(t *testing.T) {
	blackouts := []Blackout{{Scope: ScopeGlobal}}

	for _, room := range []uuid.UUID{roomA, roomB} {
		res := Resolve(&room, testDate, catalog(), nil, blackouts)
		if len(res.Disabled) != 3 {
			t.Fatalf("expected full catalog disabled for room %s, got %d", room, len(res.Disabled))
		}
	}
}

func TestResolve_AllDayOverridesReservations(t *testing.T) {
	blackouts := []Blackout{{Scope: ScopeRoom, RoomID: &roomA}}
	reservations := []Reservation{{RoomID: roomA, TimeslotID: slot10}}

	res := Resolve(&roomA, testDate, catalog(), reservations, blackouts)
	if len(res.Disabled) != 3 {
		t.Fatalf("expected full catalog disabled, got %d", len(res.Disabled))
	}
	if res.Banner == nil || res.Banner.Kind != BannerAllDay {
		t.Fatalf("expected all-day banner, got %+v", res.Banner)
	}
}

func TestResolve_PartialOverlap(t *testing.T) {
	// Окно 09:30–10:30 пересекает оба часовых слота вокруг него
	blackouts := []Blackout{{Scope: ScopeRoom, RoomID: &roomA, Window: window(570, 630)}}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if !res.IsDisabled(slot9) || !res.IsDisabled(slot10) {
		t.Fatalf("expected 09:00 and 10:00 slots disabled")
	}
	if res.IsDisabled(slot11) {
		t.Fatalf("expected 11:00 slot bookable")
	}

	other := Resolve(&roomB, testDate, catalog(), nil, blackouts)
	if len(other.Disabled) != 0 {
		t.Fatalf("room A blackout must not affect room B, got %d disabled", len(other.Disabled))
	}
}

func TestResolve_AdjacencyIsNotOverlap(t *testing.T) {
	// Запрет 10:00–11:00: слот, кончающийся ровно в 10:00, и слот,
	// начинающийся ровно в 11:00, остаются доступными
	blackouts := []Blackout{{Scope: ScopeRoom, RoomID: &roomA, Window: window(600, 660)}}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if res.IsDisabled(slot9) {
		t.Fatalf("slot ending at blackout start must stay bookable")
	}
	if res.IsDisabled(slot11) {
		t.Fatalf("slot starting at blackout end must stay bookable")
	}
	if !res.IsDisabled(slot10) {
		t.Fatalf("slot inside blackout must be disabled")
	}
}

func TestResolve_PartialsUnion(t *testing.T) {
	blackouts := []Blackout{
		{Scope: ScopeGlobal, Window: window(540, 570)},  // 09:00–09:30
		{Scope: ScopeRoom, RoomID: &roomA, Window: window(690, 720)}, // 11:30–12:00
	}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if !res.IsDisabled(slot9) || !res.IsDisabled(slot11) {
		t.Fatalf("expected union of both windows")
	}
	if res.IsDisabled(slot10) {
		t.Fatalf("expected middle slot bookable")
	}
}

func TestResolve_ReservationAndBlackoutUnion(t *testing.T) {
	reservations := []Reservation{{RoomID: roomA, TimeslotID: slot11}}
	blackouts := []Blackout{{Scope: ScopeGlobal, Window: window(540, 570)}}

	res := Resolve(&roomA, testDate, catalog(), reservations, blackouts)
	if !res.IsDisabled(slot9) || !res.IsDisabled(slot11) {
		t.Fatalf("expected both reserved and blacked-out slots disabled")
	}
	if res.IsDisabled(slot10) {
		t.Fatalf("expected untouched slot bookable")
	}
}

func TestResolve_MultipleAllDayIdempotent(t *testing.T) {
	blackouts := []Blackout{
		{Scope: ScopeGlobal},
		{Scope: ScopeRoom, RoomID: &roomA},
	}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if len(res.Disabled) != 3 {
		t.Fatalf("expected full catalog disabled once, got %d", len(res.Disabled))
	}
}

func TestResolve_Idempotent(t *testing.T) {
	reservations := []Reservation{{RoomID: roomA, TimeslotID: slot10}}
	blackouts := []Blackout{{Scope: ScopeGlobal, Window: window(540, 570)}}

	first := Resolve(&roomA, testDate, catalog(), reservations, blackouts)
	second := Resolve(&roomA, testDate, catalog(), reservations, blackouts)

	if len(first.Disabled) != len(second.Disabled) {
		t.Fatalf("expected identical results, got %d vs %d", len(first.Disabled), len(second.Disabled))
	}
	for id := range first.Disabled {
		if !second.IsDisabled(id) {
			t.Fatalf("expected %s disabled in both runs", id)
		}
	}
}

func TestResolve_PartialBannerText(t *testing.T) {
	blackouts := []Blackout{{Scope: ScopeRoom, RoomID: &roomA, Window: window(570, 630)}}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if res.Banner == nil {
		t.Fatalf("expected partial banner")
	}
	if res.Banner.Kind != BannerPartial {
		t.Fatalf("expected kind %q, got %q", BannerPartial, res.Banner.Kind)
	}
	want := "Some times are blacked out on 2025-03-10: 09:30–10:30."
	if res.Banner.Text != want {
		t.Fatalf("expected %q, got %q", want, res.Banner.Text)
	}
}

func TestResolve_AllDayBannerTexts(t *testing.T) {
	note := "Exam week"

	global := Resolve(&roomA, testDate, catalog(), nil,
		[]Blackout{{Scope: ScopeGlobal, Note: note}})
	wantGlobal := "All rooms are blacked out all day on 2025-03-10 — Exam week."
	if global.Banner == nil || global.Banner.Text != wantGlobal {
		t.Fatalf("expected %q, got %+v", wantGlobal, global.Banner)
	}

	room := Resolve(&roomA, testDate, catalog(), nil,
		[]Blackout{{Scope: ScopeRoom, RoomID: &roomA}})
	wantRoom := "This room is blacked out all day on 2025-03-10."
	if room.Banner == nil || room.Banner.Text != wantRoom {
		t.Fatalf("expected %q, got %+v", wantRoom, room.Banner)
	}
}

func TestResolve_OtherRoomBlackoutIgnoredInBanner(t *testing.T) {
	blackouts := []Blackout{{Scope: ScopeRoom, RoomID: &roomB}}

	res := Resolve(&roomA, testDate, catalog(), nil, blackouts)
	if res.Banner != nil {
		t.Fatalf("expected no banner for irrelevant blackout, got %+v", res.Banner)
	}
	if len(res.Disabled) != 0 {
		t.Fatalf("expected no disabled slots, got %d", len(res.Disabled))
	}
}

func TestBlackoutsFromModel_SkipsMalformedPartial(t *testing.T) {
	start := "10:00:00"
	rows := []model.Blackout{
		{Scope: model.BlackoutScopeGlobal, IsAllDay: false, StartTime: &start, EndTime: nil},
		{Scope: model.BlackoutScopeGlobal, IsAllDay: true},
	}

	out := BlackoutsFromModel(rows)
	if len(out) != 1 {
		t.Fatalf("expected malformed partial skipped, got %d rules", len(out))
	}
	if !out[0].AllDay() {
		t.Fatalf("expected surviving rule to be all-day")
	}
}

func TestReservationsFromModel_SkipsCanceled(t *testing.T) {
	rows := []model.Reservation{
		{RoomID: roomA, TimeslotID: slot9, Status: model.ReservationStatusCanceled},
		{RoomID: roomA, TimeslotID: slot10, Status: model.ReservationStatusBooked},
	}

	out := ReservationsFromModel(rows)
	if len(out) != 1 {
		t.Fatalf("expected canceled reservation skipped, got %d", len(out))
	}
	if out[0].TimeslotID != slot10 {
		t.Fatalf("expected booked reservation kept")
	}
}
