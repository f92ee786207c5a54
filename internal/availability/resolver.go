package availability

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/roomierooms/backend/internal/format"
)

type Scope string

const (
	ScopeGlobal Scope = "GLOBAL"
	ScopeRoom   Scope = "ROOM"
)

// Slot слот каталога в том виде, который нужен резолверу
type Slot struct {
	ID       uuid.UUID
	StartsAt string // "HH:MM:SS"
	EndsAt   string
}

// Reservation активная бронь дня (отменённые сюда не попадают)
type Reservation struct {
	RoomID     uuid.UUID
	TimeslotID uuid.UUID
}

// Window полуинтервал [Start, End) в минутах от полуночи
type Window struct {
	Start int
	End   int
}

// Overlaps пересечение полуинтервалов: касание границ пересечением не считается
func (w Window) Overlaps(o Window) bool {
	return !(w.End <= o.Start || w.Start >= o.End)
}

// Blackout правило запрета в нормализованной форме: Window == nil означает
// весь день, иначе оба края всегда заданы. Частичное правило без времени
// непредставимо в этом типе — оно отбрасывается при конвертации из хранилища
type Blackout struct {
	Scope  Scope
	RoomID *uuid.UUID
	Window *Window
	Note   string
}

// AllDay действует ли правило весь день
func (b Blackout) AllDay() bool {
	return b.Window == nil
}

func (b Blackout) appliesTo(roomID uuid.UUID) bool {
	if b.Scope == ScopeGlobal {
		return true
	}
	return b.RoomID != nil && *b.RoomID == roomID
}

const (
	BannerAllDay  = "all-day"
	BannerPartial = "partial"
)

// Banner информационное сообщение о действующем запрете
type Banner struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Result результат вычисления доступности
type Result struct {
	Disabled map[uuid.UUID]struct{}
	Banner   *Banner
}

// IsDisabled помечен ли слот недоступным
func (r Result) IsDisabled(id uuid.UUID) bool {
	_, ok := r.Disabled[id]
	return ok
}

// Resolve вычисляет множество недоступных слотов для комнаты на дату.
// Чистая функция над уже загруженными списками: брони комнаты, затем
// релевантные запреты (глобальные плюс адресованные этой комнате); запрет
// на весь день закрывает весь каталог и перекрывает остальное, частичные
// запреты отключают слоты по пересечению окон. Без выбранной комнаты
// решать нечего — пустое множество и без баннера
func Resolve(roomID *uuid.UUID, date string, slots []Slot, reservations []Reservation, blackouts []Blackout) Result {
	res := Result{Disabled: make(map[uuid.UUID]struct{})}
	if roomID == nil {
		return res
	}

	for _, r := range reservations {
		if r.RoomID == *roomID {
			res.Disabled[r.TimeslotID] = struct{}{}
		}
	}

	var relevant []Blackout
	for _, b := range blackouts {
		if b.appliesTo(*roomID) {
			relevant = append(relevant, b)
		}
	}

	for _, b := range relevant {
		if b.AllDay() {
			for _, s := range slots {
				res.Disabled[s.ID] = struct{}{}
			}
			res.Banner = allDayBanner(b, date)
			return res
		}
	}

	var windows []Window
	for _, b := range relevant {
		windows = append(windows, *b.Window)
	}

	for _, s := range slots {
		sw := Window{Start: format.ClockMinutes(s.StartsAt), End: format.ClockMinutes(s.EndsAt)}
		for _, w := range windows {
			if sw.Overlaps(w) {
				res.Disabled[s.ID] = struct{}{}
				break
			}
		}
	}

	if len(windows) > 0 {
		res.Banner = partialBanner(windows, date)
	}
	return res
}

func allDayBanner(b Blackout, date string) *Banner {
	suffix := ""
	if b.Note != "" {
		suffix = " — " + b.Note
	}
	text := fmt.Sprintf("This room is blacked out all day on %s%s.", date, suffix)
	if b.Scope == ScopeGlobal {
		text = fmt.Sprintf("All rooms are blacked out all day on %s%s.", date, suffix)
	}
	return &Banner{Kind: BannerAllDay, Text: text}
}

func partialBanner(windows []Window, date string) *Banner {
	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		parts = append(parts, fmt.Sprintf("%s–%s", format.Clock(w.Start), format.Clock(w.End)))
	}
	return &Banner{
		Kind: BannerPartial,
		Text: fmt.Sprintf("Some times are blacked out on %s: %s.", date, strings.Join(parts, ", ")),
	}
}
