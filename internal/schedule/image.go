package schedule

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/roomierooms/backend/internal/availability"
	"github.com/roomierooms/backend/internal/format"
	"github.com/roomierooms/backend/internal/model"
)

// Константы размеров сетки
const (
	cellWidth    = 170.0
	cellHeight   = 44.0
	leftColWidth = 130.0
	headerHeight = 72.0
	legendHeight = 40.0
	padding      = 16.0
	cellRadius   = 5.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	titleColor     = color.RGBA{40, 44, 48, 255}
	labelColor     = color.RGBA{110, 115, 120, 255}
	gridLineColor  = color.RGBA{210, 212, 216, 255}
	freeColor      = color.RGBA{133, 193, 85, 220}
	bookedColor    = color.RGBA{255, 182, 193, 255}
	blackoutColor  = color.RGBA{158, 158, 158, 200}
	cellTextColor  = color.RGBA{20, 24, 28, 230}
	legendTextColor = color.RGBA{90, 95, 100, 220}
)

// RenderDayGrid рисует дневную сетку комнаты×слоты в PNG. Клетка
// красится по тем же правилам, что видит пользователь: бронь, запрет
// (через резолвер доступности) или свободно
func RenderDayGrid(
	date string,
	rooms []model.Room,
	slots []model.TimeSlot,
	reservations []model.Reservation,
	blackouts []model.Blackout,
) ([]byte, error) {
	if len(rooms) == 0 || len(slots) == 0 {
		return nil, fmt.Errorf("nothing to render: empty room or slot catalog")
	}

	width := int(leftColWidth + cellWidth*float64(len(rooms)) + 2*padding)
	height := int(headerHeight + cellHeight*float64(len(slots)) + legendHeight + 2*padding)

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	dc.SetColor(titleColor)
	dc.DrawStringAnchored(fmt.Sprintf("Room schedule — %s", date), float64(width)/2, padding+16, 0.5, 0.5)

	gridTop := padding + headerHeight
	gridLeft := padding + leftColWidth

	// Заголовки комнат
	for i, room := range rooms {
		x := gridLeft + cellWidth*float64(i) + cellWidth/2
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(room.Name, x, gridTop-14, 0.5, 0.5)
	}

	// Подписи слотов слева
	for j, slot := range slots {
		y := gridTop + cellHeight*float64(j) + cellHeight/2
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(format.TimeRange(slot.StartsAt, slot.EndsAt), padding+leftColWidth/2, y, 0.5, 0.5)
	}

	slotsIn := availability.SlotsFromModel(slots)
	reservationsIn := availability.ReservationsFromModel(reservations)
	blackoutsIn := availability.BlackoutsFromModel(blackouts)

	for i, room := range rooms {
		roomID := room.ID
		result := availability.Resolve(&roomID, date, slotsIn, reservationsIn, blackoutsIn)

		reserved := make(map[string]bool)
		for _, r := range reservationsIn {
			if r.RoomID == roomID {
				reserved[r.TimeslotID.String()] = true
			}
		}

		for j, slot := range slots {
			x := gridLeft + cellWidth*float64(i) + 3
			y := gridTop + cellHeight*float64(j) + 3
			w := cellWidth - 6
			h := cellHeight - 6

			label := "Free"
			fill := freeColor
			switch {
			case reserved[slot.ID.String()]:
				label = "Booked"
				fill = bookedColor
			case result.IsDisabled(slot.ID):
				label = "Blacked out"
				fill = blackoutColor
			}

			dc.SetColor(fill)
			dc.DrawRoundedRectangle(x, y, w, h, cellRadius)
			dc.Fill()

			dc.SetColor(gridLineColor)
			dc.DrawRoundedRectangle(x, y, w, h, cellRadius)
			dc.Stroke()

			dc.SetColor(cellTextColor)
			dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
		}
	}

	// Легенда
	legendY := float64(height) - padding - legendHeight/2
	legend := []struct {
		name string
		col  color.RGBA
	}{
		{"Free", freeColor},
		{"Booked", bookedColor},
		{"Blacked out", blackoutColor},
	}
	x := gridLeft
	for _, item := range legend {
		dc.SetColor(item.col)
		dc.DrawRoundedRectangle(x, legendY-7, 14, 14, 3)
		dc.Fill()
		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(item.name, x+22, legendY, 0, 0.5)
		x += 120
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule png: %w", err)
	}

	return buf.Bytes(), nil
}
