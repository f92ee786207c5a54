package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockMinutes переводит время "HH:MM" или "HH:MM:SS" в минуты от полуночи.
// Непарсящиеся части считаются нулём — целостность данных на совести вызывающего
func ClockMinutes(t string) int {
	parts := strings.Split(t, ":")
	hh, _ := strconv.Atoi(parts[0])
	mm := 0
	if len(parts) > 1 {
		mm, _ = strconv.Atoi(parts[1])
	}
	return hh*60 + mm
}

// Clock форматирует минуты от полуночи как "HH:MM"
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ShortTime обрезает "HH:MM:SS" до "HH:MM"
func ShortTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// TimeRange форматирует диапазон времени как "HH:MM–HH:MM"
func TimeRange(start, end string) string {
	return fmt.Sprintf("%s–%s", ShortTime(start), ShortTime(end))
}

// Date форматирует дату как "YYYY-MM-DD"
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}
