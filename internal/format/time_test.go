package format

import "testing"

func TestClockMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00":    0,
		"09:30":    570,
		"10:00:00": 600,
		"23:59:59": 1439,
	}
	for in, want := range cases {
		if got := ClockMinutes(in); got != want {
			t.Fatalf("ClockMinutes(%q): expected %d, got %d", in, want, got)
		}
	}
}

func TestClock(t *testing.T) {
	if got := Clock(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %q", got)
	}
	if got := Clock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %q", got)
	}
}

func TestTimeRange(t *testing.T) {
	if got := TimeRange("09:00:00", "10:00:00"); got != "09:00–10:00" {
		t.Fatalf("expected 09:00–10:00, got %q", got)
	}
}
