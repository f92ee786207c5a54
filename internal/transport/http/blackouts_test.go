package httpapi

import "testing"

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"09:30":    "09:30:00",
		"09:30:00": "09:30:00",
		"":         "",
	}
	for in, want := range cases {
		if got := normalizeClock(in); got != want {
			t.Fatalf("normalizeClock(%q) = %q, want %q", in, got, want)
		}
	}
}
