package replay

import "testing"

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks int64
		want  string
	}{
		{0, "  0m  0s  0t"},
		{17, "  0m  0s 17t"},
		{18, "  0m  1s  0t"},
		{1080, "  1m  0s  0t"},
		{1119, "  1m  2s  3t"},
		{120*1080 + 5*18 + 7, "120m  5s  7t"},
	}

	for _, tt := range tests {
		if got := FormatTicks(tt.ticks); got != tt.want {
			t.Errorf("FormatTicks(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestFormatLine(t *testing.T) {
	msg := &PublicChat{
		base:     base{timestamp: 36, from: Origin{Seat: 0, Name: "Alice", Known: true}},
		Contents: "gg",
	}
	want := "[  0m  2s  0t]\tAlice (player 0) says: gg"
	if got := FormatLine(msg); got != want {
		t.Errorf("FormatLine = %q, want %q", got, want)
	}
}
