package replay

import "testing"

func TestPlayer_AdvanceNormalSpeed(t *testing.T) {
	p := NewPlayer(0, "Alice")

	p.advance(0)
	if p.TimePosition() != 0 {
		t.Errorf("TimePosition after advance(0) = %d, want 0", p.TimePosition())
	}

	// Two wall ticks per simulated tick: 36 wall ticks -> 18 simulated.
	p.advance(36)
	if p.TimePosition() != 18 {
		t.Errorf("TimePosition after advance(36) = %d, want 18", p.TimePosition())
	}
}

func TestPlayer_AdvanceSpeedFactors(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   int64
	}{
		{"Double", 2, 36},
		{"Half", 0.5, 9},
		{"Paused", 0, 0},
		{"Normal", 1, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, "Alice")
			p.setSpeed(tt.factor)
			p.advance(0)
			p.advance(36)
			if p.TimePosition() != tt.want {
				t.Errorf("TimePosition = %d, want %d", p.TimePosition(), tt.want)
			}
		})
	}
}

func TestPlayer_AdvanceTruncatesTowardZero(t *testing.T) {
	p := NewPlayer(0, "Alice")
	p.setSpeed(0.5)
	// 3 wall ticks -> 1.5 simulated -> 0.75 scaled -> truncates to 0.
	p.advance(3)
	if p.TimePosition() != 0 {
		t.Errorf("TimePosition = %d, want 0", p.TimePosition())
	}
}

func TestPlayer_SpeedFactorPersistsAcrossAdvances(t *testing.T) {
	p := NewPlayer(0, "Alice")
	p.setSpeed(2)
	p.advance(10)
	p.advance(20)
	p.advance(30)
	// Each 10-tick delta contributes 10/2*2 = 10.
	if p.TimePosition() != 30 {
		t.Errorf("TimePosition = %d, want 30", p.TimePosition())
	}
	if p.SpeedFactor() != 2 {
		t.Errorf("SpeedFactor = %v, want 2", p.SpeedFactor())
	}
}

func TestOrigin_DisplayForms(t *testing.T) {
	tests := []struct {
		name   string
		origin Origin
		want   string
	}{
		{"Resolved", Origin{Seat: 0, Name: "Alice", Known: true}, "Alice (player 0)"},
		{"Unresolved", Origin{Seat: 7}, "player 7"},
		{"Sentinel", Origin{Seat: NoPlayerSeat}, "no player"},
		{"SentinelWithName", Origin{Seat: NoPlayerSeat, Name: "x", Known: true}, "no player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.origin.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
