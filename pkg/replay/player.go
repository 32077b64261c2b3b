package replay

import "fmt"

// NoPlayerSeat is the reserved seat value meaning "no player". Envelopes
// carrying it never resolve to a Player and never touch clock state.
const NoPlayerSeat = 255

// Player is the mutable per-seat state tracked while decoding: display
// name, accumulated simulated time, the last wall timestamp seen and the
// current playback speed factor.
//
// Only the message decoder mutates a Player, via advance and the four
// time-speed commands. Decoded messages hold value-semantics Origin
// snapshots instead of sharing this struct.
type Player struct {
	Seat uint8
	Name string

	timePosition    int64
	lastTimestamp   uint32
	timeSpeedFactor float64
}

// NewPlayer creates a player for a seat with speed factor 1 and the
// clock at zero.
func NewPlayer(seat uint8, name string) *Player {
	return &Player{Seat: seat, Name: name, timeSpeedFactor: 1}
}

// TimePosition returns the accumulated simulated ticks.
func (p *Player) TimePosition() int64 {
	return p.timePosition
}

// SpeedFactor returns the current playback speed factor.
func (p *Player) SpeedFactor() float64 {
	return p.timeSpeedFactor
}

// advance moves the player's simulated clock forward to a wall timestamp.
// The engine emits two wall ticks per simulated tick, so the elapsed
// delta is halved, scaled by the speed factor and truncated toward zero.
func (p *Player) advance(timestamp uint32) {
	delta := float64(int64(timestamp) - int64(p.lastTimestamp))
	p.timePosition += int64(delta / 2 * p.timeSpeedFactor)
	p.lastTimestamp = timestamp
}

// setSpeed switches the playback speed factor. Invoked only by the
// engine-control commands (fast/slow/stop/normal time).
func (p *Player) setSpeed(factor float64) {
	p.timeSpeedFactor = factor
}

// setTimePosition jumps the simulated clock to an absolute tick count.
func (p *Player) setTimePosition(ticks int64) {
	p.timePosition = ticks
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (player %d)", p.Name, p.Seat)
}

// Origin is a value-semantics snapshot of the player a message is
// attributed to, taken when the message is decoded. Seat 255 is the
// no-player sentinel; an unresolved seat (no join event seen) keeps
// Known false and renders as the bare seat number.
type Origin struct {
	Seat  uint8
	Name  string
	Known bool
}

func originOf(p *Player) Origin {
	return Origin{Seat: p.Seat, Name: p.Name, Known: true}
}

func unresolvedOrigin(seat uint8) Origin {
	return Origin{Seat: seat}
}

func (o Origin) String() string {
	if o.Seat == NoPlayerSeat {
		return "no player"
	}
	if o.Known {
		return fmt.Sprintf("%s (player %d)", o.Name, o.Seat)
	}
	return fmt.Sprintf("player %d", o.Seat)
}
