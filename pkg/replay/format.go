package replay

import "fmt"

// GameTicksPerSecond is the simulation rate of the engine. Envelope
// timestamps are emitted at twice this granularity (two wall ticks per
// simulated tick).
const GameTicksPerSecond = 18

// FormatTicks renders a tick count as fixed-width minutes/seconds/ticks,
// e.g. "  1m 30s  9t". Used for the bracketed line prefix.
func FormatTicks(ticks int64) string {
	minutes, seconds, rest := splitTicks(ticks)
	return fmt.Sprintf("%3dm %2ds %2dt", minutes, seconds, rest)
}

// formatTicksPlain is the unpadded variant used inside message text.
func formatTicksPlain(ticks int64) string {
	minutes, seconds, rest := splitTicks(ticks)
	return fmt.Sprintf("%dm %ds %dt", minutes, seconds, rest)
}

func splitTicks(ticks int64) (minutes, seconds, rest int64) {
	minutes = ticks / (GameTicksPerSecond * 60)
	ticks %= GameTicksPerSecond * 60
	seconds = ticks / GameTicksPerSecond
	rest = ticks % GameTicksPerSecond
	return
}

// FormatLine renders the display line for a decoded message:
// bracketed timestamp, a tab, then the message text.
func FormatLine(m Message) string {
	return fmt.Sprintf("[%s]\t%s", FormatTicks(int64(m.Timestamp())), m)
}
