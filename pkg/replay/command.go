package replay

import (
	"fmt"
	"strings"

	"github.com/fsnow/achron-replay/pkg/codec"
)

// CommandType is the one-byte tag of a record inside a chronal command
// batch. The payload size of each record is derived from this tag, so an
// unrecognized value is fatal to the decode pass.
type CommandType uint8

const (
	CommandMoveTimePosition CommandType = iota
	CommandFollowToTime
	CommandAssignUnitObjective
	CommandAssignUnitObjectiveOnly
	CommandMarkUnit
	CommandDeleteEvents
	CommandSetBookmark
	CommandJumpToBookmark
	CommandCreateAlliance
	CommandBreakAlliance
	CommandShareVision
	CommandRevokeVision
	CommandShareControl
	CommandRevokeControl
	CommandFastTime
	CommandSlowTime
	CommandStopTime
	CommandNormalTime
	CommandReloadScripts
	CommandDeleteNextCommand

	// CommandDeleteNextCommandAndJumpToTime appears in the engine's
	// command table but its payload layout is unknown; it is named here
	// for diagnostics only and has no decoder.
	CommandDeleteNextCommandAndJumpToTime
)

// String returns the symbolic name of the command type for diagnostics.
func (t CommandType) String() string {
	names := map[CommandType]string{
		CommandMoveTimePosition:               "MoveTimePosition",
		CommandFollowToTime:                   "FollowToTime",
		CommandAssignUnitObjective:            "AssignUnitObjective",
		CommandAssignUnitObjectiveOnly:        "AssignUnitObjectiveOnly",
		CommandMarkUnit:                       "MarkUnit",
		CommandDeleteEvents:                   "DeleteEvents",
		CommandSetBookmark:                    "SetBookmark",
		CommandJumpToBookmark:                 "JumpToBookmark",
		CommandCreateAlliance:                 "CreateAlliance",
		CommandBreakAlliance:                  "BreakAlliance",
		CommandShareVision:                    "ShareVision",
		CommandRevokeVision:                   "RevokeVision",
		CommandShareControl:                   "ShareControl",
		CommandRevokeControl:                  "RevokeControl",
		CommandFastTime:                       "FastTime",
		CommandSlowTime:                       "SlowTime",
		CommandStopTime:                       "StopTime",
		CommandNormalTime:                     "NormalTime",
		CommandReloadScripts:                  "ReloadScripts",
		CommandDeleteNextCommand:              "DeleteNextCommand",
		CommandDeleteNextCommandAndJumpToTime: "DeleteNextCommandAndJumpToTime",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// objectiveQueuedBit marks a queued order; the objective id itself lives
// in the low 6 bits of the raw byte.
const objectiveQueuedBit = 1 << 7

// MoveTimePosition jumps the issuing player's chronal viewpoint to an
// absolute time.
type MoveTimePosition struct {
	base
	TargetTime uint32
}

func (m *MoveTimePosition) String() string {
	return fmt.Sprintf("%s jumps to time %s", m.from, formatTicksPlain(int64(m.TargetTime)))
}

// FollowToTime moves the player's viewpoint to a time while following it.
type FollowToTime struct {
	base
	TargetTime uint32
}

func (m *FollowToTime) String() string {
	return fmt.Sprintf("%s follows to time %s", m.from, formatTicksPlain(int64(m.TargetTime)))
}

// AssignUnitObjective orders a unit to an objective with a runtime
// parameter (a position, unit or time, depending on the objective).
type AssignUnitObjective struct {
	base
	Unit      uint16
	Objective uint8
	Queued    bool
	Parameter uint32
}

func (m *AssignUnitObjective) String() string {
	return formatObjective(m.from, m.Unit, m.Objective, m.Queued, true)
}

// AssignUnitObjectiveOnly orders a unit to an objective without a
// parameter.
type AssignUnitObjectiveOnly struct {
	base
	Unit      uint16
	Objective uint8
	Queued    bool
}

func (m *AssignUnitObjectiveOnly) String() string {
	return formatObjective(m.from, m.Unit, m.Objective, m.Queued, false)
}

func formatObjective(from Origin, unit uint16, objective uint8, queued, hasParameter bool) string {
	method := "assigns"
	if queued {
		method = "queues"
	}
	labels := LookupObjective(objective, hasParameter)
	if len(labels) == 0 {
		return fmt.Sprintf("%s %s unit %d objective %d", from, method, unit, objective)
	}
	return fmt.Sprintf("%s %s unit %d objective %d (one of %s)", from, method, unit,
		objective, strings.Join(labels, ", "))
}

// MarkUnit flags a unit for the issuing player.
type MarkUnit struct {
	base
	Unit uint16
}

func (m *MarkUnit) String() string {
	return fmt.Sprintf("%s marks unit %d", m.from, m.Unit)
}

// UndoForUnit erases all of a unit's orders between the player's current
// time position and a target end time.
type UndoForUnit struct {
	base
	Unit      uint16
	StartTime int64
	EndTime   uint32
}

func (m *UndoForUnit) String() string {
	return fmt.Sprintf("%s undoes all orders for %d from (%s) to (%s)", m.from,
		m.Unit, formatTicksPlain(m.StartTime), formatTicksPlain(int64(m.EndTime)))
}

// SetBookmark stores the current viewpoint under a bookmark number.
type SetBookmark struct {
	base
	Bookmark uint8
}

func (m *SetBookmark) String() string {
	return fmt.Sprintf("%s sets bookmark %d", m.from, m.Bookmark)
}

// JumpToBookmark recalls a stored bookmark.
type JumpToBookmark struct {
	base
	Bookmark uint8
}

func (m *JumpToBookmark) String() string {
	return fmt.Sprintf("%s jumps to bookmark %d", m.from, m.Bookmark)
}

// CreateAlliance offers an alliance to another seat.
type CreateAlliance struct {
	base
	Ally Origin
}

func (m *CreateAlliance) String() string {
	return fmt.Sprintf("%s offers alliance to %s", m.from, m.Ally)
}

// BreakAlliance dissolves an alliance with another seat.
type BreakAlliance struct {
	base
	FormerAlly Origin
}

func (m *BreakAlliance) String() string {
	return fmt.Sprintf("%s breaks alliance with %s", m.from, m.FormerAlly)
}

// ShareVision grants another seat visibility of the player's units.
type ShareVision struct {
	base
	Target Origin
}

func (m *ShareVision) String() string {
	return fmt.Sprintf("%s shares vision with %s", m.from, m.Target)
}

// RevokeVision withdraws shared visibility.
type RevokeVision struct {
	base
	Target Origin
}

func (m *RevokeVision) String() string {
	return fmt.Sprintf("%s stops sharing vision with %s", m.from, m.Target)
}

// ShareControl grants another seat control of the player's units.
type ShareControl struct {
	base
	Target Origin
}

func (m *ShareControl) String() string {
	return fmt.Sprintf("%s shares control with %s", m.from, m.Target)
}

// RevokeControl withdraws shared control.
type RevokeControl struct {
	base
	Target Origin
}

func (m *RevokeControl) String() string {
	return fmt.Sprintf("%s revokes control from %s", m.from, m.Target)
}

// FastTime switches the player's playback to double speed.
type FastTime struct{ base }

func (m *FastTime) String() string {
	return fmt.Sprintf("%s switches to fast forward", m.from)
}

// SlowTime switches the player's playback to half speed.
type SlowTime struct{ base }

func (m *SlowTime) String() string {
	return fmt.Sprintf("%s switches to slow motion", m.from)
}

// StopTime pauses the player's playback.
type StopTime struct{ base }

func (m *StopTime) String() string {
	return fmt.Sprintf("%s pauses", m.from)
}

// NormalTime restores the player's playback to normal speed.
type NormalTime struct{ base }

func (m *NormalTime) String() string {
	return fmt.Sprintf("%s switches to normal time", m.from)
}

// ReloadScripts reloads the game scripts.
type ReloadScripts struct{ base }

func (m *ReloadScripts) String() string {
	return fmt.Sprintf("%s reloads scripts", m.from)
}

// DeleteNextCommand removes a unit's next queued command in a direction.
type DeleteNextCommand struct {
	base
	Unit      uint16
	Direction uint8
}

func (m *DeleteNextCommand) String() string {
	return fmt.Sprintf("%s deletes the next command for unit %d (direction %d)", m.from,
		m.Unit, m.Direction)
}

// decodeCommandBatch decodes the count-prefixed sequence of command
// records in a chronal-commands payload. All records in the batch share
// the envelope's timestamp and issuing player; side effects (time jumps,
// speed changes) apply in record order, so a later record observes the
// clock state left by an earlier one.
func decodeCommandBatch(ts uint32, player *Player, from Origin, resolve func(uint8) Origin, buf *codec.Buffer) ([]Message, error) {
	count, err := buf.Uint8()
	if err != nil {
		return nil, fmt.Errorf("command count at timestamp %d: %w", ts, err)
	}

	msgs := make([]Message, 0, count)
	for i := 0; i < int(count); i++ {
		tag, err := buf.Uint8()
		if err != nil {
			return nil, fmt.Errorf("command %d/%d tag at timestamp %d: %w", i+1, count, ts, err)
		}

		msg, err := decodeCommand(CommandType(tag), ts, player, from, resolve, buf)
		if err != nil {
			return nil, fmt.Errorf("command %d/%d at timestamp %d: %w", i+1, count, ts, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func decodeCommand(tag CommandType, ts uint32, player *Player, from Origin, resolve func(uint8) Origin, buf *codec.Buffer) (Message, error) {
	b := base{timestamp: ts, from: from}

	switch tag {
	case CommandMoveTimePosition, CommandFollowToTime:
		target, err := buf.Uint32()
		if err != nil {
			return nil, err
		}
		if player != nil {
			player.setTimePosition(int64(target))
		}
		if tag == CommandFollowToTime {
			return &FollowToTime{base: b, TargetTime: target}, nil
		}
		return &MoveTimePosition{base: b, TargetTime: target}, nil

	case CommandAssignUnitObjective:
		unit, err := buf.Uint16()
		if err != nil {
			return nil, err
		}
		raw, err := buf.Uint8()
		if err != nil {
			return nil, err
		}
		param, err := buf.Uint32()
		if err != nil {
			return nil, err
		}
		return &AssignUnitObjective{
			base:      b,
			Unit:      unit,
			Objective: raw & uint8(codec.LowMask(6)),
			Queued:    raw&objectiveQueuedBit != 0,
			Parameter: param,
		}, nil

	case CommandAssignUnitObjectiveOnly:
		unit, err := buf.Uint16()
		if err != nil {
			return nil, err
		}
		raw, err := buf.Uint8()
		if err != nil {
			return nil, err
		}
		return &AssignUnitObjectiveOnly{
			base:      b,
			Unit:      unit,
			Objective: raw & uint8(codec.LowMask(6)),
			Queued:    raw&objectiveQueuedBit != 0,
		}, nil

	case CommandMarkUnit:
		unit, err := buf.Uint16()
		if err != nil {
			return nil, err
		}
		return &MarkUnit{base: b, Unit: unit}, nil

	case CommandDeleteEvents:
		unit, err := buf.Uint16()
		if err != nil {
			return nil, err
		}
		end, err := buf.Uint32()
		if err != nil {
			return nil, err
		}
		var start int64
		if player != nil {
			start = player.TimePosition()
		}
		return &UndoForUnit{base: b, Unit: unit, StartTime: start, EndTime: end}, nil

	case CommandSetBookmark, CommandJumpToBookmark:
		n, err := buf.Uint8()
		if err != nil {
			return nil, err
		}
		if tag == CommandSetBookmark {
			return &SetBookmark{base: b, Bookmark: n}, nil
		}
		return &JumpToBookmark{base: b, Bookmark: n}, nil

	case CommandCreateAlliance, CommandBreakAlliance,
		CommandShareVision, CommandRevokeVision,
		CommandShareControl, CommandRevokeControl:
		seat, err := buf.Uint8()
		if err != nil {
			return nil, err
		}
		target := resolve(seat)
		switch tag {
		case CommandCreateAlliance:
			return &CreateAlliance{base: b, Ally: target}, nil
		case CommandBreakAlliance:
			return &BreakAlliance{base: b, FormerAlly: target}, nil
		case CommandShareVision:
			return &ShareVision{base: b, Target: target}, nil
		case CommandRevokeVision:
			return &RevokeVision{base: b, Target: target}, nil
		case CommandShareControl:
			return &ShareControl{base: b, Target: target}, nil
		default:
			return &RevokeControl{base: b, Target: target}, nil
		}

	case CommandFastTime:
		if player != nil {
			player.setSpeed(2)
		}
		return &FastTime{base: b}, nil

	case CommandSlowTime:
		if player != nil {
			player.setSpeed(0.5)
		}
		return &SlowTime{base: b}, nil

	case CommandStopTime:
		if player != nil {
			player.setSpeed(0)
		}
		return &StopTime{base: b}, nil

	case CommandNormalTime:
		if player != nil {
			player.setSpeed(1)
		}
		return &NormalTime{base: b}, nil

	case CommandReloadScripts:
		return &ReloadScripts{base: b}, nil

	case CommandDeleteNextCommand:
		unit, err := buf.Uint16()
		if err != nil {
			return nil, err
		}
		direction, err := buf.Uint8()
		if err != nil {
			return nil, err
		}
		return &DeleteNextCommand{base: b, Unit: unit, Direction: direction}, nil

	default:
		return nil, fmt.Errorf("command type %d (%s): %w", uint8(tag), tag, codec.ErrUnknownTag)
	}
}
