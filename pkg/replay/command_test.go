package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/fsnow/achron-replay/pkg/codec"
)

func cmdRecord(tag CommandType, payload ...byte) []byte {
	return append([]byte{byte(tag)}, payload...)
}

func le16(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// decodeBatchFor runs a replay with one joined player and one
// chronal-commands envelope, returning the flattened messages.
func decodeBatchFor(t *testing.T, ts uint32, batch []byte) []Message {
	t.Helper()
	data := buildReplay(
		buildEnvelope(0, MessageTypeNewClient, 0, 0, []byte("Alice")),
		buildEnvelope(ts, MessageTypeMessage, ContentTypeChronalCommands, 0, batch),
	)
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	msgs := drainMessages(t, r)
	return msgs[1:] // drop the join
}

func TestCommandBatch_FlattensIntoMultipleMessages(t *testing.T) {
	batch := buildBatch(
		cmdRecord(CommandMarkUnit, le16(5)...),
		cmdRecord(CommandSetBookmark, 1),
		cmdRecord(CommandJumpToBookmark, 1),
	)

	msgs := decodeBatchFor(t, 10, batch)
	want := []string{
		"Alice (player 0) marks unit 5",
		"Alice (player 0) sets bookmark 1",
		"Alice (player 0) jumps to bookmark 1",
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i, w := range want {
		if got := msgs[i].String(); got != w {
			t.Errorf("message %d = %q, want %q", i, got, w)
		}
	}
}

func TestCommandBatch_EmptyBatchYieldsNoMessages(t *testing.T) {
	msgs := decodeBatchFor(t, 10, buildBatch())
	if len(msgs) != 0 {
		t.Errorf("got %d messages from empty batch, want 0", len(msgs))
	}
}

func TestAssignUnitObjective_QueuedBitAndMask(t *testing.T) {
	// 0x85 = objective 5 with bit 7 (queued) set.
	batch := buildBatch(cmdRecord(CommandAssignUnitObjectiveOnly, append(le16(7), 0x85)...))

	msgs := decodeBatchFor(t, 10, batch)
	obj, ok := msgs[0].(*AssignUnitObjectiveOnly)
	if !ok {
		t.Fatalf("message is %T, want *AssignUnitObjectiveOnly", msgs[0])
	}
	if obj.Objective != 5 {
		t.Errorf("Objective = %d, want 5", obj.Objective)
	}
	if !obj.Queued {
		t.Error("Queued = false, want true")
	}
	if obj.Unit != 7 {
		t.Errorf("Unit = %d, want 7", obj.Unit)
	}
	if got := obj.String(); !strings.HasPrefix(got, "Alice (player 0) queues unit 7 objective 5") {
		t.Errorf("String() = %q", got)
	}
}

func TestAssignUnitObjective_WithParameter(t *testing.T) {
	payload := append(le16(12), 0x01)        // unit 12, objective 1, not queued
	payload = append(payload, le32(9999)...) // parameter
	batch := buildBatch(cmdRecord(CommandAssignUnitObjective, payload...))

	msgs := decodeBatchFor(t, 10, batch)
	obj, ok := msgs[0].(*AssignUnitObjective)
	if !ok {
		t.Fatalf("message is %T, want *AssignUnitObjective", msgs[0])
	}
	if obj.Objective != 1 || obj.Queued || obj.Parameter != 9999 {
		t.Errorf("decoded = %+v", obj)
	}
	// Objective 1 with a parameter offers the parameterised candidates.
	if got := obj.String(); !strings.Contains(got, "assigns unit 12 objective 1 (one of ") {
		t.Errorf("String() = %q", got)
	}
}

func TestMoveTimePosition_SetsPlayerClock(t *testing.T) {
	batch := buildBatch(
		cmdRecord(CommandMoveTimePosition, le32(1000)...),
		cmdRecord(CommandDeleteEvents, append(le16(3), le32(2000)...)...),
	)

	msgs := decodeBatchFor(t, 10, batch)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}

	undo, ok := msgs[1].(*UndoForUnit)
	if !ok {
		t.Fatalf("message 1 is %T, want *UndoForUnit", msgs[1])
	}
	// The earlier record in the same batch moved the clock to 1000.
	if undo.StartTime != 1000 {
		t.Errorf("StartTime = %d, want 1000", undo.StartTime)
	}
	if undo.EndTime != 2000 {
		t.Errorf("EndTime = %d, want 2000", undo.EndTime)
	}
	if got := undo.String(); got != "Alice (player 0) undoes all orders for 3 from (0m 55s 10t) to (1m 51s 2t)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpeedCommands_AffectLaterClockAdvance(t *testing.T) {
	data := buildReplay(
		buildEnvelope(0, MessageTypeNewClient, 0, 0, []byte("Alice")),
		buildEnvelope(0, MessageTypeMessage, ContentTypeChronalCommands, 0,
			buildBatch(cmdRecord(CommandFastTime))),
		buildEnvelope(36, MessageTypeMessage, ContentTypeChronalCommands, 0,
			buildBatch(cmdRecord(CommandDeleteEvents, append(le16(1), le32(0)...)...))),
	)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	msgs := drainMessages(t, r)
	undo := msgs[2].(*UndoForUnit)
	// 36 wall ticks at double speed: 36/2*2 = 36 simulated ticks.
	if undo.StartTime != 36 {
		t.Errorf("StartTime = %d, want 36", undo.StartTime)
	}
}

func TestSpeedCommands_Texts(t *testing.T) {
	batch := buildBatch(
		cmdRecord(CommandFastTime),
		cmdRecord(CommandSlowTime),
		cmdRecord(CommandStopTime),
		cmdRecord(CommandNormalTime),
		cmdRecord(CommandReloadScripts),
	)

	msgs := decodeBatchFor(t, 10, batch)
	want := []string{
		"Alice (player 0) switches to fast forward",
		"Alice (player 0) switches to slow motion",
		"Alice (player 0) pauses",
		"Alice (player 0) switches to normal time",
		"Alice (player 0) reloads scripts",
	}
	for i, w := range want {
		if got := msgs[i].String(); got != w {
			t.Errorf("message %d = %q, want %q", i, got, w)
		}
	}
}

func TestDiplomacyCommands_ResolveTargetSeat(t *testing.T) {
	data := buildReplay(
		buildEnvelope(0, MessageTypeNewClient, 0, 0, []byte("Alice")),
		buildEnvelope(0, MessageTypeNewClient, 0, 1, []byte("Bob")),
		buildEnvelope(10, MessageTypeMessage, ContentTypeChronalCommands, 0, buildBatch(
			cmdRecord(CommandCreateAlliance, 1),
			cmdRecord(CommandBreakAlliance, 1),
			cmdRecord(CommandShareVision, 1),
			cmdRecord(CommandRevokeVision, 3),
			cmdRecord(CommandShareControl, 1),
			cmdRecord(CommandRevokeControl, 1),
		)),
	)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	msgs := drainMessages(t, r)[2:]
	want := []string{
		"Alice (player 0) offers alliance to Bob (player 1)",
		"Alice (player 0) breaks alliance with Bob (player 1)",
		"Alice (player 0) shares vision with Bob (player 1)",
		"Alice (player 0) stops sharing vision with player 3",
		"Alice (player 0) shares control with Bob (player 1)",
		"Alice (player 0) revokes control from Bob (player 1)",
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i, w := range want {
		if got := msgs[i].String(); got != w {
			t.Errorf("message %d = %q, want %q", i, got, w)
		}
	}
}

func TestDeleteNextCommand_Decode(t *testing.T) {
	batch := buildBatch(cmdRecord(CommandDeleteNextCommand, append(le16(42), 1)...))

	msgs := decodeBatchFor(t, 10, batch)
	del, ok := msgs[0].(*DeleteNextCommand)
	if !ok {
		t.Fatalf("message is %T, want *DeleteNextCommand", msgs[0])
	}
	if del.Unit != 42 || del.Direction != 1 {
		t.Errorf("decoded = %+v", del)
	}
	if got := del.String(); got != "Alice (player 0) deletes the next command for unit 42 (direction 1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCommandBatch_UnknownTag(t *testing.T) {
	data := buildReplay(
		buildEnvelope(0, MessageTypeNewClient, 0, 0, []byte("Alice")),
		buildEnvelope(10, MessageTypeMessage, ContentTypeChronalCommands, 0,
			buildBatch(cmdRecord(CommandType(99)))),
	)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	it := r.Messages()
	if _, err = it.Next(); err != nil {
		t.Fatalf("join decode failed: %v", err)
	}
	_, err = it.Next()
	if !errors.Is(err, codec.ErrUnknownTag) {
		t.Fatalf("error = %v, want ErrUnknownTag", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("error %q does not carry the offending tag value", err)
	}
}

func TestCommandBatch_DeleteNextCommandAndJumpToTimeHasNoDecoder(t *testing.T) {
	// Tag 20 is named in the command table but its payload layout is
	// unknown, so decoding must fail rather than guess a size.
	batch := buildBatch(cmdRecord(CommandDeleteNextCommandAndJumpToTime))
	data := buildReplay(
		buildEnvelope(10, MessageTypeMessage, ContentTypeChronalCommands, 0, batch),
	)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = r.Messages().Next()
	if !errors.Is(err, codec.ErrUnknownTag) {
		t.Errorf("error = %v, want ErrUnknownTag", err)
	}
}

func TestCommandBatch_TruncatedPayload(t *testing.T) {
	// MarkUnit declares a u16 payload but only one byte follows.
	batch := buildBatch(cmdRecord(CommandMarkUnit, 0x05))
	data := buildReplay(
		buildEnvelope(10, MessageTypeMessage, ContentTypeChronalCommands, 0, batch),
	)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = r.Messages().Next()
	if !errors.Is(err, codec.ErrTruncated) {
		t.Errorf("error = %v, want ErrTruncated", err)
	}
}

func TestCommandType_Names(t *testing.T) {
	tests := []struct {
		tag  CommandType
		want string
	}{
		{CommandMoveTimePosition, "MoveTimePosition"},
		{CommandDeleteEvents, "DeleteEvents"},
		{CommandDeleteNextCommandAndJumpToTime, "DeleteNextCommandAndJumpToTime"},
		{CommandType(99), "Unknown(99)"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", uint8(tt.tag), got, tt.want)
		}
	}
}
