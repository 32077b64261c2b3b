package exporter

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/fsnow/achron-replay/pkg/replay"
)

func buildHeader(mapPath string, seed uint32, seatMask uint16) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("CRRP\x00")
	buf.Write([]byte{1, 0, 2, 3})
	binary.Write(buf, binary.LittleEndian, uint16(len(mapPath)))
	buf.WriteString(mapPath)
	binary.Write(buf, binary.LittleEndian, seed)
	binary.Write(buf, binary.LittleEndian, seatMask)
	return buf.Bytes()
}

func buildEnvelope(ts uint32, msgType, content, seat uint8, params []byte) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, ts)
	buf.WriteByte(msgType)
	buf.WriteByte(content)
	buf.WriteByte(seat)
	binary.Write(buf, binary.LittleEndian, uint32(len(params)))
	buf.Write(params)
	return buf.Bytes()
}

func decodeTestReplay(t *testing.T) (*replay.Replay, []replay.Message) {
	t.Helper()

	// Batch: one AssignUnitObjective (unit 7, objective 5 queued, param 12).
	batch := []byte{1, byte(replay.CommandAssignUnitObjective), 7, 0, 0x85, 12, 0, 0, 0}

	data := buildHeader("maps/skirmish.map", 42, 0x0003)
	data = append(data, buildEnvelope(0, byte(replay.MessageTypeNewClient), 0, 0, []byte("Alice"))...)
	data = append(data, buildEnvelope(36, byte(replay.MessageTypeMessage), byte(replay.ContentTypeBroadcastText), 0, []byte("gg"))...)
	data = append(data, buildEnvelope(72, byte(replay.MessageTypeMessage), byte(replay.ContentTypeChronalCommands), 0, batch)...)

	r, err := replay.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var msgs []replay.Message
	it := r.Messages()
	for {
		msg, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		msgs = append(msgs, msg)
	}
	return r, msgs
}

func TestHeaderDocument(t *testing.T) {
	r, _ := decodeTestReplay(t)

	doc := HeaderDocument(r)
	if doc["kind"] != "replay-header" {
		t.Errorf("kind = %v, want replay-header", doc["kind"])
	}
	if doc["map"] != "maps/skirmish.map" {
		t.Errorf("map = %v, want maps/skirmish.map", doc["map"])
	}
	if doc["seed"] != int64(42) {
		t.Errorf("seed = %v, want 42", doc["seed"])
	}
	seats, ok := doc["seats"].([]int32)
	if !ok || len(seats) != 2 || seats[0] != 0 || seats[1] != 1 {
		t.Errorf("seats = %v, want [0 1]", doc["seats"])
	}
}

func TestDocument_PublicChat(t *testing.T) {
	_, msgs := decodeTestReplay(t)

	doc := Document(msgs[1])
	if doc["kind"] != "public-chat" {
		t.Errorf("kind = %v, want public-chat", doc["kind"])
	}
	if doc["timestamp"] != int64(36) {
		t.Errorf("timestamp = %v, want 36", doc["timestamp"])
	}
	if doc["seat"] != int32(0) {
		t.Errorf("seat = %v, want 0", doc["seat"])
	}
	if doc["player"] != "Alice" {
		t.Errorf("player = %v, want Alice", doc["player"])
	}
	if doc["contents"] != "gg" {
		t.Errorf("contents = %v, want gg", doc["contents"])
	}
	if doc["text"] != "Alice (player 0) says: gg" {
		t.Errorf("text = %v", doc["text"])
	}
}

func TestDocument_AssignUnitObjective(t *testing.T) {
	_, msgs := decodeTestReplay(t)

	doc := Document(msgs[2])
	if doc["kind"] != "assign-unit-objective" {
		t.Errorf("kind = %v, want assign-unit-objective", doc["kind"])
	}
	if doc["unit"] != int32(7) {
		t.Errorf("unit = %v, want 7", doc["unit"])
	}
	if doc["objective"] != int32(5) {
		t.Errorf("objective = %v, want 5", doc["objective"])
	}
	if doc["queued"] != true {
		t.Errorf("queued = %v, want true", doc["queued"])
	}
	if doc["parameter"] != int64(12) {
		t.Errorf("parameter = %v, want 12", doc["parameter"])
	}
}

func TestKind_CoversAllVariants(t *testing.T) {
	_, msgs := decodeTestReplay(t)
	for i, msg := range msgs {
		if Kind(msg) == "unknown" {
			t.Errorf("message %d (%T) has no kind name", i, msg)
		}
	}
}
