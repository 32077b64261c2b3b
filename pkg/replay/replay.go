package replay

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/fsnow/achron-replay/pkg/codec"
)

// magic is the 5-byte signature at the start of every replay file.
var magic = []byte("CRRP\x00")

// Header is the fixed replay file header. Immutable once parsed; the
// version tuple and seat mask are decoded verbatim with no semantic
// validation.
type Header struct {
	// Version is the 4-byte engine version tuple.
	Version [4]byte

	// MapPath is the path of the map the game was played on.
	MapPath string

	// RandomSeed seeds the engine's deterministic simulation.
	RandomSeed uint32

	// SeatMask is the raw 16-bit seat-occupancy bitmask.
	SeatMask uint16

	// PlayerSeats holds the 15 significant occupancy flags of SeatMask,
	// indexed by seat.
	PlayerSeats []bool
}

// Envelope is one raw timestamp-tagged record from the replay body. The
// parameter block is opaque at this level; its layout depends on the
// type and content tags.
type Envelope struct {
	Timestamp uint32
	Type      uint8
	Content   uint8
	Seat      uint8
	Params    []byte
}

// Replay wraps a replay byte buffer after a successful header parse.
// The buffer is read-only and shared by every iterator created from the
// container; iterators own all mutable decode state, so independent
// traversals never interfere.
type Replay struct {
	Header Header

	data       []byte
	bodyOffset int
}

// Parse validates the header of a replay buffer and returns a container
// over it. Fails with ErrBadMagic if the signature does not match.
func Parse(data []byte) (*Replay, error) {
	buf := codec.NewBuffer(data)

	sig, err := buf.Bytes(len(magic))
	if err != nil {
		return nil, fmt.Errorf("header magic: %w", err)
	}
	if !bytes.Equal(sig, magic) {
		return nil, fmt.Errorf("header magic %q: %w", sig, codec.ErrBadMagic)
	}

	var header Header
	version, err := buf.Bytes(4)
	if err != nil {
		return nil, fmt.Errorf("header version: %w", err)
	}
	copy(header.Version[:], version)

	header.MapPath, err = buf.ASCIIString(2)
	if err != nil {
		return nil, fmt.Errorf("header map path: %w", err)
	}

	header.RandomSeed, err = buf.Uint32()
	if err != nil {
		return nil, fmt.Errorf("header random seed: %w", err)
	}

	header.SeatMask, err = buf.Uint16()
	if err != nil {
		return nil, fmt.Errorf("header seat mask: %w", err)
	}
	header.PlayerSeats = codec.UnpackFlags(uint32(header.SeatMask), 16)

	return &Replay{
		Header:     header,
		data:       data,
		bodyOffset: buf.Offset(),
	}, nil
}

// OccupiedSeats returns the seat numbers marked occupied in the header.
func (r *Replay) OccupiedSeats() []int {
	var seats []int
	for seat, occupied := range r.Header.PlayerSeats {
		if occupied {
			seats = append(seats, seat)
		}
	}
	return seats
}

// Envelopes returns a fresh iterator over the raw records of the replay
// body. The iterator is forward-only; call Envelopes again for a new
// traversal.
func (r *Replay) Envelopes() *EnvelopeIterator {
	return &EnvelopeIterator{buf: codec.NewBuffer(r.data[r.bodyOffset:])}
}

// EnvelopeIterator reads raw envelopes one at a time until the buffer is
// exactly exhausted. A trailing partial record is a truncation error,
// never silently dropped.
type EnvelopeIterator struct {
	buf *codec.Buffer
}

// Next returns the next raw envelope, or io.EOF once the body has been
// fully consumed.
func (it *EnvelopeIterator) Next() (*Envelope, error) {
	if it.buf.Remaining() == 0 {
		return nil, io.EOF
	}

	offset := it.buf.Offset()
	env := &Envelope{}

	var err error
	if env.Timestamp, err = it.buf.Uint32(); err != nil {
		return nil, fmt.Errorf("envelope timestamp at body offset %d: %w", offset, err)
	}
	if env.Type, err = it.buf.Uint8(); err != nil {
		return nil, fmt.Errorf("envelope message type at body offset %d: %w", offset, err)
	}
	if env.Content, err = it.buf.Uint8(); err != nil {
		return nil, fmt.Errorf("envelope content type at body offset %d: %w", offset, err)
	}
	if env.Seat, err = it.buf.Uint8(); err != nil {
		return nil, fmt.Errorf("envelope seat at body offset %d: %w", offset, err)
	}
	if env.Params, err = it.buf.LengthPrefixed(4); err != nil {
		return nil, fmt.Errorf("envelope parameters at body offset %d: %w", offset, err)
	}
	return env, nil
}

// Messages returns a fresh iterator over the decoded messages of the
// replay. Each call starts a new traversal with its own seat→player map
// and per-player clock state.
func (r *Replay) Messages() *MessageIterator {
	return &MessageIterator{
		envelopes: r.Envelopes(),
		seats:     make(map[uint8]*Player),
	}
}

// MessageIterator lazily decodes envelopes into messages, threading the
// seat→player map and flattening command batches into the single output
// sequence in temporal order.
type MessageIterator struct {
	envelopes *EnvelopeIterator
	seats     map[uint8]*Player
	pending   []Message
	last      *Envelope
}

// Next returns the next decoded message, or io.EOF at exhaustion. Any
// decode error is fatal to the traversal.
func (it *MessageIterator) Next() (Message, error) {
	for len(it.pending) == 0 {
		env, err := it.envelopes.Next()
		if err != nil {
			return nil, err
		}
		it.last = env

		msgs, err := it.decodeEnvelope(env)
		if err != nil {
			return nil, err
		}
		it.pending = msgs
	}

	msg := it.pending[0]
	it.pending = it.pending[1:]
	return msg, nil
}

// LastEnvelope returns the raw envelope most recently consumed, for
// error diagnostics. Nil before the first Next call.
func (it *MessageIterator) LastEnvelope() *Envelope {
	return it.last
}

// Resolve maps a seat to a display snapshot: the tracked player when the
// seat has joined, the no-player sentinel for seat 255, and the bare
// seat number otherwise.
func (it *MessageIterator) Resolve(seat uint8) Origin {
	if seat == NoPlayerSeat {
		return Origin{Seat: NoPlayerSeat}
	}
	if p, ok := it.seats[seat]; ok {
		return originOf(p)
	}
	return unresolvedOrigin(seat)
}

// player returns the tracked player for a seat, or nil for seat 255 and
// seats that never joined. Callers must skip clock mutation on nil.
func (it *MessageIterator) player(seat uint8) *Player {
	if seat == NoPlayerSeat {
		return nil
	}
	return it.seats[seat]
}

func (it *MessageIterator) decodeEnvelope(env *Envelope) ([]Message, error) {
	ts := env.Timestamp

	switch MessageType(env.Type) {
	case MessageTypeNoMessage:
		return []Message{&NoOp{base{ts, it.Resolve(env.Seat)}}}, nil

	case MessageTypeMessage:
		return it.decodeContent(env)

	case MessageTypeNewClient:
		name, err := codec.DecodeASCII(env.Params)
		if err != nil {
			return nil, fmt.Errorf("client name at timestamp %d: %w", ts, err)
		}
		b := base{timestamp: ts, from: Origin{Seat: NoPlayerSeat}}
		if env.Seat != NoPlayerSeat {
			p := NewPlayer(env.Seat, name)
			it.seats[env.Seat] = p
			p.advance(ts)
			b.from = originOf(p)
			log.Debug().Uint8("seat", env.Seat).Str("name", name).Msg("client joined")
		}
		return []Message{&NewClient{b}}, nil

	case MessageTypeNewBannedClient:
		name, err := codec.DecodeASCII(env.Params)
		if err != nil {
			return nil, fmt.Errorf("banned client name at timestamp %d: %w", ts, err)
		}
		b := base{timestamp: ts, from: Origin{Seat: NoPlayerSeat}}
		if env.Seat != NoPlayerSeat {
			p := NewPlayer(env.Seat, name)
			p.advance(ts)
			b.from = originOf(p)
		}
		return []Message{&NewBannedClient{b}}, nil

	case MessageTypeDisconnected:
		from := it.Resolve(env.Seat)
		delete(it.seats, env.Seat)
		log.Debug().Uint8("seat", env.Seat).Msg("client disconnected")
		return []Message{&Disconnected{base{ts, from}}}, nil

	case MessageTypeError:
		return []Message{&ErrorEvent{base{ts, it.Resolve(env.Seat)}}}, nil

	default:
		return nil, fmt.Errorf("message type %d at timestamp %d: %w", env.Type, ts, codec.ErrUnknownTag)
	}
}

func (it *MessageIterator) decodeContent(env *Envelope) ([]Message, error) {
	ts := env.Timestamp

	player := it.player(env.Seat)
	if player != nil {
		player.advance(ts)
	}
	from := it.Resolve(env.Seat)
	b := base{timestamp: ts, from: from}
	buf := codec.NewBuffer(env.Params)

	switch ContentType(env.Content) {
	case ContentTypeChronalCommands:
		return decodeCommandBatch(ts, player, from, it.Resolve, buf)

	case ContentTypeSendText:
		recipient, err := buf.Uint8()
		if err != nil {
			return nil, fmt.Errorf("chat recipient at timestamp %d: %w", ts, err)
		}
		contents, err := codec.DecodeASCII(buf.Rest())
		if err != nil {
			return nil, fmt.Errorf("chat text at timestamp %d: %w", ts, err)
		}
		return []Message{&PrivateChat{
			base:      b,
			Recipient: it.Resolve(recipient),
			Contents:  trimChat(contents),
		}}, nil

	case ContentTypeBroadcastText:
		contents, err := codec.DecodeASCII(buf.Rest())
		if err != nil {
			return nil, fmt.Errorf("chat text at timestamp %d: %w", ts, err)
		}
		return []Message{&PublicChat{base: b, Contents: trimChat(contents)}}, nil

	case ContentTypeUnpauseEngine:
		return []Message{&UnpauseEngine{b}}, nil

	case ContentTypePauseEngine:
		return []Message{&PauseEngine{b}}, nil

	case ContentTypeSaveGame:
		return []Message{&SaveGame{b}}, nil

	case ContentTypeSurrender:
		return []Message{&PlayerSurrender{b}}, nil

	case ContentTypeGlobalTimeRate:
		rate, err := buf.Float32()
		if err != nil {
			return nil, fmt.Errorf("global time rate at timestamp %d: %w", ts, err)
		}
		return []Message{&GlobalTimeRateChange{base: b, Rate: rate}}, nil

	case ContentTypeSetConfiguration:
		key, err := buf.ASCIIString(1)
		if err != nil {
			return nil, fmt.Errorf("configuration key at timestamp %d: %w", ts, err)
		}
		value, err := codec.DecodeASCII(buf.Rest())
		if err != nil {
			return nil, fmt.Errorf("configuration value at timestamp %d: %w", ts, err)
		}
		return []Message{&SetConfigurationParameter{base: b, Key: key, Value: value}}, nil

	default:
		return nil, fmt.Errorf("message content type %d at timestamp %d: %w", env.Content, ts, codec.ErrUnknownTag)
	}
}
