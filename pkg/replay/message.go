package replay

import (
	"fmt"
	"strings"
)

// MessageType is the network-level tag of an envelope.
type MessageType uint8

const (
	MessageTypeNoMessage MessageType = iota
	MessageTypeMessage
	MessageTypeNewClient
	MessageTypeNewBannedClient
	MessageTypeDisconnected
	MessageTypeError
)

// String returns the symbolic name of the message type for diagnostics.
func (t MessageType) String() string {
	switch t {
	case MessageTypeNoMessage:
		return "NoMessage"
	case MessageTypeMessage:
		return "Message"
	case MessageTypeNewClient:
		return "NewClient"
	case MessageTypeNewBannedClient:
		return "NewBannedClient"
	case MessageTypeDisconnected:
		return "Disconnected"
	case MessageTypeError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// ContentType is the payload-level tag, meaningful only when the
// message type is Message.
type ContentType uint8

const (
	ContentTypeSetConfiguration ContentType = 7
	ContentTypeChronalCommands  ContentType = 16
	ContentTypeSendText         ContentType = 32
	ContentTypeBroadcastText    ContentType = 33
	ContentTypeUnpauseEngine    ContentType = 37
	ContentTypePauseEngine      ContentType = 38
	ContentTypeSaveGame         ContentType = 40
	ContentTypeSurrender        ContentType = 41
	ContentTypeGlobalTimeRate   ContentType = 71
)

// String returns the symbolic name of the content type for diagnostics.
func (t ContentType) String() string {
	switch t {
	case ContentTypeSetConfiguration:
		return "SetConfigurationParameter"
	case ContentTypeChronalCommands:
		return "ChronalCommands"
	case ContentTypeSendText:
		return "SendText"
	case ContentTypeBroadcastText:
		return "BroadcastText"
	case ContentTypeUnpauseEngine:
		return "UnpauseEngine"
	case ContentTypePauseEngine:
		return "PauseEngine"
	case ContentTypeSaveGame:
		return "SaveGame"
	case ContentTypeSurrender:
		return "Surrender"
	case ContentTypeGlobalTimeRate:
		return "GlobalTimeRateChange"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Message is one decoded replay event. Implementations are immutable
// records; the player attribution is a snapshot taken at decode time.
type Message interface {
	// Timestamp returns the wall tick count of the envelope the
	// message was decoded from.
	Timestamp() uint32

	// From returns the player snapshot the message is attributed to.
	From() Origin

	fmt.Stringer
}

type base struct {
	timestamp uint32
	from      Origin
}

func (b base) Timestamp() uint32 { return b.timestamp }
func (b base) From() Origin      { return b.from }

// NoOp marks a tick on which nothing happened.
type NoOp struct{ base }

func (m *NoOp) String() string { return "Nothing happens" }

// NewClient records a client joining a seat.
type NewClient struct{ base }

func (m *NewClient) String() string { return fmt.Sprintf("%s joined", m.from) }

// NewBannedClient records a rejected join attempt by a banned client.
type NewBannedClient struct{ base }

func (m *NewBannedClient) String() string {
	return fmt.Sprintf("%s attempts to join, but was previously banned", m.from)
}

// Disconnected records a client leaving its seat.
type Disconnected struct{ base }

func (m *Disconnected) String() string { return fmt.Sprintf("%s disconnects", m.from) }

// ErrorEvent records a network-level error entry in the replay.
type ErrorEvent struct{ base }

func (m *ErrorEvent) String() string { return "An error occurred" }

// PrivateChat is a whispered chat line addressed to one seat.
type PrivateChat struct {
	base
	Recipient Origin
	Contents  string
}

func (m *PrivateChat) String() string {
	return fmt.Sprintf("%s whispers to %s: %s", m.from, m.Recipient, m.Contents)
}

// PublicChat is a chat line broadcast to all seats.
type PublicChat struct {
	base
	Contents string
}

func (m *PublicChat) String() string {
	return fmt.Sprintf("%s says: %s", m.from, m.Contents)
}

// UnpauseEngine records the engine being unpaused.
type UnpauseEngine struct{ base }

func (m *UnpauseEngine) String() string { return fmt.Sprintf("%s unpauses the game", m.from) }

// PauseEngine records the engine being paused.
type PauseEngine struct{ base }

func (m *PauseEngine) String() string { return fmt.Sprintf("%s pauses the game", m.from) }

// SaveGame records a game save.
type SaveGame struct{ base }

func (m *SaveGame) String() string { return fmt.Sprintf("%s saves the game", m.from) }

// PlayerSurrender records a surrender.
type PlayerSurrender struct{ base }

func (m *PlayerSurrender) String() string { return fmt.Sprintf("%s surrenders", m.from) }

// GlobalTimeRateChange records a change of the engine-wide time rate.
type GlobalTimeRateChange struct {
	base
	Rate float32
}

func (m *GlobalTimeRateChange) String() string {
	return fmt.Sprintf("%s sets the global time rate to %g", m.from, m.Rate)
}

// SetConfigurationParameter records a session configuration change.
type SetConfigurationParameter struct {
	base
	Key   string
	Value string
}

func (m *SetConfigurationParameter) String() string {
	return fmt.Sprintf("%s sets configuration %q to %q", m.from, m.Key, m.Value)
}

func trimChat(s string) string {
	return strings.TrimSpace(s)
}
