package exporter

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fsnow/achron-replay/pkg/replay"
)

// HeaderDocument builds the BSON document describing a replay file.
func HeaderDocument(r *replay.Replay) bson.M {
	seats := make([]int32, 0, len(r.OccupiedSeats()))
	for _, seat := range r.OccupiedSeats() {
		seats = append(seats, int32(seat))
	}
	return bson.M{
		"kind":     "replay-header",
		"version":  r.Header.Version[:],
		"map":      r.Header.MapPath,
		"seed":     int64(r.Header.RandomSeed),
		"seats":    seats,
		"seatMask": int32(r.Header.SeatMask),
	}
}

// Document builds the BSON event document for one decoded message.
func Document(msg replay.Message) bson.M {
	doc := bson.M{
		"timestamp": int64(msg.Timestamp()),
		"kind":      Kind(msg),
		"text":      msg.String(),
	}

	if from := msg.From(); from.Seat != replay.NoPlayerSeat {
		doc["seat"] = int32(from.Seat)
		if from.Known {
			doc["player"] = from.Name
		}
	}

	switch m := msg.(type) {
	case *replay.PublicChat:
		doc["contents"] = m.Contents
	case *replay.PrivateChat:
		doc["contents"] = m.Contents
		doc["recipient"] = int32(m.Recipient.Seat)
	case *replay.GlobalTimeRateChange:
		doc["rate"] = float64(m.Rate)
	case *replay.SetConfigurationParameter:
		doc["key"] = m.Key
		doc["value"] = m.Value
	case *replay.MoveTimePosition:
		doc["targetTime"] = int64(m.TargetTime)
	case *replay.FollowToTime:
		doc["targetTime"] = int64(m.TargetTime)
	case *replay.AssignUnitObjective:
		doc["unit"] = int32(m.Unit)
		doc["objective"] = int32(m.Objective)
		doc["queued"] = m.Queued
		doc["parameter"] = int64(m.Parameter)
	case *replay.AssignUnitObjectiveOnly:
		doc["unit"] = int32(m.Unit)
		doc["objective"] = int32(m.Objective)
		doc["queued"] = m.Queued
	case *replay.MarkUnit:
		doc["unit"] = int32(m.Unit)
	case *replay.UndoForUnit:
		doc["unit"] = int32(m.Unit)
		doc["startTime"] = m.StartTime
		doc["endTime"] = int64(m.EndTime)
	case *replay.SetBookmark:
		doc["bookmark"] = int32(m.Bookmark)
	case *replay.JumpToBookmark:
		doc["bookmark"] = int32(m.Bookmark)
	case *replay.CreateAlliance:
		doc["target"] = int32(m.Ally.Seat)
	case *replay.BreakAlliance:
		doc["target"] = int32(m.FormerAlly.Seat)
	case *replay.ShareVision:
		doc["target"] = int32(m.Target.Seat)
	case *replay.RevokeVision:
		doc["target"] = int32(m.Target.Seat)
	case *replay.ShareControl:
		doc["target"] = int32(m.Target.Seat)
	case *replay.RevokeControl:
		doc["target"] = int32(m.Target.Seat)
	case *replay.DeleteNextCommand:
		doc["unit"] = int32(m.Unit)
		doc["direction"] = int32(m.Direction)
	}

	return doc
}

// Kind returns a stable name for the message variant, used as the
// document discriminator.
func Kind(msg replay.Message) string {
	switch msg.(type) {
	case *replay.NoOp:
		return "no-op"
	case *replay.NewClient:
		return "new-client"
	case *replay.NewBannedClient:
		return "new-banned-client"
	case *replay.Disconnected:
		return "disconnected"
	case *replay.ErrorEvent:
		return "error"
	case *replay.PrivateChat:
		return "private-chat"
	case *replay.PublicChat:
		return "public-chat"
	case *replay.UnpauseEngine:
		return "unpause-engine"
	case *replay.PauseEngine:
		return "pause-engine"
	case *replay.SaveGame:
		return "save-game"
	case *replay.PlayerSurrender:
		return "surrender"
	case *replay.GlobalTimeRateChange:
		return "global-time-rate"
	case *replay.SetConfigurationParameter:
		return "set-configuration"
	case *replay.MoveTimePosition:
		return "move-time-position"
	case *replay.FollowToTime:
		return "follow-to-time"
	case *replay.AssignUnitObjective:
		return "assign-unit-objective"
	case *replay.AssignUnitObjectiveOnly:
		return "assign-unit-objective-only"
	case *replay.MarkUnit:
		return "mark-unit"
	case *replay.UndoForUnit:
		return "undo-for-unit"
	case *replay.SetBookmark:
		return "set-bookmark"
	case *replay.JumpToBookmark:
		return "jump-to-bookmark"
	case *replay.CreateAlliance:
		return "create-alliance"
	case *replay.BreakAlliance:
		return "break-alliance"
	case *replay.ShareVision:
		return "share-vision"
	case *replay.RevokeVision:
		return "revoke-vision"
	case *replay.ShareControl:
		return "share-control"
	case *replay.RevokeControl:
		return "revoke-control"
	case *replay.FastTime:
		return "fast-time"
	case *replay.SlowTime:
		return "slow-time"
	case *replay.StopTime:
		return "stop-time"
	case *replay.NormalTime:
		return "normal-time"
	case *replay.ReloadScripts:
		return "reload-scripts"
	case *replay.DeleteNextCommand:
		return "delete-next-command"
	default:
		return "unknown"
	}
}
