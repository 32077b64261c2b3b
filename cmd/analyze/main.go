package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fsnow/achron-replay/pkg/exporter"
	"github.com/fsnow/achron-replay/pkg/replay"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <replay-file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAnalyzes an Achron replay file and provides detailed statistics.\n")
		os.Exit(1)
	}

	filePath := os.Args[1]

	fmt.Printf("Analyzing replay: %s\n", filePath)
	fmt.Println(strings.Repeat("=", 80))

	rep, err := replay.LoadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	stats := &Statistics{
		kinds:   make(map[string]int),
		players: make(map[string]*PlayerStats),
	}

	messageNum := 0
	it := rep.Messages()
	for {
		msg, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding message %d: %v\n", messageNum, err)
			os.Exit(1)
		}

		messageNum++
		stats.analyze(msg)
	}

	stats.print(rep)
}

type Statistics struct {
	totalMessages int
	noOps         int
	chatLines     int
	commands      int

	kinds   map[string]int
	players map[string]*PlayerStats

	firstTimestamp uint32
	lastTimestamp  uint32
}

type PlayerStats struct {
	name         string
	messageCount int
	chatCount    int
	firstSeen    uint32
	lastSeen     uint32
}

func (s *Statistics) analyze(msg replay.Message) {
	s.totalMessages++

	if s.totalMessages == 1 {
		s.firstTimestamp = msg.Timestamp()
	}
	s.lastTimestamp = msg.Timestamp()

	s.kinds[exporter.Kind(msg)]++

	switch msg.(type) {
	case *replay.NoOp:
		s.noOps++
		return
	case *replay.PublicChat, *replay.PrivateChat:
		s.chatLines++
	case *replay.MoveTimePosition, *replay.FollowToTime,
		*replay.AssignUnitObjective, *replay.AssignUnitObjectiveOnly,
		*replay.MarkUnit, *replay.UndoForUnit,
		*replay.SetBookmark, *replay.JumpToBookmark,
		*replay.CreateAlliance, *replay.BreakAlliance,
		*replay.ShareVision, *replay.RevokeVision,
		*replay.ShareControl, *replay.RevokeControl,
		*replay.FastTime, *replay.SlowTime,
		*replay.StopTime, *replay.NormalTime,
		*replay.ReloadScripts, *replay.DeleteNextCommand:
		s.commands++
	}

	from := msg.From()
	if from.Seat == replay.NoPlayerSeat || !from.Known {
		return
	}

	player, exists := s.players[from.Name]
	if !exists {
		player = &PlayerStats{
			name:      from.Name,
			firstSeen: msg.Timestamp(),
		}
		s.players[from.Name] = player
	}
	player.messageCount++
	player.lastSeen = msg.Timestamp()
	switch msg.(type) {
	case *replay.PublicChat, *replay.PrivateChat:
		player.chatCount++
	}
}

func (s *Statistics) print(rep *replay.Replay) {
	fmt.Println("\n--- Replay ---")
	v := rep.Header.Version
	fmt.Printf("Version:         %d.%d.%d.%d\n", v[0], v[1], v[2], v[3])
	fmt.Printf("Map:             %s\n", rep.Header.MapPath)
	fmt.Printf("Random seed:     0x%08x\n", rep.Header.RandomSeed)
	fmt.Printf("Occupied seats:  %v\n", rep.OccupiedSeats())
	fmt.Printf("Duration:        %s\n", strings.TrimSpace(replay.FormatTicks(int64(s.lastTimestamp))))

	fmt.Println("\n--- Messages ---")
	fmt.Printf("Total messages:  %d\n", s.totalMessages)
	fmt.Printf("No-ops:          %d\n", s.noOps)
	fmt.Printf("Chat lines:      %d\n", s.chatLines)
	fmt.Printf("Unit commands:   %d\n", s.commands)

	fmt.Println("\n--- By kind ---")
	kinds := make([]string, 0, len(s.kinds))
	for kind := range s.kinds {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if s.kinds[kinds[i]] != s.kinds[kinds[j]] {
			return s.kinds[kinds[i]] > s.kinds[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	for _, kind := range kinds {
		fmt.Printf("  %-28s %d\n", kind, s.kinds[kind])
	}

	fmt.Println("\n--- By player ---")
	names := make([]string, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := s.players[name]
		fmt.Printf("  %-20s %5d messages, %3d chat, active %s - %s\n",
			p.name, p.messageCount, p.chatCount,
			strings.TrimSpace(replay.FormatTicks(int64(p.firstSeen))),
			strings.TrimSpace(replay.FormatTicks(int64(p.lastSeen))))
	}
}
