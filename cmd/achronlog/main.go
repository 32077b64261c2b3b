package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fsnow/achron-replay/pkg/replay"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <replay-file> [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDecodes an Achron replay file and prints its events in order.\n")
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  replay-file  Path to the replay (.rpl, optionally zstd-compressed)\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --debug      Enable decode trace logging\n")
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	for _, arg := range os.Args[2:] {
		if arg == "--debug" {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	rep, err := replay.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	it := rep.Messages()
	for {
		msg, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			reportDecodeError(it, err)
			os.Exit(1)
		}

		if _, skip := msg.(*replay.NoOp); skip {
			continue
		}
		fmt.Println(replay.FormatLine(msg))
	}
}

// reportDecodeError prints the full context of a failed decode: the
// envelope's timestamp, raw tag values with their symbolic names, the
// resolved player and the raw parameter bytes.
func reportDecodeError(it *replay.MessageIterator, err error) {
	fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)

	env := it.LastEnvelope()
	if env == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "  timestamp:    %d [%s]\n", env.Timestamp, replay.FormatTicks(int64(env.Timestamp)))
	fmt.Fprintf(os.Stderr, "  message type: %d (%s)\n", env.Type, replay.MessageType(env.Type))
	fmt.Fprintf(os.Stderr, "  content type: %d (%s)\n", env.Content, replay.ContentType(env.Content))
	fmt.Fprintf(os.Stderr, "  player:       %s\n", it.Resolve(env.Seat))
	fmt.Fprintf(os.Stderr, "  parameters:   % x\n", env.Params)
}
