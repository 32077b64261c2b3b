package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fsnow/achron-replay/pkg/exporter"
	"github.com/fsnow/achron-replay/pkg/replay"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <replay-file> <mongodb-uri> [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDecodes an Achron replay and exports its events to MongoDB.\n")
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  replay-file  Path to the replay (.rpl, optionally zstd-compressed)\n")
		fmt.Fprintf(os.Stderr, "  mongodb-uri  MongoDB connection URI (e.g., mongodb://localhost:27017)\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  --database D    Target database (default: achron)\n")
		fmt.Fprintf(os.Stderr, "  --collection C  Target collection (default: events)\n")
		fmt.Fprintf(os.Stderr, "  --dry-run       Decode and count events without connecting\n")
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s game.rpl mongodb://localhost:27017 --database achron\n", os.Args[0])
		os.Exit(1)
	}

	filePath := os.Args[1]
	mongoURI := os.Args[2]

	database := "achron"
	collection := "events"
	dryRun := false

	for i := 3; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--database":
			if i+1 < len(os.Args) {
				database = os.Args[i+1]
				i++
			}
		case "--collection":
			if i+1 < len(os.Args) {
				collection = os.Args[i+1]
				i++
			}
		case "--dry-run":
			dryRun = true
		}
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rep, err := replay.LoadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exporting from: %s\n", filePath)
	fmt.Printf("Map: %s\n", rep.Header.MapPath)

	if dryRun {
		fmt.Println("DRY RUN MODE - Events will be decoded but not sent")
		events := 0
		it := rep.Messages()
		for {
			msg, err := it.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
				os.Exit(1)
			}
			if _, skip := msg.(*replay.NoOp); skip {
				continue
			}
			events++
		}
		fmt.Printf("Would export %d events to %s.%s\n", events, database, collection)
		return
	}

	ctx := context.Background()
	exp, err := exporter.New(ctx, mongoURI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer exp.Close()
	fmt.Printf("Connected to MongoDB at %s\n", mongoURI)

	stats, err := exp.ExportReplay(database, collection, rep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("EXPORT SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Target:              %s.%s\n", database, collection)
	fmt.Printf("Exported events:     %d\n", stats.Exported)
	fmt.Printf("Skipped no-ops:      %d\n", stats.Skipped)
	fmt.Printf("Duration:            %v\n", stats.Duration)
	fmt.Println(strings.Repeat("=", 60))
}
