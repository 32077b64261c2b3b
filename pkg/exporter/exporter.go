// Package exporter persists decoded replay events to MongoDB so
// replays can be queried and aggregated across games.
package exporter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/fsnow/achron-replay/pkg/replay"
)

// defaultBatchSize bounds a single InsertMany call.
const defaultBatchSize = 500

// Exporter manages a connection to MongoDB and writes decoded replay
// events into a collection.
type Exporter struct {
	client *mongo.Client
	ctx    context.Context
}

// New creates an Exporter connected to the given MongoDB URI.
func New(ctx context.Context, uri string, opts ...*options.ClientOptions) (*Exporter, error) {
	clientOpts := options.Client().ApplyURI(uri)
	for _, opt := range opts {
		clientOpts = options.MergeClientOptions(clientOpts, opt)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Exporter{
		client: client,
		ctx:    ctx,
	}, nil
}

// Close closes the connection to MongoDB.
func (e *Exporter) Close() error {
	if e.client != nil {
		return e.client.Disconnect(e.ctx)
	}
	return nil
}

// Client returns the underlying MongoDB client for advanced usage.
func (e *Exporter) Client() *mongo.Client {
	return e.client
}

// Stats summarizes one export run.
type Stats struct {
	// Exported is the number of event documents inserted.
	Exported int

	// Skipped counts no-op messages not worth persisting.
	Skipped int

	// Duration is the total wall time of the export.
	Duration time.Duration
}

// ExportReplay decodes every message of a replay and inserts one event
// document per non-NoOp message into database.collection, preceded by a
// header document describing the replay itself. Documents are inserted
// in temporal order, in bounded batches.
func (e *Exporter) ExportReplay(database, collection string, r *replay.Replay) (*Stats, error) {
	startTime := time.Now()
	coll := e.client.Database(database).Collection(collection)

	if _, err := coll.InsertOne(e.ctx, HeaderDocument(r)); err != nil {
		return nil, fmt.Errorf("failed to insert header document: %w", err)
	}

	stats := &Stats{}
	batch := make([]interface{}, 0, defaultBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := coll.InsertMany(e.ctx, batch); err != nil {
			return fmt.Errorf("failed to insert event batch: %w", err)
		}
		stats.Exported += len(batch)
		batch = batch[:0]
		return nil
	}

	it := r.Messages()
	for {
		msg, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if _, skip := msg.(*replay.NoOp); skip {
			stats.Skipped++
			continue
		}

		batch = append(batch, Document(msg))
		if len(batch) >= defaultBatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(startTime)
	log.Debug().
		Int("exported", stats.Exported).
		Int("skipped", stats.Skipped).
		Dur("duration", stats.Duration).
		Msg("replay export finished")
	return stats, nil
}
