package indexer

import (
	"context"
	"log/slog"
	"time"
)

// LedgerLogs is one ledger's worth of contract console output.
type LedgerLogs struct {
	Ledger uint64
	TxHash string
	Lines  []string
}

// LogSource pulls contract logs from a node, one ledger batch at a time.
// FetchLogs returns the batches after the given cursor; an empty slice means
// the indexer has caught up.
type LogSource interface {
	FetchLogs(ctx context.Context, afterLedger uint64) ([]LedgerLogs, error)
}

// Ingester tails a LogSource into the store.
type Ingester struct {
	source  LogSource
	store   *Store
	metrics *Metrics
	log     *slog.Logger
	poll    time.Duration
}

// NewIngester wires the ingestion loop. A zero poll interval defaults to 5s.
func NewIngester(source LogSource, store *Store, metrics *Metrics, log *slog.Logger, poll time.Duration) *Ingester {
	if poll <= 0 {
		poll = 5 * time.Second
	}
	return &Ingester{source: source, store: store, metrics: metrics, log: log, poll: poll}
}

// Run tails the source until the context is cancelled. Fetch errors are
// logged and retried on the next tick; the cursor only advances past ledgers
// whose every event was persisted.
func (in *Ingester) Run(ctx context.Context) error {
	ticker := time.NewTicker(in.poll)
	defer ticker.Stop()
	for {
		if err := in.ingestOnce(ctx); err != nil {
			in.log.Error("ingest pass failed", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (in *Ingester) ingestOnce(ctx context.Context) error {
	cursor, err := in.store.Cursor()
	if err != nil {
		return err
	}
	batches, err := in.source.FetchLogs(ctx, cursor)
	if err != nil {
		return err
	}
	for _, batch := range batches {
		for _, line := range batch.Lines {
			ev, err := ParseEventLine(batch.Ledger, batch.TxHash, line)
			if err != nil {
				in.metrics.ParseFailures.Inc()
				in.log.Debug("skipping non-event line", "ledger", batch.Ledger, "err", err)
				continue
			}
			inserted, err := in.store.InsertEvent(ev)
			if err != nil {
				return err
			}
			if inserted {
				in.metrics.EventsIngested.WithLabelValues(ev.EventType).Inc()
			} else {
				in.metrics.EventsSkipped.Inc()
			}
		}
		if err := in.store.SetCursor(batch.Ledger); err != nil {
			return err
		}
		in.metrics.CursorLedger.Set(float64(batch.Ledger))
	}
	return nil
}
