// Package postgres persists pool events to Postgres.
package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schema = `
CREATE TABLE IF NOT EXISTS amm_events (
	id              BIGSERIAL PRIMARY KEY,
	kind            TEXT        NOT NULL,
	pool_id         TEXT        NOT NULL,
	actor           TEXT        NOT NULL,
	marker          NUMERIC(20) NOT NULL,
	event_time      TIMESTAMPTZ NOT NULL,
	reserve_a_after NUMERIC(20) NOT NULL,
	reserve_b_after NUMERIC(20) NOT NULL,
	payload         JSONB       NOT NULL,
	inserted_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS amm_events_pool_marker_idx ON amm_events (pool_id, marker);
`

const insertEvent = `
INSERT INTO amm_events (
	kind, pool_id, actor, marker, event_time, reserve_a_after, reserve_b_after, payload
) VALUES ($1, $2, $3, $4::text::numeric, to_timestamp($5), $6::text::numeric, $7::text::numeric, $8)
`

// Store provides Postgres persistence for pool events.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to dsn.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.New")
	}
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the events table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "create amm_events")
	}
	return nil
}

// Emit implements storage.Sink.
func (s *Store) Emit(ctx context.Context, ev amm.Event) error {
	return s.InsertEvents(ctx, []amm.Event{ev})
}

// InsertEvents writes events in a single batch.
func (s *Store) InsertEvents(ctx context.Context, events []amm.Event) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ev := range events {
		args, err := eventArgs(ev)
		if err != nil {
			return err
		}
		batch.Queue(insertEvent, args...)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range events {
		if _, err := br.Exec(); err != nil {
			return errors.Wrap(err, "insert amm_events")
		}
	}
	return nil
}

// eventArgs returns the insertEvent parameters for ev. Unsigned 64-bit values
// are passed as decimal text since they may not fit BIGINT.
func eventArgs(ev amm.Event) ([]any, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event")
	}
	return []any{
		string(ev.Kind),
		ev.Pool.Hex(),
		ev.Actor.Hex(),
		strconv.FormatUint(ev.Marker, 10),
		ev.Time,
		strconv.FormatUint(ev.ReserveAAfter, 10),
		strconv.FormatUint(ev.ReserveBAfter, 10),
		payload,
	}, nil
}
