package counter

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore persists buckets in a counters table hash-partitioned by
// key into PartitionCount partitions. `hitsctl migrate` creates the schema.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to Postgres and pings it.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &PostgresStore{db: db}, nil
}

const upsertBucketSQL = `
INSERT INTO counters (key, minute_window, count)
VALUES ($1, $2, $3)
ON CONFLICT (key, minute_window)
DO UPDATE SET count = counters.count + EXCLUDED.count
RETURNING count`

const sumRangeSQL = `
SELECT COALESCE(SUM(count), 0)
FROM counters
WHERE key = $1 AND minute_window >= $2 AND minute_window < $3`

func (s *PostgresStore) Increment(ctx context.Context, key string, ts time.Time) (int64, error) {
	return s.IncrementBy(ctx, key, ts, 1)
}

// IncrementBy upserts one bucket by delta in a single statement, so the
// row-level lock Postgres takes on the conflict target serializes
// same-bucket writers without an existence-check race.
func (s *PostgresStore) IncrementBy(ctx context.Context, key string, ts time.Time, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var count int64
	if err := s.db.GetContext(ctx, &count, upsertBucketSQL, key, Bucket(ts), delta); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

func (s *PostgresStore) SumRange(ctx context.Context, key string, from, to time.Time) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var total int64
	if err := s.db.GetContext(ctx, &total, sumRangeSQL, key, from.UTC(), to.UTC()); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return total, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
