package counter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hits/models"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists buckets in SQLite through GORM, one physical table
// per partition (counters_p000 .. counters_p127). config.InitDB migrates
// the tables.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore wraps an already-opened GORM handle.
func NewSQLiteStore(db *gorm.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Increment(ctx context.Context, key string, ts time.Time) (int64, error) {
	return s.IncrementBy(ctx, key, ts, 1)
}

// IncrementBy upserts one bucket by delta. The conflict target is the
// composite primary key (key, minute_window), so the insert-or-increment is
// a single atomic statement and never needs a prior existence check.
func (s *SQLiteStore) IncrementBy(ctx context.Context, key string, ts time.Time, delta int64) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	window := Bucket(ts)
	row := models.CounterRow{Key: key, Window: window, Count: delta}
	err := s.db.WithContext(ctx).Table(TableFor(key)).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}, {Name: "minute_window"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("count + ?", delta),
		}),
	}).Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var count int64
	err = s.db.WithContext(ctx).Table(TableFor(key)).
		Where("key = ? AND minute_window = ?", key, window).
		Select("count").
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

func (s *SQLiteStore) SumRange(ctx context.Context, key string, from, to time.Time) (int64, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	var total int64
	// Stored windows are UTC; normalize the bounds so the datetime
	// comparison never spans offsets.
	err := s.db.WithContext(ctx).Table(TableFor(key)).
		Where("key = ? AND minute_window >= ? AND minute_window < ?", key, from.UTC(), to.UTC()).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return total, nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
