package models

import "time"

// CounterRow is one (key, minute window) bucket. The composite primary key
// doubles as the upsert conflict target, and the count only ever grows.
type CounterRow struct {
	Key    string    `gorm:"column:key;primaryKey;size:512"`
	Window time.Time `gorm:"column:minute_window;primaryKey"`
	Count  int64     `gorm:"column:count;not null;default:0"`
}
