package config

import (
	"hits/counter"
	"hits/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

// InitDB opens the SQLite database and migrates one counters table per
// partition. The partition count is a deployment-time constant; re-running
// the migration with the same count is a no-op.
func InitDB(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	for i := 0; i < counter.PartitionCount; i++ {
		if err := DB.Table(counter.PartitionTable(i)).AutoMigrate(&models.CounterRow{}); err != nil {
			return err
		}
	}
	return nil
}
