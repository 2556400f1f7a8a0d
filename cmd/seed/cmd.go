package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"hits/batcher"
	"hits/counter"
)

// Command is the cobra command.
var Command = &cobra.Command{
	Use:   "seed",
	Short: "Insert synthetic hit traffic for a key",
	RunE:  run,
}

type commandConfig struct {
	dsn  string
	key  string
	hits int
	days int
}

var config = new(commandConfig)

func initFlags() {
	Command.Flags().StringVar(&config.dsn, "dsn", "", "Database connection string")
	Command.Flags().StringVar(&config.key, "key", "demo", "Counter key to seed")
	Command.Flags().IntVar(&config.hits, "hits", 1000, "Number of hits to insert")
	Command.Flags().IntVar(&config.days, "days", 30, "Spread hits over this many past days")
}

func init() {
	initFlags()
}

func run(cmd *cobra.Command, _ []string) error {
	store, err := counter.NewPostgresStore(config.dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	// Batch through the count batcher so seeding exercises the same bulk
	// upsert path the pixel route uses.
	b := batcher.NewCountBatcher(store, 256)
	now := time.Now()
	spread := config.days * 24 * 60
	if spread < 1 {
		spread = 1
	}
	for i := 0; i < config.hits; i++ {
		ts := now.Add(-time.Duration(rand.Intn(spread)) * time.Minute)
		b.Enqueue(batcher.HitEvent{Key: config.key, Timestamp: ts})
	}
	b.Flush()

	agg := counter.NewAggregator(store)
	stats, err := agg.Aggregate(context.Background(), config.key, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("seeded %q: total=%d today=%d this_month=%d this_year=%d\n",
		config.key, stats.Total, stats.Today, stats.ThisMonth, stats.ThisYear)
	return nil
}
