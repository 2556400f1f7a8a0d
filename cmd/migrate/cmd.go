package migrate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmoiron/sqlx"

	// import postgres
	_ "github.com/lib/pq"

	"hits/counter"
)

// Command is the cobra command.
var Command = &cobra.Command{
	Use:   "migrate",
	Short: "Create the partitioned counters table required to run this service",
	RunE:  run,
}

type commandConfig struct {
	dsn string
}

var config = new(commandConfig)

func initFlags() {
	Command.Flags().StringVar(&config.dsn, "dsn", "", "Database connection string")
}

func init() {
	initFlags()
}

// generatePartitionSchema emits the counters table hash-partitioned by key.
// The modulus must match counter.PartitionCount; it is fixed at deployment
// time and changing it later means re-sharding.
func generatePartitionSchema() string {
	baseSchema := `
CREATE TABLE IF NOT EXISTS counters (
	key text NOT NULL,
	minute_window timestamptz NOT NULL,
	count bigint NOT NULL DEFAULT 0,
	CONSTRAINT counters_pkey PRIMARY KEY (key, minute_window)
) PARTITION BY HASH (key);
`

	var partitions strings.Builder

	for i := 0; i < counter.PartitionCount; i++ {
		partitions.WriteString(fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s PARTITION OF counters FOR VALUES WITH (MODULUS %d, REMAINDER %d);\n",
			counter.PartitionTable(i), counter.PartitionCount, i,
		))
	}

	return baseSchema + partitions.String()
}

func run(cmd *cobra.Command, _ []string) error {
	db, err := sqlx.Connect("postgres", config.dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error establishing database connection", err)
		os.Exit(1)
	}
	defer db.Close()

	schema := generatePartitionSchema()
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	fmt.Printf("created counters table with %d partitions\n", counter.PartitionCount)
	return nil
}
