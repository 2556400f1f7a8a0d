package counter

import (
	"fmt"
	"hash/fnv"
	"time"
)

// PartitionCount is the number of physical partitions the counters table is
// split into. Fixed at deployment time; changing it requires a re-shard.
const PartitionCount = 128

// Bucket truncates t to the start of its UTC minute. The result is the
// minute_window column of the row a hit at t lands in; range boundaries on
// the read path follow the same truncation convention.
func Bucket(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// BucketNow returns the bucket containing the current instant.
func BucketNow() time.Time {
	return Bucket(time.Now())
}

// PartitionFor maps a key to its partition index. All rows for one key live
// in one partition, so a key's own write traffic never spills contention
// onto unrelated keys.
func PartitionFor(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % PartitionCount)
}

// PartitionTable returns the physical table name for partition i.
func PartitionTable(i int) string {
	return fmt.Sprintf("counters_p%03d", i)
}

// TableFor returns the physical table holding all rows for key.
func TableFor(key string) string {
	return PartitionTable(PartitionFor(key))
}
