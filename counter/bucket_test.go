package counter

import (
	"testing"
	"time"
)

func TestBucketTruncatesToMinuteStart(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 30, 500, time.UTC)
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Bucket(ts); !got.Equal(want) {
		t.Errorf("Bucket(%v) = %v, want %v", ts, got, want)
	}
}

func TestBucketIdempotent(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 42, 0, 0, time.UTC)
	if got := Bucket(Bucket(ts)); !got.Equal(ts) {
		t.Errorf("Bucket(Bucket(t)) = %v, want %v", got, ts)
	}
}

func TestBucketConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2025, 1, 1, 12, 30, 45, 0, loc)
	got := Bucket(ts)
	if got.Location() != time.UTC {
		t.Errorf("Bucket location = %v, want UTC", got.Location())
	}
	want := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Bucket(%v) = %v, want %v", ts, got, want)
	}
}

func TestPartitionForStableAndBounded(t *testing.T) {
	keys := []string{"demo", "github.com/some/repo", "a", ""}
	for _, key := range keys {
		p := PartitionFor(key)
		if p < 0 || p >= PartitionCount {
			t.Errorf("PartitionFor(%q) = %d, out of [0, %d)", key, p, PartitionCount)
		}
		if again := PartitionFor(key); again != p {
			t.Errorf("PartitionFor(%q) not stable: %d then %d", key, p, again)
		}
	}
}

func TestTableForMatchesPartition(t *testing.T) {
	key := "demo"
	want := PartitionTable(PartitionFor(key))
	if got := TableFor(key); got != want {
		t.Errorf("TableFor(%q) = %q, want %q", key, got, want)
	}
	if got := PartitionTable(7); got != "counters_p007" {
		t.Errorf("PartitionTable(7) = %q, want counters_p007", got)
	}
}
