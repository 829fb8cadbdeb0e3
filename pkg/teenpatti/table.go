package teenpatti

import (
	"errors"
	"github.com/sirupsen/logrus"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ErrRankNotFound is an error when a hand cannot be ranked even by a full scan
var ErrRankNotFound = errors.New("hand not found in ranking table")

var (
	instance *RankingTable
	once     sync.Once
)

// fallbackScans counts rank lookups that missed the key map and fell back to
// a linear scan
var fallbackScans int64

// buildDuration is how long the table build took, in nanoseconds
var buildDuration int64

// RankingTable ranks a hand against every possible three-card hand.
// The table is immutable once built and safe for concurrent readers.
type RankingTable struct {
	ranks  map[strength]int
	sorted []Hand
	total  int
}

// Instance returns the process-wide ranking table, building it on first use
func Instance() *RankingTable {
	once.Do(func() {
		instance = newRankingTable()
	})

	return instance
}

func newRankingTable() *RankingTable {
	start := time.Now()

	type entry struct {
		hand     Hand
		strength strength
	}

	hands := AllHands()
	entries := make([]entry, len(hands))
	for i, hand := range hands {
		entries[i] = entry{hand: hand, strength: strengthOf(hand)}
	}

	// stable sort keeps deck order within equal-strength runs
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].strength.compare(entries[j].strength) > 0
	})

	ranks := make(map[strength]int)
	sorted := make([]Hand, len(entries))
	for i, e := range entries {
		sorted[i] = e.hand

		// equal hands share the rank of their first occurrence
		if _, ok := ranks[e.strength]; !ok {
			ranks[e.strength] = i + 1
		}
	}

	atomic.StoreInt64(&buildDuration, int64(time.Since(start)))
	logrus.WithField("duration", time.Since(start)).Debug("ranking table built")

	return &RankingTable{
		ranks:  ranks,
		sorted: sorted,
		total:  len(entries),
	}
}

// Rank returns the 1-based rank of the hand, where 1 is the strongest, along
// with the total number of possible hands
func (t *RankingTable) Rank(hand Hand) (int, int, error) {
	if rank, ok := t.ranks[strengthOf(hand)]; ok {
		return rank, t.total, nil
	}

	// the key map covers every hand the classifier can produce, so the scan
	// only runs if the classifier and the table disagree
	atomic.AddInt64(&fallbackScans, 1)
	logrus.WithField("hand", hand.String()).Warn("rank lookup fell back to linear scan")

	for i, other := range t.sorted {
		if Compare(hand, other) == 0 {
			return i + 1, t.total, nil
		}
	}

	return 0, 0, ErrRankNotFound
}

// FallbackScans returns the number of rank lookups that missed the key map
func FallbackScans() int64 {
	return atomic.LoadInt64(&fallbackScans)
}

// BuildDuration returns how long the table build took, or zero if the table
// has not been built
func BuildDuration() time.Duration {
	return time.Duration(atomic.LoadInt64(&buildDuration))
}

// PercentileOfBetter returns the percentage of hands that beat the given rank
func PercentileOfBetter(rank, total int) float64 {
	return float64(rank-1) / float64(total) * 100
}
