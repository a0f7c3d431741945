package series

import (
	"github.com/tanishpoddar/GreenVision/internal/ndvi"
)

// Entry is one analyzed image: its display label, source path and NDVI
// statistics.
type Entry struct {
	Label string
	Path  string
	Stats ndvi.Stats
}

// TimeSeries accumulates analyzed images in the order they were supplied.
// The input order is the temporal order; entries are never re-sorted or
// deduplicated.
type TimeSeries struct {
	entries []Entry
}

func New() *TimeSeries {
	return &TimeSeries{}
}

// Append adds an entry at the end of the series.
func (ts *TimeSeries) Append(entry Entry) {
	ts.entries = append(ts.entries, entry)
}

// Entries returns the accumulated entries in input order.
func (ts *TimeSeries) Entries() []Entry {
	return ts.entries
}

func (ts *TimeSeries) Len() int {
	return len(ts.entries)
}

// Labels returns the entry labels in input order.
func (ts *TimeSeries) Labels() []string {
	labels := make([]string, 0, len(ts.entries))
	for _, entry := range ts.entries {
		labels = append(labels, entry.Label)
	}
	return labels
}

// MeanDeltas returns the change in mean NDVI between each entry and its
// predecessor. The first element is always nil, and so is any delta whose
// endpoints are missing their mean.
func (ts *TimeSeries) MeanDeltas() []*float64 {
	deltas := make([]*float64, len(ts.entries))
	for i := 1; i < len(ts.entries); i++ {
		previous := ts.entries[i-1].Stats.Mean
		current := ts.entries[i].Stats.Mean
		if previous == nil || current == nil {
			continue
		}
		delta := *current - *previous
		deltas[i] = &delta
	}
	return deltas
}
