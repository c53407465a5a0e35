package tracking

import "sort"

// Chronological orders events by ascending timestamp when every event has
// one. If any timestamp is missing the input order is kept untouched.
// The input slice is never modified.
func Chronological(events []*Event) []*Event {
	ordered := make([]*Event, len(events))
	copy(ordered, events)

	for _, e := range ordered {
		if _, ok := e.Timestamp(); !ok {
			return ordered
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ti, _ := ordered[i].Timestamp()
		tj, _ := ordered[j].Timestamp()
		return ti.Before(tj)
	})
	return ordered
}
