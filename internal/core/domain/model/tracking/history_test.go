package tracking_test

import (
	"testing"
	"time"

	"logiflow/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restored(t *testing.T, status string, ts *time.Time) *tracking.Event {
	t.Helper()
	e, err := tracking.RestoreEvent("LGF-ABCDEFGH", status, nil, nil, ts)
	require.NoError(t, err)
	return e
}

func statuses(events []*tracking.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Status())
	}
	return out
}

func TestChronological(t *testing.T) {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	at := func(h int) *time.Time {
		ts := base.Add(time.Duration(h) * time.Hour)
		return &ts
	}

	t.Run("sorted ascending when all timestamps present", func(t *testing.T) {
		events := []*tracking.Event{
			restored(t, "delivered", at(30)),
			restored(t, "created", at(0)),
			restored(t, "in_transit", at(5)),
		}

		got := tracking.Chronological(events)

		assert.Equal(t, []string{"created", "in_transit", "delivered"}, statuses(got))
		assert.Equal(t, []string{"delivered", "created", "in_transit"}, statuses(events), "input untouched")
	})

	t.Run("equal timestamps keep input order", func(t *testing.T) {
		events := []*tracking.Event{
			restored(t, "b", at(1)),
			restored(t, "a", at(1)),
			restored(t, "c", at(0)),
		}

		assert.Equal(t, []string{"c", "b", "a"}, statuses(tracking.Chronological(events)))
	})

	t.Run("original order when a timestamp is missing", func(t *testing.T) {
		events := []*tracking.Event{
			restored(t, "delivered", at(30)),
			restored(t, "created", nil),
			restored(t, "in_transit", at(5)),
		}

		assert.Equal(t, []string{"delivered", "created", "in_transit"}, statuses(tracking.Chronological(events)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, tracking.Chronological(nil))
	})
}
