// Package view derives presentation data from cache snapshots. Everything
// here is a pure function: no state, no side effects, recomputed on every
// cache change.
package view

import "github.com/notiboard/notiboard/internal/model"

// Filter selects which records a list view shows: "all" or a single status
// value.
type Filter string

// FilterAll shows the whole cache in its current order.
const FilterAll Filter = "all"

// Valid reports whether f is "all" or one of the four status values.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll,
		Filter(model.StatusScheduled),
		Filter(model.StatusSent),
		Filter(model.StatusFailed),
		Filter(model.StatusCancelled):
		return true
	}
	return false
}

// Apply returns the records the filter keeps, preserving relative order.
// FilterAll returns the snapshot as is (newest first, per the store's
// insertion policy).
func Apply(records []model.Notification, f Filter) []model.Notification {
	if f == FilterAll {
		return records
	}

	filtered := make([]model.Notification, 0, len(records))
	for _, r := range records {
		if r.Status == model.Status(f) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
