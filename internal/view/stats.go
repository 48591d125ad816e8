package view

import "github.com/notiboard/notiboard/internal/model"

// Stats holds per-status record counts over the whole cache. Total always
// equals the sum of the four status counts, since every record carries
// exactly one status.
type Stats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

// Collect counts records per status. Stats reflect the full cache and are
// unaffected by any active list filter.
func Collect(records []model.Notification) Stats {
	stats := Stats{Total: len(records)}

	for _, r := range records {
		switch r.Status {
		case model.StatusScheduled:
			stats.Scheduled++
		case model.StatusSent:
			stats.Sent++
		case model.StatusFailed:
			stats.Failed++
		case model.StatusCancelled:
			stats.Cancelled++
		}
	}

	return stats
}
