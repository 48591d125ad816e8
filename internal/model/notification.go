package model

import "time"

// Status is the lifecycle state of a notification on the remote service.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed || s == StatusCancelled
}

// Channel is the delivery medium of a notification.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelTelegram Channel = "telegram"
)

// Notification represents a single notification record as the remote
// service reports it.
//
// ID is assigned by the remote service and treated as an opaque string
// here; it is empty until a create call resolves.
type Notification struct {
	ID          string    `json:"id"`           // remote-assigned identifier
	Message     string    `json:"message"`      // content of the notification
	ScheduledAt time.Time `json:"scheduled_at"` // when the remote should deliver it
	Channel     Channel   `json:"channel"`      // delivery medium, e.g. "email", "telegram"
	Recipient   string    `json:"recipient"`    // recipient identifier, such as email or chat ID
	Status      Status    `json:"status"`       // current lifecycle state
	CreatedAt   time.Time `json:"created_at"`   // timestamp when the notification was created
	UpdatedAt   time.Time `json:"updated_at"`   // timestamp when the notification was last updated
}

// CreateInput carries the fields of a notification create request.
// It is validated at the API boundary before it reaches the store.
type CreateInput struct {
	Message     string    `json:"message"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Channel     Channel   `json:"channel"`
	Recipient   string    `json:"recipient"`
}
