package dto

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/notiboard/notiboard/internal/model"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateRequest is the JSON body of a notification create request.
//
// The store never re-validates input, so everything it relies on (non-empty
// message, future scheduled_at, recipient matching the channel) is checked
// here.
type CreateRequest struct {
	Message     string        `json:"message" validate:"required"`
	ScheduledAt time.Time     `json:"scheduled_at" validate:"required"`
	Channel     model.Channel `json:"channel" validate:"required,oneof=email telegram"`
	Recipient   string        `json:"recipient" validate:"required"`
}

// ToInput validates the request against now and converts it to a store
// input.
func (r *CreateRequest) ToInput(now time.Time) (model.CreateInput, error) {
	if strings.TrimSpace(r.Message) == "" {
		return model.CreateInput{}, fmt.Errorf("message cannot be empty")
	}

	if !r.ScheduledAt.After(now) {
		return model.CreateInput{}, fmt.Errorf("scheduled_at must be in the future")
	}

	switch r.Channel {
	case model.ChannelEmail:
		if !emailRe.MatchString(r.Recipient) {
			return model.CreateInput{}, fmt.Errorf("invalid email recipient")
		}
	case model.ChannelTelegram:
		if !isValidTelegram(r.Recipient) {
			return model.CreateInput{}, fmt.Errorf("invalid telegram recipient")
		}
	default:
		return model.CreateInput{}, fmt.Errorf("unsupported channel %q", r.Channel)
	}

	return model.CreateInput{
		Message:     r.Message,
		ScheduledAt: r.ScheduledAt,
		Channel:     r.Channel,
		Recipient:   r.Recipient,
	}, nil
}

// isValidTelegram accepts an @username (5 to 32 characters) or a numeric
// chat id.
func isValidTelegram(to string) bool {
	if strings.HasPrefix(to, "@") {
		return len(to) >= 5 && len(to) <= 32
	}

	_, err := strconv.ParseInt(to, 10, 64)
	return err == nil
}
