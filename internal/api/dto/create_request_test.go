package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notiboard/notiboard/internal/model"
)

func TestCreateRequest_ToInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{
			name: "valid email",
			req:  CreateRequest{Message: "hi", ScheduledAt: future, Channel: model.ChannelEmail, Recipient: "a@b.com"},
		},
		{
			name: "valid telegram username",
			req:  CreateRequest{Message: "hi", ScheduledAt: future, Channel: model.ChannelTelegram, Recipient: "@someone"},
		},
		{
			name: "valid telegram chat id",
			req:  CreateRequest{Message: "hi", ScheduledAt: future, Channel: model.ChannelTelegram, Recipient: "123456789"},
		},
		{
			name:    "blank message",
			req:     CreateRequest{Message: "   ", ScheduledAt: future, Channel: model.ChannelEmail, Recipient: "a@b.com"},
			wantErr: "message",
		},
		{
			name:    "scheduled in the past",
			req:     CreateRequest{Message: "hi", ScheduledAt: now.Add(-time.Minute), Channel: model.ChannelEmail, Recipient: "a@b.com"},
			wantErr: "future",
		},
		{
			name:    "scheduled exactly now",
			req:     CreateRequest{Message: "hi", ScheduledAt: now, Channel: model.ChannelEmail, Recipient: "a@b.com"},
			wantErr: "future",
		},
		{
			name:    "bad email",
			req:     CreateRequest{Message: "hi", ScheduledAt: future, Channel: model.ChannelEmail, Recipient: "not-an-email"},
			wantErr: "email",
		},
		{
			name:    "telegram username too short",
			req:     CreateRequest{Message: "hi", ScheduledAt: future, Channel: model.ChannelTelegram, Recipient: "@ab"},
			wantErr: "telegram",
		},
		{
			name:    "unsupported channel",
			req:     CreateRequest{Message: "hi", ScheduledAt: future, Channel: "sms", Recipient: "555"},
			wantErr: "channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := tt.req.ToInput(now)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Message, input.Message)
			assert.Equal(t, tt.req.Channel, input.Channel)
			assert.Equal(t, tt.req.Recipient, input.Recipient)
			assert.True(t, input.ScheduledAt.Equal(tt.req.ScheduledAt))
		})
	}
}
