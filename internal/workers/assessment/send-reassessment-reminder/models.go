package sendreminder

import (
	"context"

	"assessment-workers/internal/models"
)

type Input struct {
	RecipientID    string `json:"recipientId"`
	PersonName     string `json:"personName,omitempty"`
	AssessmentType string `json:"assessmentType"`
	CompletedDate  string `json:"completedDate"`
	Priority       string `json:"priority,omitempty"`
}

type Output struct {
	NotificationID string          `json:"notificationId"`
	Status         string          `json:"status"`
	SentAt         string          `json:"sentAt,omitempty"`
	Channels       []ChannelResult `json:"channels,omitempty"`
}

type ChannelResult struct {
	Channel   string `json:"channel"`
	Status    string `json:"status"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
	StatusSkipped  = "skipped"

	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type ContactLookup interface {
	LookupContact(ctx context.Context, personID string) (*models.Contact, error)
}

// Notifier delivers a reminder and returns the provider message id.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
	SendSMS(ctx context.Context, phone, message string) (string, error)
}
