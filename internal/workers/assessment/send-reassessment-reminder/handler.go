package sendreminder

import (
	"context"
	"math"
	"strings"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/common/validation"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "send-reassessment-reminder"

var priorityRank = map[string]int{
	"low":    0,
	"normal": 1,
	"high":   2,
}

type Handler struct {
	config   *Config
	deps     jobs.Deps
	contacts ContactLookup
	notifier Notifier
	now      func() time.Time
	newID    func() string
}

func NewHandler(config *Config, deps jobs.Deps, contacts ContactLookup, notifier Notifier) *Handler {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	return &Handler{
		config:   config,
		deps:     deps,
		contacts: contacts,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	jobs.Process(client, job, TaskType, h.config.Timeout, h.deps, h.Execute)
}

// Execute reminds the recipient when their assessment has expired. Each
// enabled channel with a usable address is tried once; the job fails only
// when every attempted channel failed.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	completed, err := scoring.ParseCompletedDate(input.CompletedDate)
	if err != nil {
		return nil, errors.NewParseError(err)
	}

	now := h.now().UTC()
	out := &Output{NotificationID: h.newID()}

	if !scoring.IsOutdatedAt(completed, now, scoring.AssessmentType(input.AssessmentType)) {
		out.Status = StatusSkipped
		return out, nil
	}

	contact, err := h.contacts.LookupContact(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if contact == nil || h.notifier == nil {
		out.Status = StatusDisabled
		return out, nil
	}

	daysSince := int(math.Floor(scoring.DaysBetween(completed, now)))

	var lastErr error
	var lastChannel string
	if h.config.EmailEnabled && validation.ValidateEmail(contact.Email) {
		id, err := h.notifier.SendEmail(ctx, contact.Email, emailSubject(input.AssessmentType), emailBody(input, daysSince))
		out.Channels = append(out.Channels, channelResult(ChannelEmail, id, err))
		if err != nil {
			lastErr, lastChannel = err, ChannelEmail
		}
	}
	if h.smsAllowed(input.Priority) && validation.ValidatePhone(contact.Phone) {
		id, err := h.notifier.SendSMS(ctx, contact.Phone, smsBody(input))
		out.Channels = append(out.Channels, channelResult(ChannelSMS, id, err))
		if err != nil {
			lastErr, lastChannel = err, ChannelSMS
		}
	}

	sent := 0
	for _, c := range out.Channels {
		if c.Status == StatusSent {
			sent++
		}
	}

	switch {
	case len(out.Channels) == 0:
		out.Status = StatusDisabled
	case sent == 0:
		return nil, errors.NewReminderSendFailedError(lastChannel, lastErr)
	case sent < len(out.Channels):
		out.Status = StatusFailed
		out.SentAt = now.Format(time.RFC3339)
	default:
		out.Status = StatusSent
		out.SentAt = now.Format(time.RFC3339)
	}

	h.deps.Logger.Info("reassessment reminder processed", map[string]interface{}{
		"notificationId": out.NotificationID,
		"recipientId":    input.RecipientID,
		"status":         out.Status,
		"channels":       len(out.Channels),
	})
	return out, nil
}

func (h *Handler) smsAllowed(priority string) bool {
	if !h.config.SMSEnabled {
		return false
	}
	threshold, ok := priorityRank[strings.ToLower(h.config.SMSPriorityThreshold)]
	if !ok {
		threshold = priorityRank["high"]
	}
	rank, ok := priorityRank[strings.ToLower(priority)]
	if !ok {
		rank = priorityRank["normal"]
	}
	return rank >= threshold
}

func channelResult(channel, messageID string, err error) ChannelResult {
	if err != nil {
		metrics.RemindersSent.WithLabelValues(channel, StatusFailed).Inc()
		return ChannelResult{Channel: channel, Status: StatusFailed, Error: err.Error()}
	}
	metrics.RemindersSent.WithLabelValues(channel, StatusSent).Inc()
	return ChannelResult{Channel: channel, Status: StatusSent, MessageID: messageID}
}
