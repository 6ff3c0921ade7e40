// Package alert is the out-of-band escalation hook for emergency triage
// results. The triage core only exposes the determination; actual dispatch
// (phone calls, paging) belongs to the collaborator behind the webhook.
package alert

import (
	"context"
	"time"

	httputils "sevai/sevai/utils/http"
)

// Dispatcher is invoked whenever a reply's triage level is "emergency".
type Dispatcher interface {
	Notify(ctx context.Context, userID string, symptoms []string, urgency string) error
}

// Webhook posts the escalation as JSON to a configured endpoint.
type Webhook struct {
	url string
}

func NewWebhook(url string) *Webhook {
	return &Webhook{url: url}
}

type webhookPayload struct {
	UserID    string    `json:"userId"`
	Symptoms  []string  `json:"symptoms"`
	Urgency   string    `json:"urgency"`
	Timestamp time.Time `json:"timestamp"`
}

func (w *Webhook) Notify(ctx context.Context, userID string, symptoms []string, urgency string) error {
	payload := webhookPayload{
		UserID:    userID,
		Symptoms:  symptoms,
		Urgency:   urgency,
		Timestamp: time.Now(),
	}
	return httputils.PostJSON(ctx, w.url, payload, nil)
}

// Noop discards escalations; used when no webhook is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string, []string, string) error { return nil }
