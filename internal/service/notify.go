package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/dispatch"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"go.uber.org/zap"
)

// EventNotifier publishes dispatch notifications on the event stream.
type EventNotifier struct {
	eventWriter *events.EventProducer
}

var _ dispatch.Notifier = (*EventNotifier)(nil)

func NewEventNotifier(eventWriter *events.EventProducer) *EventNotifier {
	return &EventNotifier{eventWriter: eventWriter}
}

func (n *EventNotifier) Success(title, text string) {
	n.write("success", title, text)
}

func (n *EventNotifier) Error(title, text string) {
	n.write("error", title, text)
}

func (n *EventNotifier) write(severity, title, text string) {
	data, err := json.Marshal(events.NotificationEvent{
		Severity: severity,
		Title:    title,
		Text:     text,
	})
	if err != nil {
		return
	}
	if err := n.eventWriter.Write(context.Background(), events.NotificationMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("notifier").Errorw("failed to write notification", "error", err, "severity", severity)
	}
}

// EventInvalidator broadcasts stale cache tags after state-changing
// actions so list consumers refetch instead of patching locally.
type EventInvalidator struct {
	eventWriter *events.EventProducer
}

var _ dispatch.Invalidator = (*EventInvalidator)(nil)

func NewEventInvalidator(eventWriter *events.EventProducer) *EventInvalidator {
	return &EventInvalidator{eventWriter: eventWriter}
}

func (i *EventInvalidator) Invalidate(tags ...string) {
	data, err := json.Marshal(events.InvalidationEvent{Tags: tags})
	if err != nil {
		return
	}
	if err := i.eventWriter.Write(context.Background(), events.InvalidationMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("invalidator").Errorw("failed to write invalidation", "error", err, "tags", tags)
	}
}
