package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/events"
)

// recorder publishes record change events after successful writes.
type recorder struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

func newRecorder(dispatcher events.Dispatcher, logger *zap.Logger) recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return recorder{dispatcher: dispatcher, logger: logger}
}

func (r recorder) created(ctx context.Context, resource, id, repr string) {
	r.publish(ctx, events.NewRecordEvent(events.EventRecordCreated, resource, id, repr, nil))
}

func (r recorder) updated(ctx context.Context, resource, id, repr string, fields []string) {
	r.publish(ctx, events.NewRecordEvent(events.EventRecordUpdated, resource, id, repr,
		events.ChangedFieldsPayload{Fields: fields}))
}

func (r recorder) deleted(ctx context.Context, resource, id, repr string) {
	r.publish(ctx, events.NewRecordEvent(events.EventRecordDeleted, resource, id, repr, nil))
}

func (r recorder) publish(ctx context.Context, event events.Event) {
	if r.dispatcher == nil {
		return
	}
	if err := r.dispatcher.Publish(ctx, event); err != nil {
		r.logger.Warn("record event handlers failed",
			zap.String("resource", event.Resource),
			zap.String("object_id", event.ObjectID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

// fieldDiff collects the names of changed fields for the admin log.
type fieldDiff []string

func (d *fieldDiff) check(name string, changed bool) {
	if changed {
		*d = append(*d, name)
	}
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
