package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ChangePublisher forwards admin log entries to an external stream.
type ChangePublisher interface {
	PublishChange(ctx context.Context, entry domain.AdminLogEntry) error
}

// AuditService turns record events into admin log entries.
type AuditService struct {
	dispatcher events.Dispatcher
	entries    repository.AdminLogRepository
	publisher  ChangePublisher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// AuditDependencies bundles collaborators for the audit service.
type AuditDependencies struct {
	Dispatcher   events.Dispatcher
	AdminLogRepo repository.AdminLogRepository
	Publisher    ChangePublisher
	Metrics      *observability.Metrics
	Logger       *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(deps AuditDependencies) *AuditService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: deps.Dispatcher,
		entries:    deps.AdminLogRepo,
		publisher:  deps.Publisher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// AdminLogFilters define listing parameters.
type AdminLogFilters = repository.AdminLogFilter

// RegisterHandlers subscribes to record events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventRecordCreated, a.handleRecordEvent)
	a.dispatcher.Subscribe(events.EventRecordUpdated, a.handleRecordEvent)
	a.dispatcher.Subscribe(events.EventRecordDeleted, a.handleRecordEvent)
}

// ListEntries returns admin log entries, newest first.
func (a *AuditService) ListEntries(ctx context.Context, filters AdminLogFilters) ([]domain.AdminLogEntry, error) {
	entries, err := a.entries.List(ctx, filters)
	return entries, apperrors.MapError(err)
}

func (a *AuditService) handleRecordEvent(ctx context.Context, event events.Event) error {
	entry := domain.AdminLogEntry{
		ActionTime:    event.Timestamp,
		Resource:      event.Resource,
		ObjectID:      event.ObjectID,
		ObjectRepr:    truncateRepr(event.Repr),
		Action:        actionFor(event.Type),
		ChangeMessage: changeMessage(event),
	}
	if err := a.entries.Create(ctx, &entry); err != nil {
		a.logger.Error("failed to write admin log entry",
			zap.String("resource", event.Resource),
			zap.String("object_id", event.ObjectID),
			zap.Error(err))
		return err
	}
	a.metrics.RecordChange(entry.Resource, string(entry.Action))

	if a.publisher != nil {
		if err := a.publisher.PublishChange(ctx, entry); err != nil {
			a.logger.Warn("failed to stream admin log entry", zap.String("entry_id", entry.ID), zap.Error(err))
		}
	}
	a.logger.Debug("admin change recorded",
		zap.String("resource", entry.Resource),
		zap.String("object_id", entry.ObjectID),
		zap.String("action", string(entry.Action)))
	return nil
}

func actionFor(eventType events.EventType) domain.AdminAction {
	switch eventType {
	case events.EventRecordCreated:
		return domain.AdminActionAddition
	case events.EventRecordDeleted:
		return domain.AdminActionDeletion
	default:
		return domain.AdminActionChange
	}
}

func changeMessage(event events.Event) string {
	switch event.Type {
	case events.EventRecordCreated:
		return "Added."
	case events.EventRecordDeleted:
		return "Deleted."
	}
	payload, ok := event.Payload.(events.ChangedFieldsPayload)
	if !ok || len(payload.Fields) == 0 {
		return "No fields changed."
	}
	return "Changed " + joinFields(payload.Fields) + "."
}

// joinFields renders "a", "a and b" or "a, b and c".
func joinFields(fields []string) string {
	if len(fields) == 1 {
		return fields[0]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}

// object_repr is stored as VARCHAR(200).
func truncateRepr(repr string) string {
	runes := []rune(repr)
	if len(runes) <= 200 {
		return repr
	}
	return string(runes[:200])
}
