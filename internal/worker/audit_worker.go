package worker

import (
	"github.com/spec-kit/hr-service/internal/service"
)

// StartAuditWorker registers the admin log handlers on the event dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
