package authority

import (
	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs pages through the mutation journal, newest first.
func (a *API) ListAuditLogs(c *gin.Context) {
	pageNo, limit := pageParams(c)
	logs, total, err := a.store.ListAuditLogs(c.Request.Context(), pageNo, limit)
	if err != nil {
		storeError(c, err, "audit logs")
		return
	}
	if logs == nil {
		logs = []models.AuditEntry{}
	}
	ok(c, models.AuditList{Logs: logs, Total: total})
}
