package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful operator writes after the handler has run.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType, param := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var actorID *string
		if id, ok := ActorID(c); ok {
			actorID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param(param),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

// mapRouteToAction matches gin route patterns, so path parameters never
// affect the lookup. The third value names the parameter holding the
// resource id.
func mapRouteToAction(route, method string) (domain.AuditAction, string, string) {
	if method == http.MethodPut && route == "/api/v1/admin/settings/:gateway" {
		return domain.AuditActionUpdateSettings, "gateway_settings", "gateway"
	}
	if method != http.MethodPost {
		return "", "", ""
	}
	switch route {
	case "/api/v1/admin/orders/:id/refund":
		return domain.AuditActionRefund, "order", "id"
	case "/api/v1/admin/orders/:id/return":
		return domain.AuditActionReturn, "order", "id"
	case "/api/v1/admin/orders/:id/capture":
		return domain.AuditActionCapture, "order", "id"
	case "/api/v1/admin/orders/:id/cancel":
		return domain.AuditActionCancel, "order", "id"
	case "/api/v1/admin/cod/:id/attempts":
		return domain.AuditActionCODAttempt, "cod_tracking", "id"
	case "/api/v1/admin/cod/:id/collect":
		return domain.AuditActionCODCollect, "cod_tracking", "id"
	case "/api/v1/admin/cod/:id/return":
		return domain.AuditActionCODReturn, "cod_tracking", "id"
	}
	return "", "", ""
}
