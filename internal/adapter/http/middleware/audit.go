package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string // path parameter used as resource id
}

// auditRoutes maps "METHOD route-template" to the audited action.
var auditRoutes = map[string]auditRoute{
	"POST /api/v1/auth/login":            {domain.AuditActionLogin, "session", ""},
	"POST /api/v1/transfers":             {domain.AuditActionTransfer, "transfer", ""},
	"POST /api/v1/transfers/from":        {domain.AuditActionTransfer, "transfer", ""},
	"POST /api/v1/approvals":             {domain.AuditActionApprove, "allowance", ""},
	"POST /api/v1/roles/:role/grant":     {domain.AuditActionGrantRole, "role", "role"},
	"POST /api/v1/roles/:role/revoke":    {domain.AuditActionRevokeRole, "role", "role"},
	"POST /api/v1/roles/:role/renounce":  {domain.AuditActionRenounceRole, "role", "role"},
	"POST /api/v1/exclusions":            {domain.AuditActionExcludeFromFee, "fee_exclusion", ""},
	"DELETE /api/v1/exclusions/:address": {domain.AuditActionIncludeInFee, "fee_exclusion", "address"},
	"POST /api/v1/taxes":                 {domain.AuditActionAddTaxRecipient, "tax_entry", ""},
	"DELETE /api/v1/taxes/:id":           {domain.AuditActionRemoveTaxRecipient, "tax_entry", "id"},
	"PUT /api/v1/taxes/:id/percentage":   {domain.AuditActionSetTaxValue, "tax_entry", "id"},
	"PUT /api/v1/taxes/:id/recipient":    {domain.AuditActionSetTaxRecipient, "tax_entry", "id"},
}

// AuditLog creates an audit middleware that records successful
// state-changing calls after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resourceType,
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now(),
		}
		if caller, ok := Caller(c); ok {
			entry.Actor = &caller
		}
		if route.param != "" {
			entry.ResourceID = c.Param(route.param)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}
