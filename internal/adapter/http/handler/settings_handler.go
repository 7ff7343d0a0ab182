package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves gateway credential management.
type SettingsHandler struct {
	settings ports.SettingsResolver
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings ports.SettingsResolver) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Update handles PUT /api/v1/admin/settings/:gateway.
// Values are never echoed back; they may be secrets.
func (h *SettingsHandler) Update(c *gin.Context) {
	raw := c.Param("gateway")
	gw, ok := domain.ParseGateway(raw)
	if !ok {
		response.Error(c, apperror.ErrUnsupportedGateway(raw))
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.settings.UpdateGatewaySettings(c.Request.Context(), gw, req.Settings); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SettingsUpdatedResponse{Gateway: string(gw), Updated: len(req.Settings)})
}
