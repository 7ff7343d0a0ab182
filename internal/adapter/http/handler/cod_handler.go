package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// CODHandler serves cash-on-delivery transitions.
type CODHandler struct {
	codSvc ports.CODService
}

// NewCODHandler creates a new CODHandler.
func NewCODHandler(codSvc ports.CODService) *CODHandler {
	return &CODHandler{codSvc: codSvc}
}

// Get handles GET /api/v1/admin/cod/:id.
func (h *CODHandler) Get(c *gin.Context) {
	tracking, err := h.codSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tracking)
}

// RecordAttempt handles POST /api/v1/admin/cod/:id/attempts.
func (h *CODHandler) RecordAttempt(c *gin.Context) {
	var req dto.CODAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tracking, err := h.codSvc.RecordDeliveryAttempt(c.Request.Context(), c.Param("id"), *req.Success, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tracking)
}

// Collect handles POST /api/v1/admin/cod/:id/collect.
func (h *CODHandler) Collect(c *gin.Context) {
	var req dto.CODCollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tracking, err := h.codSvc.MarkCollected(c.Request.Context(), c.Param("id"), req.CollectedBy, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tracking)
}

// Return handles POST /api/v1/admin/cod/:id/return.
func (h *CODHandler) Return(c *gin.Context) {
	tracking, err := h.codSvc.MarkReturned(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tracking)
}
