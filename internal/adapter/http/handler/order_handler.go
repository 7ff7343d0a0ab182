package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves operator actions on an order's payments.
type OrderHandler struct {
	refundSvc   ports.RefundService
	checkoutSvc ports.CheckoutService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(refundSvc ports.RefundService, checkoutSvc ports.CheckoutService) *OrderHandler {
	return &OrderHandler{refundSvc: refundSvc, checkoutSvc: checkoutSvc}
}

// Refund handles POST /api/v1/admin/orders/:id/refund.
func (h *OrderHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	refundReq := ports.RefundRequest{
		OrderID: c.Param("id"),
		Amount:  req.Amount,
		Reason:  req.Reason,
	}
	if req.Gateway != nil {
		gw, ok := domain.ParseGateway(*req.Gateway)
		if !ok {
			response.Error(c, apperror.ErrUnsupportedGateway(*req.Gateway))
			return
		}
		refundReq.GatewayOverride = &gw
	}

	result, err := h.refundSvc.ProcessRefund(c.Request.Context(), refundReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toRefundResponse(result))
}

// Return handles POST /api/v1/admin/orders/:id/return.
func (h *OrderHandler) Return(c *gin.Context) {
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.refundSvc.ProcessReturn(c.Request.Context(), ports.ReturnRequest{
		OrderID:    c.Param("id"),
		Reason:     req.Reason,
		AutoRefund: req.AutoRefund,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ReturnResponse{
		OrderID:           result.OrderID,
		FulfillmentStatus: string(result.FulfillmentStatus),
	}
	if result.Refund != nil {
		r := toRefundResponse(result.Refund)
		resp.Refund = &r
	}
	if result.RefundError != nil {
		resp.RefundError = result.RefundError.Error()
	}
	response.OK(c, resp)
}

// Capture handles POST /api/v1/admin/orders/:id/capture.
func (h *OrderHandler) Capture(c *gin.Context) {
	var req dto.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.checkoutSvc.CapturePayment(c.Request.Context(), c.Param("id"), req.IntentID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Cancel handles POST /api/v1/admin/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.checkoutSvc.CancelPayment(c.Request.Context(), c.Param("id"), req.IntentID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"order_id": c.Param("id"), "intent_id": req.IntentID, "cancelled": true})
}

func toRefundResponse(r *ports.RefundResult) dto.RefundResponse {
	resp := dto.RefundResponse{
		Success:      r.Success,
		Gateway:      string(r.Gateway),
		RefundID:     r.RefundID,
		Amount:       r.Amount,
		IsFullRefund: r.IsFullRefund,
	}
	for _, p := range r.Parts {
		resp.Parts = append(resp.Parts, dto.RefundPartResponse{
			Gateway:         string(p.Gateway),
			RefundID:        p.RefundID,
			Amount:          p.Amount,
			ChargePaymentID: p.ChargePaymentID,
		})
	}
	return resp
}
