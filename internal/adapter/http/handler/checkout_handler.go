package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves storefront-facing payment initiation.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
	settings    ports.SettingsResolver
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService, settings ports.SettingsResolver) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, settings: settings}
}

// Initiate handles POST /api/v1/checkout/payments.
func (h *CheckoutHandler) Initiate(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	gw, ok := domain.ParseGateway(req.Gateway)
	if !ok {
		response.Error(c, apperror.ErrUnsupportedGateway(req.Gateway))
		return
	}
	paymentType := domain.PaymentTypeFull
	if req.PaymentType != "" {
		paymentType = domain.PaymentType(req.PaymentType)
	}

	result, err := h.checkoutSvc.InitiatePayment(c.Request.Context(), ports.CheckoutRequest{
		OrderID:       req.OrderID,
		Gateway:       gw,
		PaymentType:   paymentType,
		Amount:        req.Amount,
		ManualCapture: req.ManualCapture,
		SuccessURL:    req.SuccessURL,
		FailURL:       req.FailURL,
		CancelURL:     req.CancelURL,
		IPNURL:        req.IPNURL,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// PaymentMethods handles GET /api/v1/checkout/payment-methods.
func (h *CheckoutHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.settings.GetActivePaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.PaymentMethodsResponse{Methods: make([]dto.PaymentMethod, 0, len(methods))}
	for _, m := range methods {
		resp.Methods = append(resp.Methods, dto.PaymentMethod{Gateway: string(m.Gateway), Label: m.Label})
	}
	response.OK(c, resp)
}
