package handler

import (
	"io"
	"net/http"

	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderCardSignature carries the card provider's webhook signature.
const HeaderCardSignature = "Stripe-Signature"

// WebhookHandler receives provider notifications.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, log: log}
}

// CardWebhook handles POST /api/v1/webhooks/card.
// The signature covers the raw body, so it is read before any decoding.
func (h *WebhookHandler) CardWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	result, err := h.webhookSvc.HandleCardWebhook(c.Request.Context(), payload, c.GetHeader(HeaderCardSignature))
	if err != nil {
		h.log.Warn().Err(err).Str("provider", "card").Msg("webhook not absorbed")
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toWebhookAck(result))
}

// RegionalIPN handles POST /api/v1/webhooks/regional.
func (h *WebhookHandler) RegionalIPN(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.Error(c, apperror.Validation("malformed form body"))
		return
	}
	form := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		form[key] = c.Request.PostForm.Get(key)
	}

	result, err := h.webhookSvc.HandleRegionalIPN(c.Request.Context(), form)
	if err != nil {
		h.log.Warn().Err(err).Str("provider", "regional").Str("tran_id", form["tran_id"]).Msg("ipn not absorbed")
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toWebhookAck(result))
}

func toWebhookAck(result *ports.WebhookResult) dto.WebhookAck {
	ack := dto.WebhookAck{
		Received:  true,
		EventID:   result.EventID,
		Duplicate: result.Duplicate,
	}
	switch {
	case result.Duplicate:
		ack.Message = "already processed"
	case result.Ignored:
		ack.Message = "ignored"
	}
	return ack
}
