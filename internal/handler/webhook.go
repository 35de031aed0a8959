package handler

import (
	"errors"
	"io"
	"net/http"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

const signatureHeader = "Stripe-Signature"

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandleWebhook never exposes internal error detail to the provider; its
// retry behavior is keyed on the status code alone.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	sig := c.Request().Header.Get(signatureHeader)
	if sig == "" {
		return c.String(http.StatusBadRequest, "missing stripe-signature header")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "unreadable body")
	}

	if err := h.webhookService.HandleEvent(ctx, payload, sig); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return c.String(http.StatusBadRequest, "webhook signature verification failed")
		}
		return c.String(http.StatusInternalServerError, "failed to process event")
	}

	return c.JSON(http.StatusOK, &dto.WebhookAck{Received: true})
}
