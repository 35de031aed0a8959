package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *slog.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	// the body userId is honored even when the token subject disagrees; the
	// mismatch is only logged
	if sub, ok := c.Get(middleware.TokenUserIDKey).(string); ok && sub != "" && req.UserID != "" && sub != req.UserID {
		h.logger.Warn("token subject does not match request userId",
			"token_subject", sub, "user_id", req.UserID)
	}

	resp, err := h.checkoutService.CreateSession(ctx, &req)
	if err != nil {
		if isBadRequest(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		// the UI is a trusted first-party caller, provider/store errors are
		// surfaced verbatim
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

func isBadRequest(err error) bool {
	return errors.Is(err, service.ErrUserIDRequired) ||
		errors.Is(err, service.ErrEmptyCart) ||
		errors.Is(err, service.ErrInvalidQuantity) ||
		errors.Is(err, service.ErrEmailNotFound) ||
		errors.Is(err, service.ErrProductNotFound)
}
