package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCheckoutService implements service.CheckoutService for testing
type stubCheckoutService struct {
	resp *dto.CheckoutResponse
	err  error
}

func (s *stubCheckoutService) CreateSession(_ context.Context, _ *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doCheckoutRequest(t *testing.T, svc service.CheckoutService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-checkout-session", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	h := NewCheckoutHandler(svc, slog.New(slog.DiscardHandler))
	require.NoError(t, h.CreateCheckoutSession(e.NewContext(req, rec)))
	return rec
}

func TestCreateCheckoutSession_OK(t *testing.T) {
	svc := &stubCheckoutService{resp: &dto.CheckoutResponse{
		URL: "https://checkout.stripe.com/pay/cs_test_1",
		ID:  "cs_test_1",
	}}

	rec := doCheckoutRequest(t, svc, `{"userId":"user-1","cartItems":[{"cartItemId":1,"productId":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://checkout.stripe.com/pay/cs_test_1","id":"cs_test_1"}`, rec.Body.String())
}

func TestCreateCheckoutSession_MissingUserID(t *testing.T) {
	svc := &stubCheckoutService{err: service.ErrUserIDRequired}

	rec := doCheckoutRequest(t, svc, `{"cartItems":[{"cartItemId":1,"productId":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"userId required"}`, rec.Body.String())
}

func TestCreateCheckoutSession_EmailNotFound(t *testing.T) {
	svc := &stubCheckoutService{err: service.ErrEmailNotFound}

	rec := doCheckoutRequest(t, svc, `{"userId":"user-1","cartItems":[{"cartItemId":1,"productId":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"user email not found"}`, rec.Body.String())
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	svc := &stubCheckoutService{err: assert.AnError}

	rec := doCheckoutRequest(t, svc, `{"userId":"user-1","cartItems":[{"cartItemId":1,"productId":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreateCheckoutSession_MalformedBody(t *testing.T) {
	svc := &stubCheckoutService{}

	rec := doCheckoutRequest(t, svc, `{"userId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
