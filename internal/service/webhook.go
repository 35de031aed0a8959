package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront-checkout/internal/client"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/repository"

	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"
)

type WebhookService interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

type webhookServiceImpl struct {
	stripeClient     client.StripeClient
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	cartRepo         repository.CartRepository
	webhookEventRepo repository.WebhookEventRepository
	logger           *slog.Logger
}

func NewWebhookService(
	stripeClient client.StripeClient,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	webhookEventRepo repository.WebhookEventRepository,
	logger *slog.Logger,
) WebhookService {
	return &webhookServiceImpl{
		stripeClient:     stripeClient,
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		cartRepo:         cartRepo,
		webhookEventRepo: webhookEventRepo,
		logger:           logger,
	}
}

// HandleEvent runs one webhook delivery to a terminal state. Signature
// verification is the only authentication on this path; everything after a
// successful order insert is best-effort and must not fail the delivery,
// otherwise the provider keeps retrying an event that was already recorded.
func (s *webhookServiceImpl) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.stripeClient.ConstructWebhookEvent(payload, sigHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	// secondary dedupe on the provider event id; the orders unique index on
	// the session id is the real guarantee
	if event.ID != "" {
		processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
		if err != nil {
			s.logger.Warn("webhook event lookup failed", "event_id", event.ID, "error", err)
		} else if processed {
			s.logger.Info("webhook event already processed", "event_id", event.ID)
			return nil
		}
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		// ack every other verified event type so the provider stops retrying
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.logger.Warn("failed to decode checkout session payload", "event_id", event.ID, "error", err)
		return nil
	}

	userID := session.Metadata[model.MetadataUserID]
	if userID == "" {
		s.logger.Warn("session completed without user metadata", "session_id", session.ID)
		s.markEventProcessed(ctx, event)
		return nil
	}

	exists, err := s.orderRepo.ExistsBySessionID(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("%w: check existing order: %v", ErrStore, err)
	}
	if exists {
		s.logger.Info("order already recorded for session", "session_id", session.ID)
		s.markEventProcessed(ctx, event)
		return nil
	}

	status := "pending"
	if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		status = "paid"
	} else if session.Status != "" {
		status = string(session.Status)
	}

	order := &model.Order{
		UserID:          userID,
		TotalAmount:     majorUnits(session.AmountTotal),
		Status:          status,
		StripeSessionID: session.ID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against a concurrent delivery of the same session
			s.logger.Info("order already recorded for session", "session_id", session.ID)
			s.markEventProcessed(ctx, event)
			return nil
		}
		return fmt.Errorf("%w: create order: %v", ErrStore, err)
	}

	// from here on the payment record is durable; line items and cart
	// clearing are recoverable by hand, a failed delivery retry is not
	s.createOrderItems(ctx, order, &session)

	if err := s.cartRepo.ClearForUser(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after payment", "user_id", userID, "error", err)
	}

	s.markEventProcessed(ctx, event)
	s.logger.Info("order processed", "order_id", order.ID, "session_id", session.ID, "status", status)
	return nil
}

func (s *webhookServiceImpl) createOrderItems(ctx context.Context, order *model.Order, session *stripe.CheckoutSession) {
	metaItems := parseCartMetadata(session, s.logger)
	if len(metaItems) == 0 {
		return
	}

	productIDs := make([]uint, 0, len(metaItems))
	seen := make(map[uint]bool)
	for _, item := range metaItems {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	productByID := make(map[uint]*model.Product)
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		s.logger.Warn("failed to fetch products for order items", "order_id", order.ID, "error", err)
	} else {
		for _, product := range products {
			productByID[product.ID] = product
		}
	}

	items := make([]*model.OrderItem, len(metaItems))
	for i, item := range metaItems {
		name := "Product"
		// snapshot the catalog price at fulfillment time; the per-line amount
		// captured at session creation is only a fallback for deleted products
		priceEach := majorUnits(item.UnitAmount)
		if product, ok := productByID[item.ProductID]; ok {
			name = product.Name
			priceEach = product.Price
		}

		items[i] = &model.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			PriceEach:   priceEach,
		}
	}

	if err := s.orderRepo.CreateOrderItems(ctx, items); err != nil {
		s.logger.Warn("failed to insert order items", "order_id", order.ID, "error", err)
	}
}

// parseCartMetadata fails closed: an order with no line items is preferable
// to losing the payment record.
func parseCartMetadata(session *stripe.CheckoutSession, logger *slog.Logger) []model.CartItemMetadata {
	raw := session.Metadata[model.MetadataCartItems]
	if raw == "" {
		return nil
	}

	var items []model.CartItemMetadata
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("failed to parse cart items metadata", "session_id", session.ID, "error", err)
		return nil
	}

	return items
}

func (s *webhookServiceImpl) markEventProcessed(ctx context.Context, event stripe.Event) {
	if event.ID == "" {
		return
	}
	if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, string(event.Type)); err != nil {
		s.logger.Warn("failed to record webhook event", "event_id", event.ID, "error", err)
	}
}
