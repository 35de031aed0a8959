package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/repository"

	"gorm.io/gorm"
)

type CheckoutService interface {
	CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	siteURL      string
	profileRepo  repository.ProfileRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	siteURL string,
	profileRepo repository.ProfileRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		siteURL:      siteURL,
		profileRepo:  profileRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}
	if len(req.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]uint, 0, len(req.CartItems))
	seen := make(map[uint]bool)
	for _, item := range req.CartItems {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	// checkout cannot proceed without a receipt address; the email comes from
	// the store, not from the caller's token claims
	profile, err := s.profileRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("look up profile: %w", err)
	}
	if profile.Email == "" {
		return nil, ErrEmailNotFound
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	if len(products) != len(productIDs) {
		return nil, ErrProductNotFound
	}

	productByID := make(map[uint]*model.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	lineItems := make([]client.LineItem, len(req.CartItems))
	metaItems := make([]model.CartItemMetadata, len(req.CartItems))
	for i, item := range req.CartItems {
		product := productByID[item.ProductID]
		unitAmount := minorUnits(product.Price)

		lineItems[i] = client.LineItem{
			Name:       product.Name,
			UnitAmount: unitAmount,
			Quantity:   int64(item.Quantity),
		}
		metaItems[i] = model.CartItemMetadata{
			CartItemID: item.CartItemID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: unitAmount,
		}
	}

	// the reconciler reads the cart back from session metadata, so it never
	// depends on the client's live cart state at webhook time
	serializedItems, err := json.Marshal(metaItems)
	if err != nil {
		return nil, fmt.Errorf("serialize cart metadata: %w", err)
	}

	resp, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CreateSessionRequest{
		CustomerEmail: profile.Email,
		LineItems:     lineItems,
		SuccessURL:    s.siteURL + "/checkout?status=success",
		CancelURL:     s.siteURL + "/checkout?status=cancelled",
		Metadata: map[string]string{
			model.MetadataUserID:    req.UserID,
			model.MetadataCartItems: string(serializedItems),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		"session_id", resp.SessionID,
		"user_id", req.UserID,
		"lines", len(lineItems),
	)

	return &dto.CheckoutResponse{
		URL: resp.URL,
		ID:  resp.SessionID,
	}, nil
}
