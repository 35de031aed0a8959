package service

import (
	"context"

	"storefront-checkout/internal/client"
	"storefront-checkout/internal/model"

	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"
)

// MockStripeClient implements client.StripeClient for testing
type MockStripeClient struct {
	CreatedSession *client.CreateSessionRequest // captures the request passed to CreateCheckoutSession
	CreateResp     *client.CreateSessionResponse
	CreateErr      error

	Event      stripe.Event
	VerifyErr  error
	CreateCall int
}

func (m *MockStripeClient) CreateCheckoutSession(_ context.Context, req *client.CreateSessionRequest) (*client.CreateSessionResponse, error) {
	m.CreateCall++
	m.CreatedSession = req
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.CreateResp, nil
}

func (m *MockStripeClient) ConstructWebhookEvent(_ []byte, _ string) (stripe.Event, error) {
	if m.VerifyErr != nil {
		return stripe.Event{}, m.VerifyErr
	}
	return m.Event, nil
}

// MockProfileRepository implements repository.ProfileRepository for testing
type MockProfileRepository struct {
	Profile *model.Profile
	Err     error
}

func (m *MockProfileRepository) FindByID(_ context.Context, _ string) (*model.Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.Profile, nil
}

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	Products []*model.Product
	Err      error
}

func (m *MockProductRepository) Seed(_ context.Context, _ []model.Product) error {
	return nil
}

func (m *MockProductRepository) FindByID(_ context.Context, productID uint) (*model.Product, error) {
	for _, p := range m.Products {
		if p.ID == productID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProductRepository) FindMany(_ context.Context, productIDs []uint) ([]*model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*model.Product
	for _, id := range productIDs {
		for _, p := range m.Products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
