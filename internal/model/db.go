package model

import "time"

type Profile struct {
	ID        string `gorm:"primaryKey;size:64;not null"` // auth provider user id
	Email     string `gorm:"size:255;index"`
	Name      string `gorm:"size:255"`
	AvatarURL string
	CreatedAt time.Time
}

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"` // decimal currency units (dollars)
	ImageURL    string
	Category    string `gorm:"size:64;index"`
	InStock     bool   `gorm:"default:true"`
	Rating      float64
	Reviews     int32
	CreatedAt   time.Time
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index;not null"`
	ProductID uint   `gorm:"index;not null"`
	Quantity  int32  `gorm:"not null"`
	CreatedAt time.Time
}

type Order struct {
	ID     uint   `gorm:"primaryKey"`
	UserID string `gorm:"size:64;index;not null"`
	// decimal currency units; the provider reports minor units
	TotalAmount float64 `gorm:"not null"`
	Status      string  `gorm:"size:32;index;not null"` // paid | pending | provider passthrough
	// provider session id doubles as the idempotency key for reconciliation;
	// the unique index is what makes concurrent duplicate deliveries safe
	StripeSessionID string `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt       time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → orders.id
	OrderID uint `gorm:"index;not null"`
	// FK → products.id; kept nullable-ish on purpose, the name/price snapshot
	// below is what the order history renders
	ProductID   uint    `gorm:"index"`
	ProductName string  `gorm:"size:255;not null"` // snapshotted at fulfillment time
	Quantity    int32   `gorm:"not null"`
	PriceEach   float64 `gorm:"not null"` // snapshotted unit price
	CreatedAt   time.Time
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"` // provider event id
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}
