package model

// Session metadata keys attached at checkout-session creation and read back
// during webhook reconciliation.
const (
	MetadataUserID    = "user_id"
	MetadataCartItems = "cart_items"
)

// CartItemMetadata is one serialized cart line carried inside the provider
// session's metadata, so reconciliation never depends on client-controlled
// live cart state.
type CartItemMetadata struct {
	CartItemID uint  `json:"cart_item_id"`
	ProductID  uint  `json:"product_id"`
	Quantity   int32 `json:"quantity"`
	UnitAmount int64 `json:"unit_amount"` // minor currency units
}
