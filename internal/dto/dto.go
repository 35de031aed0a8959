package dto

type CheckoutCartItem struct {
	CartItemID uint  `json:"cartItemId"`
	ProductID  uint  `json:"productId"`
	Quantity   int32 `json:"quantity"`
}

type CheckoutRequest struct {
	UserID    string             `json:"userId"`
	CartItems []CheckoutCartItem `json:"cartItems"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}
