package request

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId,omitempty"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
