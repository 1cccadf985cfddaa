package promotions

import "codeberg.org/skillsprint/webfront/internal/backend"

// ListResponse wraps the active discount codes
type ListResponse struct {
	Promotions []backend.Promotion `json:"promotions"`
}

// PromotionResponse wraps one discount code
type PromotionResponse struct {
	Promotion *backend.Promotion `json:"promotion"`
}

// CreateRequest is the payload for registering a discount code
type CreateRequest struct {
	Code               string `json:"code" binding:"required"`
	DiscountPercentage int    `json:"discount_percentage" binding:"required,min=1,max=100"`
	ExpiresAt          string `json:"expires_at" binding:"required"`
}

// UpdateRequest is a partial promotion update; nil fields are left untouched
type UpdateRequest struct {
	Code               *string `json:"code"`
	DiscountPercentage *int    `json:"discount_percentage"`
	ExpiresAt          *string `json:"expires_at"`
}
