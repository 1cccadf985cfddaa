package backend

import (
	"time"

	"codeberg.org/skillsprint/webfront/internal/session"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlEnvelope struct {
	Data   map[string]any `json:"data"`
	Errors []graphqlError `json:"errors,omitempty"`
}

// user record as the backend serializes it; createdAt arrives as an
// RFC 3339 string
type userPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
	Role      string `json:"role"`
}

type authPayload struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
}

// pre-aggregated admin dashboard metrics
type DashboardStats struct {
	TotalTraffic       int           `json:"totalTraffic"`
	TotalLeads         int           `json:"totalLeads"`
	TotalOrders        int           `json:"totalOrders"`
	TotalRevenue       float64       `json:"totalRevenue"`
	LeadConversionRate float64       `json:"leadConversionRate"`
	RevenuePerVisitor  float64       `json:"revenuePerVisitor"`
	RecentLeads        []RecentLead  `json:"recentLeads"`
	RecentOrders       []RecentOrder `json:"recentOrders"`
}

type RecentLead struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type RecentOrder struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// catalog course as exposed to the storefront
type Course struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Level       string  `json:"level"`
	CreatedAt   string  `json:"createdAt"`
}

// partial lesson update; nil fields are left untouched by the backend
type LessonUpdate struct {
	ID       string
	Order    *int
	Title    *string
	VideoURL *string
	Avatar   *string
	Visible  *bool
}

// checkout discount code
type Promotion struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discountPercentage"`
	ExpiresAt          string `json:"expiresAt"`
}

// partial promotion update; nil fields are left untouched by the backend
type PromotionUpdate struct {
	Code               *string
	DiscountPercentage *int
	ExpiresAt          *string
}

// maps a backend user payload to the session model; a missing or unknown
// role is left empty and treated as USER-equivalent downstream
func (p *userPayload) toUser() *session.User {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	role := session.Role(p.Role)
	if !role.Valid() {
		role = ""
	}

	return &session.User{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Avatar:    p.Avatar,
		CreatedAt: createdAt,
		Role:      role,
	}
}
