package leads

import "codeberg.org/skillsprint/webfront/skillsprint/leads"

// CreateRequest captures a marketing lead or contact inquiry. Email may be
// omitted by a bearer-authenticated caller; the JWT claims supply it.
type CreateRequest struct {
	Email   string `json:"email" binding:"omitempty,email"`
	Name    string `json:"name" binding:"max=100"`
	Message string `json:"message" binding:"max=2000"`
	Source  string `json:"source" binding:"max=50"`
}

// LeadResponse wraps a single lead
type LeadResponse struct {
	Lead *leads.Lead `json:"lead"`
}

// ListResponse wraps a page of leads
type ListResponse struct {
	Leads []leads.Lead `json:"leads"`
	Total int          `json:"total"`
}
