package admin

import "codeberg.org/skillsprint/webfront/internal/backend"

// StatsResponse wraps the dashboard aggregates with their provenance
type StatsResponse struct {
	Stats *backend.DashboardStats `json:"stats"`

	// "backend" when proxied, "local" when computed from edge data
	// because the backend was unreachable
	Source string `json:"source"`

	// leads captured in the last seven days; local fallback only
	LeadsThisWeek int `json:"leads_this_week,omitempty"`
}
