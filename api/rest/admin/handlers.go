package admin

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/logger"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"github.com/gin-gonic/gin"
)

// LeadStats is the slice of the lead repository the stats fallback uses
type LeadStats interface {
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	Recent(ctx context.Context, limit int) ([]leads.Lead, error)
}

// UserStats is the slice of the user repository the stats fallback uses
type UserStats interface {
	Count(ctx context.Context) (int, error)
}

// StatsHandler godoc
// @Summary Admin dashboard statistics
// @Description Proxy the backend dashboard aggregates, falling back to locally captured counts when the backend is unreachable
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/stats [get]
func StatsHandler(client *backend.Client, leadRepo LeadStats, userRepo UserStats) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		stats, err := client.DashboardStats(c.Request.Context(), store.Token())
		if err == nil {
			c.JSON(http.StatusOK, StatsResponse{Stats: stats, Source: "backend"})
			return
		}

		logger.ErrorErr(err, "backend stats unavailable, computing local fallback")

		resp, ferr := localStats(c, leadRepo, userRepo)
		if ferr != nil {
			errors.InternalError(c, "failed to compute dashboard stats", ferr)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// computes a reduced stats view from edge-captured data only
func localStats(c *gin.Context, leadRepo LeadStats, userRepo UserStats) (StatsResponse, error) {
	ctx := c.Request.Context()

	totalLeads, err := leadRepo.Count(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	weekLeads, err := leadRepo.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return StatsResponse{}, err
	}

	totalUsers, err := userRepo.Count(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	recent, err := leadRepo.Recent(ctx, 5)
	if err != nil {
		return StatsResponse{}, err
	}

	recentLeads := make([]backend.RecentLead, 0, len(recent))
	for _, lead := range recent {
		recentLeads = append(recentLeads, backend.RecentLead{
			ID:        lead.ID,
			Email:     lead.Email,
			CreatedAt: lead.CreatedAt.Format(time.RFC3339),
		})
	}

	return StatsResponse{
		Stats: &backend.DashboardStats{
			TotalTraffic: totalUsers,
			TotalLeads:   totalLeads,
			RecentLeads:  recentLeads,
		},
		Source:        "local",
		LeadsThisWeek: weekLeads,
	}, nil
}
