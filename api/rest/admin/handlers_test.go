package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/internal/snapshot"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
)

type fakeLeadStats struct {
	total     int
	sinceArg  time.Time
	weekCount int
	recent    []leads.Lead
}

func (f *fakeLeadStats) Count(_ context.Context) (int, error) { return f.total, nil }

func (f *fakeLeadStats) CountSince(_ context.Context, since time.Time) (int, error) {
	f.sinceArg = since
	return f.weekCount, nil
}

func (f *fakeLeadStats) Recent(_ context.Context, _ int) ([]leads.Lead, error) {
	return f.recent, nil
}

type fakeUserStats struct{ total int }

func (f *fakeUserStats) Count(_ context.Context) (int, error) { return f.total, nil }

type statsVerifier struct{}

func (statsVerifier) Me(_ context.Context, _ string) (*session.User, error) {
	return nil, session.ErrEmptyIdentity
}

func statsRouter(client *backend.Client, leadRepo LeadStats, userRepo UserStats) *gin.Engine {
	store := session.NewStore("sid-1", statsVerifier{}, snapshot.NewMemoryStore(), "admin@skillsprint.com")
	store.Login(session.User{ID: "admin-1", Email: "admin@skillsprint.com", Role: session.RoleAdmin}, "jwt1")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stats",
		func(c *gin.Context) { c.Set(gate.ContextStoreKey, store) },
		StatsHandler(client, leadRepo, userRepo),
	)
	return router
}

func TestStatsHandler_BackendOutageLocalFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable backend

	leadStats := &fakeLeadStats{
		total:     12,
		weekCount: 4,
		recent: []leads.Lead{
			{ID: "lead-1", Email: "visitor@example.com", CreatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		},
	}
	userStats := &fakeUserStats{total: 7}

	router := statsRouter(backend.NewClient(srv.URL), leadStats, userStats)

	req, err := http.NewRequest(http.MethodGet, "/stats", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "local", resp.Source)
	assert.Equal(t, 4, resp.LeadsThisWeek)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 12, resp.Stats.TotalLeads)
	assert.Equal(t, 7, resp.Stats.TotalTraffic)
	require.Len(t, resp.Stats.RecentLeads, 1)
	assert.Equal(t, "lead-1", resp.Stats.RecentLeads[0].ID)

	// the window is the trailing seven days
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), leadStats.sinceArg, time.Minute)
}

func TestStatsHandler_BackendProxied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"dashboardStats":{"totalTraffic":99,"totalLeads":3}}}`))
	}))
	defer srv.Close()

	router := statsRouter(backend.NewClient(srv.URL), &fakeLeadStats{}, &fakeUserStats{})

	req, err := http.NewRequest(http.MethodGet, "/stats", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "backend", resp.Source)
	assert.Zero(t, resp.LeadsThisWeek)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 99, resp.Stats.TotalTraffic)
}
