package promotions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/internal/snapshot"
)

type promoVerifier struct{}

func (promoVerifier) Me(_ context.Context, _ string) (*session.User, error) {
	return nil, session.ErrEmptyIdentity
}

// wires the promotion routes behind a pre-resolved session store, admin or
// anonymous depending on the test
func promoRouter(client *backend.Client, asAdmin bool) *gin.Engine {
	store := session.NewStore("sid-1", promoVerifier{}, snapshot.NewMemoryStore(), "admin@skillsprint.com")
	if asAdmin {
		store.Login(session.User{ID: "admin-1", Email: "admin@skillsprint.com", Role: session.RoleAdmin}, "admin-jwt")
	} else {
		store.Initialize()
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("")
	v1.Use(func(c *gin.Context) { c.Set(gate.ContextStoreKey, store) })
	RegisterRoutes(v1, client)
	return router
}

func TestListHandler_Public(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"promotions": [
					{"id": "p1", "code": "LAUNCH20", "discountPercentage": 20, "expiresAt": "2026-12-31T00:00:00Z"}
				]
			}
		}`))
	}))
	defer srv.Close()

	router := promoRouter(backend.NewClient(srv.URL), false)

	req, err := http.NewRequest(http.MethodGet, "/promotions", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Promotions, 1)
	assert.Equal(t, "LAUNCH20", resp.Promotions[0].Code)
}

func TestCreateHandler_AnonymousIsUnauthorized(t *testing.T) {
	router := promoRouter(backend.NewClient("http://backend.invalid"), false)

	body := `{"code": "SUMMER10", "discount_percentage": 10, "expires_at": "2026-09-01T00:00:00Z"}`
	req, err := http.NewRequest(http.MethodPost, "/promotions", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateHandler_AdminForwardsSessionToken(t *testing.T) {
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"createPromotion": {"id": "p2", "code": "SUMMER10", "discountPercentage": 10, "expiresAt": "2026-09-01T00:00:00Z"}
			}
		}`))
	}))
	defer srv.Close()

	router := promoRouter(backend.NewClient(srv.URL), true)

	body := `{"code": "SUMMER10", "discount_percentage": 10, "expires_at": "2026-09-01T00:00:00Z"}`
	req, err := http.NewRequest(http.MethodPost, "/promotions", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Bearer admin-jwt", authHeader)

	var resp PromotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Promotion)
	assert.Equal(t, "p2", resp.Promotion.ID)
}

func TestDeleteHandler_BackendRejectionIsBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "promotion not found"}]}`))
	}))
	defer srv.Close()

	router := promoRouter(backend.NewClient(srv.URL), true)

	req, err := http.NewRequest(http.MethodDelete, "/promotions/missing", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
