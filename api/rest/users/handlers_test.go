package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
)

type fakeUserStore struct {
	byID map[string]*users.User
}

func (f *fakeUserStore) FindByID(_ context.Context, userID string) (*users.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, fmt.Errorf("no rows in result set")
	}
	return u, nil
}

func (f *fakeUserStore) List(_ context.Context, _, _ int) ([]users.User, error) {
	var result []users.User
	for _, u := range f.byID {
		result = append(result, *u)
	}
	return result, nil
}

func (f *fakeUserStore) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, userID string, role session.Role) (*users.User, error) {
	u, err := f.FindByID(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	u.Role = role
	return u, nil
}

func userRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:id", GetHandler(store))
	return router
}

func TestGetHandler_Found(t *testing.T) {
	store := &fakeUserStore{byID: map[string]*users.User{
		"user-1": {ID: "user-1", Email: "learner@example.com", Role: session.RoleUser},
	}}

	req, err := http.NewRequest(http.MethodGet, "/users/user-1", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	userRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "learner@example.com", resp.User.Email)
}

func TestGetHandler_NotFound(t *testing.T) {
	store := &fakeUserStore{byID: map[string]*users.User{}}

	req, err := http.NewRequest(http.MethodGet, "/users/missing", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	userRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
