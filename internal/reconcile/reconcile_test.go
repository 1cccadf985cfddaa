package reconcile

import (
	"context"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/internal/snapshot"
)

type staticVerifier struct{}

func (staticVerifier) Me(_ context.Context, _ string) (*session.User, error) {
	return nil, session.ErrEmptyIdentity
}

func newTestStore() *session.Store {
	return session.NewStore("sid-1", staticVerifier{}, snapshot.NewMemoryStore(), "admin@skillsprint.com")
}

func providerUser(id string) goth.User {
	return goth.User{
		UserID:    id,
		Email:     "learner@example.com",
		Name:      "Learner",
		AvatarURL: "https://cdn.example.com/a.png",
	}
}

func TestObserve_FirstObservationSettlesStore(t *testing.T) {
	store := newTestStore()
	require.False(t, store.Initialized())

	New(store).Observe(StatusUnauthenticated, nil)

	assert.True(t, store.Initialized())
}

func TestObserve_AuthenticatedWithoutTokenUsesSentinel(t *testing.T) {
	store := newTestStore()
	gu := providerUser("user-1")

	New(store).Observe(StatusAuthenticated, &gu)

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "user-1", st.User.ID)
	assert.Equal(t, SentinelToken, st.Token)
	assert.True(t, st.IsAuthenticated)
}

func TestObserve_NeverClobbersHeldToken(t *testing.T) {
	store := newTestStore()
	store.Login(session.User{ID: "user-1", Email: "learner@example.com"}, "jwt1")

	gu := providerUser("user-1")
	New(store).Observe(StatusAuthenticated, &gu)

	assert.Equal(t, "jwt1", store.Token(), "a real JWT survives an OAuth merge")
	assert.True(t, store.State().IsAuthenticated)
}

func TestObserve_UnauthenticatedDoesNotLogout(t *testing.T) {
	store := newTestStore()
	store.Login(session.User{ID: "user-1", Email: "learner@example.com"}, "jwt1")

	New(store).Observe(StatusUnauthenticated, nil)

	st := store.State()
	require.NotNil(t, st.User)
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "jwt1", st.Token)
}

func TestObserve_LoadingDoesNotMutate(t *testing.T) {
	store := newTestStore()
	store.Login(session.User{ID: "user-1", Email: "learner@example.com"}, "jwt1")
	before := store.State()

	New(store).Observe(StatusLoading, nil)

	after := store.State()
	assert.Equal(t, before.User, after.User)
	assert.Equal(t, before.Token, after.Token)
	assert.Equal(t, before.IsAuthenticated, after.IsAuthenticated)
}

func TestObserve_AuthenticatedNilPayloadIsNoop(t *testing.T) {
	store := newTestStore()
	store.Login(session.User{ID: "user-1", Email: "learner@example.com"}, "jwt1")

	New(store).Observe(StatusAuthenticated, nil)

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "jwt1", st.Token)
}

func TestObserve_ConflictingIdentityLastWriteWins(t *testing.T) {
	store := newTestStore()
	store.Login(session.User{ID: "user-1", Email: "learner@example.com"}, "jwt1")

	gu := providerUser("user-2")
	New(store).Observe(StatusAuthenticated, &gu)

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "user-2", st.User.ID)
	assert.Equal(t, "jwt1", st.Token)
}

func TestUserFromProvider_DefaultsRole(t *testing.T) {
	u := UserFromProvider(providerUser("user-1"))
	assert.Equal(t, session.RoleUser, u.Role)
}

func TestUserFromProvider_ReadsValidRole(t *testing.T) {
	gu := providerUser("user-1")
	gu.RawData = map[string]interface{}{"role": "ADMIN"}

	u := UserFromProvider(gu)
	assert.Equal(t, session.RoleAdmin, u.Role)
}

func TestUserFromProvider_IgnoresInvalidRole(t *testing.T) {
	gu := providerUser("user-1")
	gu.RawData = map[string]interface{}{"role": "SUPERUSER"}

	u := UserFromProvider(gu)
	assert.Equal(t, session.RoleUser, u.Role)
}

func TestUserFromProvider_NameFallback(t *testing.T) {
	gu := providerUser("user-1")
	gu.Name = ""
	gu.FirstName = "Ada"
	gu.LastName = "Lovelace"

	u := UserFromProvider(gu)
	assert.Equal(t, "Ada Lovelace", u.Name)
}
