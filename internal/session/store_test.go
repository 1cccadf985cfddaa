package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "admin@skillsprint.com"

type fakeVerifier struct {
	mu    sync.Mutex
	calls int
	user  *User
	err   error

	// when set, Me blocks until the channel closes
	block chan struct{}
}

func (f *fakeVerifier) Me(_ context.Context, _ string) (*User, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}

	return f.user, f.err
}

func (f *fakeVerifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSnapshots struct {
	mu      sync.Mutex
	snaps   map[string]Snapshot
	saves   int
	deletes int
	loadErr error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{snaps: make(map[string]Snapshot)}
}

func (f *fakeSnapshots) Save(_ context.Context, key string, snap Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.snaps[key] = snap
	return nil
}

func (f *fakeSnapshots) Load(_ context.Context, key string) (Snapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return Snapshot{}, false, f.loadErr
	}

	snap, ok := f.snaps[key]
	return snap, ok, nil
}

func (f *fakeSnapshots) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.snaps, key)
	return nil
}

func testUser() User {
	return User{
		ID:        "user-1",
		Email:     "learner@example.com",
		Name:      "Learner",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:      RoleUser,
	}
}

func TestLogin_SetsAuthenticatedState(t *testing.T) {
	snaps := newFakeSnapshots()
	store := NewStore("sid-1", &fakeVerifier{}, snaps, testAdminEmail)

	store.Login(testUser(), "jwt1")

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "user-1", st.User.ID)
	assert.Equal(t, "jwt1", st.Token)
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsAdmin)
	assert.False(t, st.Loading)

	// the mutation and its persisted snapshot must not diverge
	snap, ok, err := snaps.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jwt1", snap.Token)
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, "user-1", snap.User.ID)
}

func TestLogin_AdminByRole(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)

	u := testUser()
	u.Role = RoleAdmin
	store.Login(u, "jwt1")

	assert.True(t, store.State().IsAdmin)
}

func TestLogin_AdminByEmailFallback(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)

	// email fallback fires even though the role says USER
	u := testUser()
	u.Email = testAdminEmail
	u.Role = RoleUser
	store.Login(u, "tok")

	assert.True(t, store.State().IsAdmin)
}

func TestLogout_Idempotent(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")

	store.Logout()
	first := store.State()

	store.Logout()
	second := store.State()

	assert.Equal(t, first, second)
	assert.Nil(t, second.User)
	assert.Empty(t, second.Token)
	assert.False(t, second.IsAuthenticated)
	assert.False(t, second.IsAdmin)
}

func TestAuthenticatedMatchesUserPresence(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)

	st := store.State()
	assert.Equal(t, st.User != nil, st.IsAuthenticated)

	store.Login(testUser(), "jwt1")
	st = store.State()
	assert.Equal(t, st.User != nil, st.IsAuthenticated)

	store.Logout()
	st = store.State()
	assert.Equal(t, st.User != nil, st.IsAuthenticated)
}

func TestCheckAuth_NoToken(t *testing.T) {
	verifier := &fakeVerifier{}
	store := NewStore("sid-1", verifier, newFakeSnapshots(), testAdminEmail)

	store.CheckAuth(context.Background())

	st := store.State()
	assert.True(t, st.Initialized)
	assert.False(t, st.Loading)
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User)
	assert.Equal(t, 0, verifier.callCount(), "no token must mean zero network calls")
}

func TestCheckAuth_ExplicitRejectionClearsSession(t *testing.T) {
	verifier := &fakeVerifier{err: ErrUnauthorized}
	snaps := newFakeSnapshots()
	store := NewStore("sid-1", verifier, snaps, testAdminEmail)
	store.Login(testUser(), "jwt1")

	store.CheckAuth(context.Background())

	st := store.State()
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsAdmin)
	assert.False(t, st.Loading)
	assert.True(t, st.Initialized)

	// the persisted snapshot is gone too
	_, ok, err := snaps.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckAuth_RejectionMatchesLogout(t *testing.T) {
	rejected := NewStore("sid-1", &fakeVerifier{err: ErrUnauthorized}, newFakeSnapshots(), testAdminEmail)
	rejected.Login(testUser(), "jwt1")
	rejected.CheckAuth(context.Background())

	loggedOut := NewStore("sid-2", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)
	loggedOut.Login(testUser(), "jwt1")
	loggedOut.Logout()
	loggedOut.Initialize()

	assert.Equal(t, loggedOut.State(), rejected.State())
}

func TestCheckAuth_NetworkErrorPreservesSession(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("dial tcp: connection refused")}
	store := NewStore("sid-1", verifier, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")
	before := store.State()

	store.CheckAuth(context.Background())

	after := store.State()
	assert.Equal(t, before.User, after.User)
	assert.Equal(t, before.Token, after.Token)
	assert.Equal(t, before.IsAuthenticated, after.IsAuthenticated)
	assert.Equal(t, before.IsAdmin, after.IsAdmin)

	// only the transient flags change
	assert.False(t, after.Loading)
	assert.True(t, after.Initialized)
}

func TestCheckAuth_EmptyPayloadPreservesSession(t *testing.T) {
	verifier := &fakeVerifier{err: ErrEmptyIdentity}
	store := NewStore("sid-1", verifier, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")

	store.CheckAuth(context.Background())

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "jwt1", st.Token)
	assert.True(t, st.IsAuthenticated)
	assert.True(t, st.Initialized)
}

func TestCheckAuth_SuccessAdoptsIdentity(t *testing.T) {
	fresh := testUser()
	fresh.Name = "Renamed"
	fresh.Role = RoleAdmin

	verifier := &fakeVerifier{user: &fresh}
	store := NewStore("sid-1", verifier, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")

	store.CheckAuth(context.Background())

	st := store.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "Renamed", st.User.Name)
	assert.Equal(t, "jwt1", st.Token, "the held token survives re-verification")
	assert.True(t, st.IsAuthenticated)
	assert.True(t, st.IsAdmin, "admin flag recomputed from the fresh identity")
	assert.True(t, st.Initialized)
}

func TestCheckAuth_DeduplicatesConcurrentCalls(t *testing.T) {
	verifier := &fakeVerifier{
		user:  &User{ID: "user-1", Email: "learner@example.com"},
		block: make(chan struct{}),
	}
	store := NewStore("sid-1", verifier, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")

	done := make(chan struct{})
	go func() {
		store.CheckAuth(context.Background())
		close(done)
	}()

	// wait for the first call to reach the verifier
	require.Eventually(t, func() bool {
		return verifier.callCount() == 1
	}, time.Second, time.Millisecond)

	// second call returns immediately without another round-trip
	store.CheckAuth(context.Background())
	assert.Equal(t, 1, verifier.callCount())

	close(verifier.block)
	<-done

	assert.True(t, store.State().Initialized)
}

func TestNewStore_RehydratesSnapshot(t *testing.T) {
	snaps := newFakeSnapshots()
	first := NewStore("sid-1", &fakeVerifier{}, snaps, testAdminEmail)
	first.Login(testUser(), "jwt1")

	// a fresh load sees the last known session, but not as settled
	second := NewStore("sid-1", &fakeVerifier{}, snaps, testAdminEmail)

	st := second.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "jwt1", st.Token)
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.Initialized)
	assert.False(t, st.Loading)
}

func TestNewStore_SnapshotLoadFailureStartsAnonymous(t *testing.T) {
	snaps := newFakeSnapshots()
	snaps.loadErr = errors.New("redis: connection refused")

	store := NewStore("sid-1", &fakeVerifier{}, snaps, testAdminEmail)

	st := store.State()
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
}

func TestInitialize_Idempotent(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)

	store.Initialize()
	store.Initialize()

	assert.True(t, store.Initialized())
}

func TestState_ReturnsCopy(t *testing.T) {
	store := NewStore("sid-1", &fakeVerifier{}, newFakeSnapshots(), testAdminEmail)
	store.Login(testUser(), "jwt1")

	st := store.State()
	st.User.Email = "tampered@example.com"

	assert.Equal(t, "learner@example.com", store.State().User.Email)
}
