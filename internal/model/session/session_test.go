package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/customerr"
)

type fakeStorage struct {
	sessions map[int64]Session
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{sessions: make(map[int64]Session)}
}

func (s *fakeStorage) GetByID(_ context.Context, userID int64) (Session, error) {
	return s.sessions[userID], nil
}

func (s *fakeStorage) SaveByID(_ context.Context, userID int64, sess Session) error {
	s.sessions[userID] = sess
	return nil
}

func (s *fakeStorage) DeleteByID(_ context.Context, userID int64) error {
	delete(s.sessions, userID)
	return nil
}

type fakeGateway struct {
	token    string
	user     record.User
	authErr  error
	meErr    error
	meCalled int
}

func (g *fakeGateway) Register(context.Context, string, string, string) (string, error) {
	return g.token, g.authErr
}

func (g *fakeGateway) Login(context.Context, string, string) (string, error) {
	return g.token, g.authErr
}

func (g *fakeGateway) Me(context.Context, string) (record.User, error) {
	g.meCalled++
	if g.meErr != nil {
		return record.User{}, g.meErr
	}
	return g.user, nil
}

func Test_OnLogin_ShouldStoreSessionWithProfile(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	gateway := &fakeGateway{
		token: "tok",
		user:  record.User{ID: "u1", Name: "Alice", Role: record.RoleUser},
	}
	manager := NewManager(store, gateway)

	u, err := manager.Login(ctx, 123, "alice@mail.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, Session{Token: "tok", User: gateway.user}, store.sessions[123])
}

func Test_OnFailedLogin_ShouldNotStoreSession(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	gateway := &fakeGateway{authErr: &customerr.AuthError{Err: "bad credentials"}}
	manager := NewManager(store, gateway)

	_, err := manager.Login(ctx, 123, "alice@mail.com", "wrong")

	assert.True(t, customerr.IsAuth(err))
	assert.Empty(t, store.sessions)
}

func Test_OnResolveWithoutToken_ShouldReturnLoggedOut(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(newFakeStorage(), &fakeGateway{})

	sess, err := manager.Resolve(ctx, 123)

	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func Test_OnResolveWithBareToken_ShouldFetchProfile(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.sessions[123] = Session{Token: "tok"}
	gateway := &fakeGateway{user: record.User{ID: "u1", Role: record.RoleAdmin}}
	manager := NewManager(store, gateway)

	sess, err := manager.Resolve(ctx, 123)

	require.NoError(t, err)
	assert.True(t, sess.Admin())
	assert.Equal(t, "u1", store.sessions[123].User.ID)
}

func Test_OnResolveWithCachedProfile_ShouldNotCallGateway(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.sessions[123] = Session{Token: "tok", User: record.User{ID: "u1"}}
	gateway := &fakeGateway{}
	manager := NewManager(store, gateway)

	sess, err := manager.Resolve(ctx, 123)

	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Zero(t, gateway.meCalled)
}

func Test_OnResolveWithRejectedToken_ShouldDropSessionSilently(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.sessions[123] = Session{Token: "expired"}
	gateway := &fakeGateway{meErr: &customerr.AuthError{Err: "expired"}}
	manager := NewManager(store, gateway)

	sess, err := manager.Resolve(ctx, 123)

	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, store.sessions)
}

func Test_OnLogout_ShouldDeleteSession(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.sessions[123] = Session{Token: "tok", User: record.User{ID: "u1"}}
	manager := NewManager(store, &fakeGateway{})

	err := manager.Logout(ctx, 123)

	require.NoError(t, err)
	assert.Empty(t, store.sessions)
}
