package session

import (
	"context"

	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/customerr"
)

// Session is one chat's view of who is logged in: the opaque bearer
// credential plus the profile fetched for it. A credential stays valid until
// the server rejects it; there is no refresh or rotation.
type Session struct {
	Token string      `json:"token"`
	User  record.User `json:"user"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User.ID != ""
}

func (s Session) Admin() bool {
	return s.Authenticated() && s.User.IsAdmin()
}

type storage interface {
	GetByID(ctx context.Context, userID int64) (Session, error)
	SaveByID(ctx context.Context, userID int64, s Session) error
	DeleteByID(ctx context.Context, userID int64) error
}

type authGateway interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (record.User, error)
}

// Manager owns the session lifecycle over an injected storage capability.
type Manager struct {
	storage storage
	gateway authGateway
}

func NewManager(storage storage, gateway authGateway) *Manager {
	return &Manager{storage: storage, gateway: gateway}
}

// Resolve returns the chat's current session. A stored credential without a
// profile triggers a profile fetch; a rejected credential is discarded and
// the chat is treated as logged out rather than surfacing an error.
func (m *Manager) Resolve(ctx context.Context, userID int64) (Session, error) {
	s, err := m.storage.GetByID(ctx, userID)
	if err != nil {
		return Session{}, errors.Wrap(err, "resolve session")
	}
	if s.Token == "" {
		return Session{}, nil
	}
	if s.User.ID != "" {
		return s, nil
	}

	u, err := m.gateway.Me(ctx, s.Token)
	if err != nil {
		if customerr.IsAuth(err) {
			_ = m.storage.DeleteByID(ctx, userID)
			return Session{}, nil
		}
		return Session{}, errors.Wrap(err, "resolve session")
	}

	s.User = u
	if err = m.storage.SaveByID(ctx, userID, s); err != nil {
		return Session{}, errors.Wrap(err, "resolve session")
	}
	return s, nil
}

func (m *Manager) Login(ctx context.Context, userID int64, email, password string) (record.User, error) {
	token, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		return record.User{}, errors.Wrap(err, "login")
	}
	return m.adopt(ctx, userID, token)
}

func (m *Manager) Register(ctx context.Context, userID int64, name, email, password string) (record.User, error) {
	token, err := m.gateway.Register(ctx, name, email, password)
	if err != nil {
		return record.User{}, errors.Wrap(err, "register")
	}
	return m.adopt(ctx, userID, token)
}

func (m *Manager) Logout(ctx context.Context, userID int64) error {
	return errors.Wrap(m.storage.DeleteByID(ctx, userID), "logout")
}

func (m *Manager) adopt(ctx context.Context, userID int64, token string) (record.User, error) {
	u, err := m.gateway.Me(ctx, token)
	if err != nil {
		return record.User{}, errors.Wrap(err, "fetching profile")
	}
	if err = m.storage.SaveByID(ctx, userID, Session{Token: token, User: u}); err != nil {
		return record.User{}, errors.Wrap(err, "storing session")
	}
	return u, nil
}
