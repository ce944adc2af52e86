package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/api"
	"quickbite-client/internal/core/localstore"
	"quickbite-client/internal/domain"
	"quickbite-client/internal/validate"
)

func tempLocal(t *testing.T) *localstore.Store {
	t.Helper()
	return localstore.Open(filepath.Join(t.TempDir(), "state.json"))
}

func demoUser() domain.User {
	return domain.User{UserID: 3, Username: "demo", Email: "demo@quickbite.dev", Role: domain.RoleUser}
}

func TestLoginPersistsToken(t *testing.T) {
	backend := &backendStub{
		login: func(_ context.Context, email, password string) (api.AuthPayload, error) {
			return api.AuthPayload{Token: "tok-123", User: demoUser()}, nil
		},
	}
	local := tempLocal(t)
	s := New(backend, local, nil)

	require.NoError(t, s.LoginUser(context.Background(), "demo@quickbite.dev", "demo12345"))

	st := s.Snapshot()
	assert.Equal(t, TriTrue, IsAuthenticated(st))
	assert.Equal(t, "tok-123", st.Auth.Token)
	require.NotNil(t, st.Auth.User)
	assert.Equal(t, "demo", st.Auth.User.Username)
	assert.Equal(t, "tok-123", local.Token(), "token must survive a restart")
}

func TestLoginValidatesLocally(t *testing.T) {
	called := false
	backend := &backendStub{
		login: func(context.Context, string, string) (api.AuthPayload, error) {
			called = true
			return api.AuthPayload{}, nil
		},
	}
	s := New(backend, nil, nil)

	err := s.LoginUser(context.Background(), "not-an-email", "x")
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.False(t, called, "invalid form must not reach the network")
	assert.Equal(t, StatusIdle, s.Snapshot().Auth.AuthStatus, "no pending on validation failure")
}

func TestLogoutErasesTokenOnlyOnSuccess(t *testing.T) {
	backend := &backendStub{
		login: func(context.Context, string, string) (api.AuthPayload, error) {
			return api.AuthPayload{Token: "tok-1", User: demoUser()}, nil
		},
		logout: func(context.Context) error { return errors.New("network down") },
	}
	local := tempLocal(t)
	s := New(backend, local, nil)
	require.NoError(t, s.LoginUser(context.Background(), "demo@quickbite.dev", "demo12345"))

	require.Error(t, s.LogoutUser(context.Background()))
	assert.Equal(t, "tok-1", local.Token(), "failed logout keeps the credential")
	assert.Equal(t, TriTrue, IsAuthenticated(s.Snapshot()))

	backend.logout = func(context.Context) error { return nil }
	require.NoError(t, s.LogoutUser(context.Background()))
	assert.Empty(t, local.Token())

	st := s.Snapshot()
	assert.Equal(t, TriFalse, IsAuthenticated(st))
	assert.Nil(t, st.Auth.User)
}

func TestFetchCurrentUserRestoresSession(t *testing.T) {
	local := tempLocal(t)
	require.NoError(t, local.Set(localstore.TokenKey, "persisted"))

	backend := &backendStub{
		currentUser: func(context.Context) (domain.User, error) { return demoUser(), nil },
	}
	s := New(backend, local, nil)
	assert.Equal(t, TriUnknown, IsAuthenticated(s.Snapshot()), "unknown until the probe answers")

	require.NoError(t, s.FetchCurrentUser(context.Background()))
	st := s.Snapshot()
	assert.Equal(t, TriTrue, IsAuthenticated(st))
	assert.Equal(t, "persisted", st.Auth.Token)
}

func TestFetchCurrentUserRejectionDropsCredential(t *testing.T) {
	local := tempLocal(t)
	require.NoError(t, local.Set(localstore.TokenKey, "stale"))

	backend := &backendStub{
		currentUser: func(context.Context) (domain.User, error) {
			return domain.User{}, &api.APIError{Status: 401, Message: "Unauthenticated."}
		},
	}
	s := New(backend, local, nil)
	require.Error(t, s.FetchCurrentUser(context.Background()))

	st := s.Snapshot()
	assert.Equal(t, TriFalse, IsAuthenticated(st))
	assert.Empty(t, st.Auth.Token)
	assert.Nil(t, st.Auth.User)
}

func TestRegisterRejectedClearsAuth(t *testing.T) {
	backend := &backendStub{
		register: func(context.Context, api.RegisterInput) (api.AuthPayload, error) {
			return api.AuthPayload{}, &api.APIError{Status: 422, Message: "The email has already been taken."}
		},
	}
	s := New(backend, nil, nil)

	err := s.RegisterUser(context.Background(), api.RegisterInput{
		Username:             "demo",
		Email:                "demo@quickbite.dev",
		Password:             "demo12345",
		PasswordConfirmation: "demo12345",
		Adresse:              "1 rue du Test",
	})
	require.Error(t, err)

	st := s.Snapshot()
	assert.Equal(t, StatusFailed, st.Auth.AuthStatus)
	assert.Equal(t, "The email has already been taken.", st.Auth.Error)
	assert.Equal(t, TriFalse, IsAuthenticated(st))
}

func TestClearAuthState(t *testing.T) {
	backend := &backendStub{
		login: func(context.Context, string, string) (api.AuthPayload, error) {
			return api.AuthPayload{Token: "tok", User: demoUser()}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.LoginUser(context.Background(), "demo@quickbite.dev", "demo12345"))

	s.ClearAuthState()
	st := s.Snapshot()
	assert.Equal(t, AuthState{Authenticated: TriFalse}, st.Auth)
}
