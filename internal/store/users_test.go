package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/api"
	"quickbite-client/internal/domain"
)

func adminBackend() *backendStub {
	return &backendStub{
		listUsers: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{UserID: 1, Username: "admin", Role: domain.RoleAdmin},
				{UserID: 3, Username: "demo", Role: domain.RoleUser},
			}, nil
		},
		updateUser: func(_ context.Context, id int64, in api.UserInput) (domain.User, error) {
			return domain.User{UserID: id, Username: in.Username, Email: in.Email, Role: domain.RoleUser}, nil
		},
	}
}

func TestUpdateUserSyncsSessionSnapshot(t *testing.T) {
	backend := adminBackend()
	backend.login = func(context.Context, string, string) (api.AuthPayload, error) {
		return api.AuthPayload{Token: "t", User: domain.User{UserID: 3, Username: "demo"}}, nil
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.LoginUser(context.Background(), "demo@quickbite.dev", "demo12345"))
	require.NoError(t, s.FetchUsers(context.Background()))

	require.NoError(t, s.UpdateUser(context.Background(), 3, api.UserInput{Username: "renamed"}))

	st := s.Snapshot()
	assert.Equal(t, "renamed", st.Users.Items[1].Username)
	require.NotNil(t, st.Auth.User)
	assert.Equal(t, "renamed", st.Auth.User.Username, "editing yourself updates the session user")
}

func TestUpdateOtherUserLeavesSessionAlone(t *testing.T) {
	backend := adminBackend()
	backend.login = func(context.Context, string, string) (api.AuthPayload, error) {
		return api.AuthPayload{Token: "t", User: domain.User{UserID: 1, Username: "admin"}}, nil
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.LoginUser(context.Background(), "admin@quickbite.dev", "admin12345"))
	require.NoError(t, s.FetchUsers(context.Background()))

	require.NoError(t, s.UpdateUser(context.Background(), 3, api.UserInput{Username: "renamed"}))

	assert.Equal(t, "admin", s.Snapshot().Auth.User.Username)
}

func TestDeleteUserFiltersCollection(t *testing.T) {
	s := New(adminBackend(), nil, nil)
	require.NoError(t, s.FetchUsers(context.Background()))

	require.NoError(t, s.DeleteUser(context.Background(), 1))

	st := s.Snapshot()
	require.Len(t, st.Users.Items, 1)
	assert.Equal(t, int64(3), st.Users.Items[0].UserID)
}
