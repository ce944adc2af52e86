package store

import (
	"context"

	"go.uber.org/zap"

	"quickbite-client/internal/api"
	"quickbite-client/internal/domain"
)

type UsersState struct {
	Items  []domain.User
	Status Status
	Error  string
}

func (s *Store) FetchUsers(ctx context.Context) error {
	return runThunk(s, ctx, "users/fetchUsers",
		func(ctx context.Context) ([]domain.User, error) { return s.api.ListUsers(ctx) },
		func(st *State) { st.Users.Status = StatusLoading },
		func(st *State, items []domain.User) {
			st.Users.Status = StatusSucceeded
			st.Users.Items = items
			st.Users.Error = ""
		},
		func(st *State, msg string) {
			st.Users.Status = StatusFailed
			st.Users.Error = msg
		},
	)
}

func (s *Store) AddUser(ctx context.Context, in api.UserInput) error {
	return runThunk(s, ctx, "users/addUser",
		func(ctx context.Context) (domain.User, error) { return s.api.CreateUser(ctx, in) },
		func(st *State) { st.Users.Status = StatusLoading },
		func(st *State, u domain.User) {
			st.Users.Status = StatusSucceeded
			st.Users.Items = append(st.Users.Items, u)
			st.Users.Error = ""
		},
		func(st *State, msg string) {
			st.Users.Status = StatusFailed
			st.Users.Error = msg
		},
	)
}

func (s *Store) UpdateUser(ctx context.Context, userID int64, in api.UserInput) error {
	return runThunk(s, ctx, "users/updateUser",
		func(ctx context.Context) (domain.User, error) { return s.api.UpdateUser(ctx, userID, in) },
		func(st *State) { st.Users.Status = StatusLoading },
		func(st *State, u domain.User) {
			st.Users.Status = StatusSucceeded
			st.Users.Error = ""
			for i := range st.Users.Items {
				if st.Users.Items[i].UserID == u.UserID {
					st.Users.Items[i] = u
					// 自己改自己资料时同步会话快照
					if st.Auth.User != nil && st.Auth.User.UserID == u.UserID {
						st.Auth.User = &u
					}
					return
				}
			}
			s.log.Warn("updated user not in collection", zap.Int64("userId", u.UserID))
		},
		func(st *State, msg string) {
			st.Users.Status = StatusFailed
			st.Users.Error = msg
		},
	)
}

func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	return runThunk(s, ctx, "users/deleteUser",
		func(ctx context.Context) (int64, error) { return userID, s.api.DeleteUser(ctx, userID) },
		func(st *State) { st.Users.Status = StatusLoading },
		func(st *State, id int64) {
			st.Users.Status = StatusSucceeded
			st.Users.Error = ""
			kept := st.Users.Items[:0]
			for _, u := range st.Users.Items {
				if u.UserID != id {
					kept = append(kept, u)
				}
			}
			st.Users.Items = kept
		},
		func(st *State, msg string) {
			st.Users.Status = StatusFailed
			st.Users.Error = msg
		},
	)
}

func (s *Store) ResetUsersError() {
	s.mutate("users/resetError", func(st *State) { st.Users.Error = "" })
}
