package store

import (
	"context"

	"go.uber.org/zap"

	"quickbite-client/internal/api"
	"quickbite-client/internal/core/localstore"
	"quickbite-client/internal/domain"
	"quickbite-client/internal/validate"
)

// AuthState 两条状态线：authStatus 跟登录/注册/登出，
// fetchStatus 跟“当前用户是谁”的查询。Authenticated 是三态，
// 未知时受保护视图显示 checking 而不是闪一下未登录内容。
type AuthState struct {
	Token         string
	User          *domain.User
	AuthStatus    Status
	FetchStatus   Status
	Error         string
	Authenticated Tri
}

func (s *Store) RegisterUser(ctx context.Context, in api.RegisterInput) error {
	if err := validate.Register(in); err != nil {
		return err
	}
	return runThunk(s, ctx, "auth/registerUser",
		func(ctx context.Context) (api.AuthPayload, error) {
			p, err := s.api.Register(ctx, in)
			if err != nil {
				return p, err
			}
			s.persistToken(p.Token)
			return p, nil
		},
		func(st *State) { st.Auth.AuthStatus = StatusLoading; st.Auth.Error = "" },
		func(st *State, p api.AuthPayload) {
			st.Auth.AuthStatus = StatusSucceeded
			st.Auth.Token = p.Token
			st.Auth.User = &p.User
			st.Auth.Authenticated = TriTrue
		},
		func(st *State, msg string) {
			st.Auth.AuthStatus = StatusFailed
			st.Auth.Error = msg
			st.Auth.Token = ""
			st.Auth.User = nil
			st.Auth.Authenticated = TriFalse
		},
	)
}

func (s *Store) LoginUser(ctx context.Context, email, password string) error {
	if err := validate.Login(email, password); err != nil {
		return err
	}
	return runThunk(s, ctx, "auth/loginUser",
		func(ctx context.Context) (api.AuthPayload, error) {
			p, err := s.api.Login(ctx, email, password)
			if err != nil {
				return p, err
			}
			s.persistToken(p.Token)
			return p, nil
		},
		func(st *State) { st.Auth.AuthStatus = StatusLoading; st.Auth.Error = "" },
		func(st *State, p api.AuthPayload) {
			st.Auth.AuthStatus = StatusSucceeded
			st.Auth.Token = p.Token
			st.Auth.User = &p.User
			st.Auth.Authenticated = TriTrue
		},
		func(st *State, msg string) {
			st.Auth.AuthStatus = StatusFailed
			st.Auth.Error = msg
		},
	)
}

// LogoutUser 成功才抹掉本地凭证；请求失败时凭证保留，可重试。
func (s *Store) LogoutUser(ctx context.Context) error {
	return runThunk(s, ctx, "auth/logoutUser",
		func(ctx context.Context) (struct{}, error) {
			if err := s.api.Logout(ctx); err != nil {
				return struct{}{}, err
			}
			s.eraseToken()
			return struct{}{}, nil
		},
		func(st *State) { st.Auth.AuthStatus = StatusLoading; st.Auth.Error = "" },
		func(st *State, _ struct{}) {
			st.Auth.AuthStatus = StatusIdle
			st.Auth.Token = ""
			st.Auth.User = nil
			st.Auth.Authenticated = TriFalse
		},
		func(st *State, msg string) {
			st.Auth.AuthStatus = StatusFailed
			st.Auth.Error = msg
		},
	)
}

// FetchCurrentUser 启动时恢复会话。rejected 即视为未登录并丢掉凭证。
func (s *Store) FetchCurrentUser(ctx context.Context) error {
	return runThunk(s, ctx, "auth/fetchUser",
		func(ctx context.Context) (domain.User, error) { return s.api.CurrentUser(ctx) },
		func(st *State) { st.Auth.FetchStatus = StatusLoading; st.Auth.Error = "" },
		func(st *State, u domain.User) {
			st.Auth.FetchStatus = StatusSucceeded
			st.Auth.User = &u
			st.Auth.Authenticated = TriTrue
			if s.local != nil {
				st.Auth.Token = s.local.Token()
			}
		},
		func(st *State, _ string) {
			st.Auth.FetchStatus = StatusFailed
			st.Auth.Token = ""
			st.Auth.User = nil
			st.Auth.Authenticated = TriFalse
		},
	)
}

// ClearAuthState 同步复位（路由守卫在 401 后用）。
func (s *Store) ClearAuthState() {
	s.mutate("auth/clearAuthState", func(st *State) {
		st.Auth = AuthState{Authenticated: TriFalse}
	})
}

func (s *Store) persistToken(tok string) {
	if s.local == nil {
		return
	}
	if err := s.local.Set(localstore.TokenKey, tok); err != nil {
		s.log.Warn("persist token failed", zap.Error(err))
	}
}

func (s *Store) eraseToken() {
	if s.local == nil {
		return
	}
	if err := s.local.Remove(localstore.TokenKey); err != nil {
		s.log.Warn("erase token failed", zap.Error(err))
	}
}
