package store

import (
	"context"

	"quickbite-client/internal/domain"
	"quickbite-client/internal/validate"
)

type CommentsState struct {
	Items  []domain.Comment
	Status Status
	Error  string
}

func (s *Store) FetchComments(ctx context.Context, produitID int64) error {
	return runThunk(s, ctx, "comments/fetchComments",
		func(ctx context.Context) ([]domain.Comment, error) { return s.api.ListComments(ctx, produitID) },
		func(st *State) { st.Comments.Status = StatusLoading; st.Comments.Error = "" },
		func(st *State, items []domain.Comment) {
			st.Comments.Status = StatusSucceeded
			st.Comments.Items = items
		},
		func(st *State, msg string) {
			st.Comments.Status = StatusFailed
			st.Comments.Error = msg
		},
	)
}

// SubmitComment 先本地校验（rating 1..5、内容非空），不合法直接返回，
// 不产生 pending，也不碰 slice 状态——校验错误属于表单，不属于集合。
func (s *Store) SubmitComment(ctx context.Context, produitID int64, content string, rating int) error {
	if err := validate.Comment(produitID, content, rating); err != nil {
		return err
	}
	return runThunk(s, ctx, "comments/submitComment",
		func(ctx context.Context) (domain.Comment, error) {
			return s.api.CreateComment(ctx, produitID, content, rating)
		},
		func(st *State) { st.Comments.Status = StatusLoading; st.Comments.Error = "" },
		func(st *State, cm domain.Comment) {
			st.Comments.Status = StatusSucceeded
			st.Comments.Items = append(st.Comments.Items, cm)
		},
		func(st *State, msg string) {
			st.Comments.Status = StatusFailed
			st.Comments.Error = msg
		},
	)
}

func (s *Store) ResetCommentsError() {
	s.mutate("comments/resetError", func(st *State) { st.Comments.Error = "" })
}
