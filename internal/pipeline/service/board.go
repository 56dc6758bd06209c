package service

import (
	"context"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
)

// BoardService assembles the projection for a viewer from the store and the
// active session's view state.
type BoardService struct {
	Store store.Store
	Views *ViewStateService
}

func (s *BoardService) Projection(ctx context.Context, viewer *domain.UserProfile) (view.Projection, error) {
	if viewer == nil {
		return view.Projection{}, ErrNoSession
	}

	state := s.Views.Snapshot()
	return view.Derive(view.Input{
		Candidates: s.Store.Candidates().List(ctx),
		Profile:    viewer,
		Query:      state.Query,
		Mode:       state.Mode,
		Collapsed:  state.Collapsed,
	}), nil
}
