package service

import (
	"context"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

type CandidateService struct {
	Store store.Store
}

// Add puts a new candidate at the front of the pipeline.
func (s *CandidateService) Add(ctx context.Context, in domain.NewCandidate) domain.Candidate {
	c := s.Store.Candidates().Add(ctx, in)
	slogx.FromContext(ctx).Info("candidate added", "candidate_id", c.ID, "company", c.Company, "stage", c.Stage)
	return c
}

// MoveResult tells the caller what a move did.
type MoveResult struct {
	Candidate domain.Candidate
	Found     bool
	Moved     bool
}

// Move steps a candidate visible to viewer one stage along. Candidates the
// viewer cannot see are treated like unknown ids, nothing happens.
func (s *CandidateService) Move(ctx context.Context, viewer *domain.UserProfile, id string, d domain.Direction) MoveResult {
	l := slogx.FromContext(ctx)
	repo := s.Store.Candidates()

	c, ok := repo.Get(ctx, id)
	if !ok || !view.CanSee(c, viewer) {
		l.Debug("move ignored, candidate not visible", "candidate_id", id)
		return MoveResult{}
	}

	c, found, moved := repo.MoveStage(ctx, id, d)
	if moved {
		l.Info("candidate moved", "candidate_id", id, "direction", d, "stage", c.Stage)
	}
	return MoveResult{Candidate: c, Found: found, Moved: moved}
}

// List returns the candidates visible to viewer that match query, along with
// their summary.
func (s *CandidateService) List(ctx context.Context, viewer *domain.UserProfile, query string) ([]domain.Candidate, view.Stats) {
	cs := view.Filter(s.Store.Candidates().List(ctx), viewer, query)
	return cs, view.Summarize(cs)
}
