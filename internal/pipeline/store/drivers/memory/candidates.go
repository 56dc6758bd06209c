package memory

import (
	"context"
	"slices"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
)

type candidates struct{ s *Store }

func (r candidates) List(_ context.Context) []domain.Candidate {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.candidates)
}

func (r candidates) Get(_ context.Context, id string) (domain.Candidate, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.s.indexOf(id)
	if i < 0 {
		return domain.Candidate{}, false
	}
	return r.s.candidates[i], true
}

func (r candidates) Len(_ context.Context) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.candidates)
}

func (r candidates) Add(_ context.Context, in domain.NewCandidate) domain.Candidate {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := domain.Candidate{
		ID:          r.s.ids.NewID(),
		Name:        in.Name,
		Email:       in.Email,
		Role:        in.Role,
		Company:     in.Company,
		Stage:       in.Stage,
		AppliedDate: domain.DateOf(r.s.now()),
		Avatar:      domain.AvatarURL(in.Name),
		Notes:       in.Notes,
	}

	// Newest first
	r.s.candidates = slices.Insert(r.s.candidates, 0, c)
	return c
}

func (r candidates) MoveStage(_ context.Context, id string, d domain.Direction) (domain.Candidate, bool, bool) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.indexOf(id)
	if i < 0 {
		return domain.Candidate{}, false, false
	}

	c := &r.s.candidates[i]
	next, ok := c.Stage.Move(d)
	if !ok {
		return *c, true, false
	}
	c.Stage = next
	return *c, true, true
}

// indexOf expects the caller to hold the lock.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.candidates, func(c domain.Candidate) bool { return c.ID == id })
}
