package store

import (
	"context"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
)

// Store is the root data access interface. The only driver today keeps
// everything in process memory, anything persistent would sit beside it
// under drivers/.
type Store interface {
	Candidates() Candidates

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error

	Close() error
}

// Candidates owns the ordered candidate sequence, newest first.
type Candidates interface {
	// List returns a copy of every candidate in sequence order.
	List(ctx context.Context) []domain.Candidate

	// Get looks a candidate up by id.
	Get(ctx context.Context, id string) (domain.Candidate, bool)

	// Add builds a candidate from in with a fresh id and today's date and
	// puts it at the front of the sequence. It performs no validation.
	Add(ctx context.Context, in domain.NewCandidate) domain.Candidate

	// MoveStage steps the candidate one stage in direction d. Unknown ids
	// and moves past either end of the pipeline leave everything as is.
	// found is false only for unknown ids, moved is false for any no-op.
	MoveStage(ctx context.Context, id string, d domain.Direction) (c domain.Candidate, found, moved bool)

	Len(ctx context.Context) int
}
