package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/pkg/idx"
)

var ErrClosed = errors.New("memory: store closed")

// Store is an in-process store.Store. A single mutex serialises every
// mutation so requests are applied one at a time in arrival order.
type Store struct {
	mu         sync.RWMutex
	candidates []domain.Candidate
	closed     bool

	ids idx.Generator
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

type Option func(*Store)

// WithIDGenerator replaces the default ULID generator.
func WithIDGenerator(g idx.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock replaces time.Now for applied dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCandidates seeds the store. The slice is copied.
func WithCandidates(cs []domain.Candidate) Option {
	return func(s *Store) { s.candidates = slices.Clone(cs) }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		ids: idx.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Candidates() store.Candidates { return candidates{s} }

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
