package idx

import (
	"crypto/rand"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero represents the zero value ID, don't use this unless its a placeholder.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

// Generator hands out identifiers. Stores and services take one of these so
// tests can swap in a predictable sequence.
type Generator interface {
	NewID() string
}

var (
	globalOnce sync.Once
	global     *ULIDGenerator
)

// ULIDGenerator safely generates ULIDs concurrently using a monotonic source.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDGenerator returns a generator backed by crypto/rand. A nil clock
// means time.Now.
func NewULIDGenerator(now func() time.Time) *ULIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     now,
	}
}

// NewID implements Generator.
func (g *ULIDGenerator) NewID() string {
	return g.NewAt(g.now().UTC()).String()
}

// NewAt generates an ID at the provided time (UTC).
func (g *ULIDGenerator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	global = NewULIDGenerator(nil)
}

// New returns a new lexicographically sortable ULID-based ID using the
// current time in UTC.
func New() ID {
	globalOnce.Do(initGlobal)
	return ID(global.NewID())
}

// Default returns the process wide ULID generator.
func Default() Generator {
	globalOnce.Do(initGlobal)
	return global
}

// Parse parses a ULID string into an ID and validates its form.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}

	return ID(s), nil
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp from the ID.
// If the ID is invalid or zero, it returns the zero time.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}

	return ulid.Time(u.Time())
}

// Sequence is a Generator producing prefix+1, prefix+2, ... Handy in tests
// where ids need to be asserted on.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence starts a sequence whose first id is prefix+strconv.Itoa(start).
func NewSequence(prefix string, start int) *Sequence {
	return &Sequence{prefix: prefix, next: start}
}

// NewID implements Generator.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}
