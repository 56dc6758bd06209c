package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hirejoy/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := idx.Parse("  ")
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestGeneratorUsesClock(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	gen := idx.NewULIDGenerator(func() time.Time { return tm })

	id := idx.ID(gen.NewID())
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
}

func TestGeneratorIsMonotonic(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	gen := idx.NewULIDGenerator(func() time.Time { return tm })

	// Same millisecond, the monotonic entropy still has to keep them ordered
	a := gen.NewID()
	b := gen.NewID()
	require.Less(t, a, b)
}

func TestSequence(t *testing.T) {
	seq := idx.NewSequence("c", 5)

	require.Equal(t, "c5", seq.NewID())
	require.Equal(t, "c6", seq.NewID())
	require.Equal(t, "c7", seq.NewID())
}
