package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store/drivers/memory"
	"github.com/aussiebroadwan/hirejoy/pkg/idx"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)

func newSeededStore() *memory.Store {
	return memory.NewStore(
		memory.WithCandidates(domain.SeedCandidates()),
		memory.WithIDGenerator(idx.NewSequence("new-", 1)),
		memory.WithClock(func() time.Time { return fixedNow }),
	)
}

func TestAddPrependsWithFreshID(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore()
	repo := st.Candidates()

	before := repo.List(ctx)

	c := repo.Add(ctx, domain.NewCandidate{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Role:    "Software Engineer",
		Company: "Acme",
		Stage:   domain.StageScreening,
	})

	require.Equal(t, "new-1", c.ID)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), c.AppliedDate)
	require.Equal(t, domain.AvatarURL("Jane Doe"), c.Avatar)
	require.Equal(t, domain.StageScreening, c.Stage)

	after := repo.List(ctx)
	require.Len(t, after, len(before)+1)
	require.Equal(t, c, after[0])
	require.Equal(t, before, after[1:])

	for _, old := range before {
		require.NotEqual(t, old.ID, c.ID)
	}
}

func TestAddWithULIDsNeverCollides(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore(memory.WithCandidates(domain.SeedCandidates())).Candidates()

	seen := map[string]struct{}{}
	for _, c := range repo.List(ctx) {
		seen[c.ID] = struct{}{}
	}

	for range 50 {
		c := repo.Add(ctx, domain.NewCandidate{Name: "x", Role: "r", Company: "c"})
		_, dup := seen[c.ID]
		require.False(t, dup)
		seen[c.ID] = struct{}{}
	}
	require.Equal(t, 54, repo.Len(ctx))
}

func TestMoveStage(t *testing.T) {
	ctx := context.Background()

	t.Run("prev from job offer walks back", func(t *testing.T) {
		repo := newSeededStore().Candidates()

		c, found, moved := repo.MoveStage(ctx, "3", domain.DirectionPrev)
		require.True(t, found)
		require.True(t, moved)
		require.Equal(t, domain.StageCulture, c.Stage)

		c, _, _ = repo.MoveStage(ctx, "3", domain.DirectionPrev)
		require.Equal(t, domain.StageTechnical, c.Stage)
	})

	t.Run("next until job offer then no-op", func(t *testing.T) {
		repo := newSeededStore().Candidates()

		// Candidate 2 starts at Applied
		for range len(domain.Stages) - 1 {
			_, _, moved := repo.MoveStage(ctx, "2", domain.DirectionNext)
			require.True(t, moved)
		}
		c, _ := repo.Get(ctx, "2")
		require.Equal(t, domain.StageJobOffer, c.Stage)

		c, found, moved := repo.MoveStage(ctx, "2", domain.DirectionNext)
		require.True(t, found)
		require.False(t, moved)
		require.Equal(t, domain.StageJobOffer, c.Stage)
	})

	t.Run("prev from applied is a no-op", func(t *testing.T) {
		repo := newSeededStore().Candidates()
		before := repo.List(ctx)

		_, found, moved := repo.MoveStage(ctx, "2", domain.DirectionPrev)
		require.True(t, found)
		require.False(t, moved)
		require.Equal(t, before, repo.List(ctx))
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		repo := newSeededStore().Candidates()
		before := repo.List(ctx)

		_, found, moved := repo.MoveStage(ctx, "does-not-exist", domain.DirectionNext)
		require.False(t, found)
		require.False(t, moved)
		require.Equal(t, before, repo.List(ctx))
	})

	t.Run("only the stage of the target changes", func(t *testing.T) {
		repo := newSeededStore().Candidates()
		before := repo.List(ctx)

		repo.MoveStage(ctx, "1", domain.DirectionNext)
		after := repo.List(ctx)

		require.Len(t, after, len(before))
		for i := range before {
			if before[i].ID == "1" {
				want := before[i]
				want.Stage = domain.StageCulture
				require.Equal(t, want, after[i])
				continue
			}
			require.Equal(t, before[i], after[i])
		}
	})
}

func TestListIsASnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore().Candidates()

	list := repo.List(ctx)
	list[0].Stage = domain.StageApplied

	c, ok := repo.Get(ctx, list[0].ID)
	require.True(t, ok)
	require.Equal(t, domain.StageTechnical, c.Stage)
}

func TestPingAfterClose(t *testing.T) {
	st := newSeededStore()
	require.NoError(t, st.Ping(context.Background()))
	require.NoError(t, st.Close())
	require.ErrorIs(t, st.Ping(context.Background()), memory.ErrClosed)
}
