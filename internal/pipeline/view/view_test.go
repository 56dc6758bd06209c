package view_test

import (
	"testing"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
	"github.com/stretchr/testify/require"
)

var (
	hr = &domain.UserProfile{ID: "u1", Name: "Admin User", Role: domain.RoleHR}
)

func company(name string) *domain.UserProfile {
	return &domain.UserProfile{ID: "u2", Name: name + " Manager", Role: domain.RoleCompany, Company: name}
}

func ids(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestVisible(t *testing.T) {
	cs := []domain.Candidate{
		{ID: "a", Company: "ACME"},
		{ID: "b", Company: "Acme Corp"},
		{ID: "c", Company: "acme"},
		{ID: "d", Company: "Globex"},
	}

	t.Run("company match ignores case but not substrings", func(t *testing.T) {
		require.Equal(t, []string{"a", "c"}, ids(view.Visible(cs, company("Acme"))))
	})

	t.Run("hr sees everything", func(t *testing.T) {
		require.Equal(t, []string{"a", "b", "c", "d"}, ids(view.Visible(cs, hr)))
	})

	t.Run("no profile sees nothing", func(t *testing.T) {
		require.Empty(t, view.Visible(cs, nil))
	})

	t.Run("can see single candidate", func(t *testing.T) {
		require.True(t, view.CanSee(cs[0], company("acme")))
		require.False(t, view.CanSee(cs[1], company("acme")))
		require.True(t, view.CanSee(cs[1], hr))
	})
}

func TestSearch(t *testing.T) {
	seed := domain.SeedCandidates()

	t.Run("empty query is identity", func(t *testing.T) {
		require.Equal(t, seed, view.Search(seed, ""))
	})

	t.Run("matches company only", func(t *testing.T) {
		require.Equal(t, []string{"1", "3"}, ids(view.Search(seed, "techflow")))
	})

	t.Run("matches name and role ignoring case", func(t *testing.T) {
		require.Equal(t, []string{"2"}, ids(view.Search(seed, "MICHAEL")))
		require.Equal(t, []string{"4"}, ids(view.Search(seed, "devops")))
		require.Equal(t, []string{"3"}, ids(view.Search(seed, "develop")))
	})

	t.Run("no match", func(t *testing.T) {
		require.Empty(t, view.Search(seed, "zzz"))
	})
}

func TestGroupByCompanyRole(t *testing.T) {
	seed := domain.SeedCandidates()

	sections := view.GroupByCompanyRole(view.Filter(seed, hr, ""), nil)
	require.Len(t, sections, 3)

	require.Equal(t, "TechFlow Inc.", sections[0].Company)
	require.Equal(t, "CreativePulse", sections[1].Company)
	require.Equal(t, "CloudScale", sections[2].Company)

	var techflow int
	for _, g := range sections[0].Roles {
		techflow += len(g.Candidates)
		require.True(t, g.Expanded)
		require.Equal(t, view.GroupKey("TechFlow Inc.", g.Role), g.Key)
	}
	require.Equal(t, 2, techflow)
	require.Len(t, sections[0].Roles, 2)
}

func TestGroupByCompanyRoleKeepsOrderAndCollapse(t *testing.T) {
	cs := []domain.Candidate{
		{ID: "1", Company: "Acme", Role: "Eng"},
		{ID: "2", Company: "Globex", Role: "Eng"},
		{ID: "3", Company: "Acme", Role: "Design"},
		{ID: "4", Company: "Acme", Role: "Eng"},
		{ID: "5", Company: "acme", Role: "Eng"},
	}
	collapsed := map[string]bool{view.GroupKey("Acme", "Design"): true}

	sections := view.GroupByCompanyRole(cs, collapsed)

	// Exact company names, so "acme" is its own section
	require.Len(t, sections, 3)
	require.Equal(t, "Acme", sections[0].Company)
	require.Equal(t, "Globex", sections[1].Company)
	require.Equal(t, "acme", sections[2].Company)

	acme := sections[0].Roles
	require.Len(t, acme, 2)
	require.Equal(t, "Eng", acme[0].Role)
	require.Equal(t, []string{"1", "4"}, ids(acme[0].Candidates))
	require.True(t, acme[0].Expanded)
	require.Equal(t, "Design", acme[1].Role)
	require.False(t, acme[1].Expanded)
}

func TestGroupByStage(t *testing.T) {
	cols := view.GroupByStage(domain.SeedCandidates())
	require.Len(t, cols, len(domain.Stages))

	got := map[string][]string{}
	for i, col := range cols {
		require.Equal(t, domain.Stages[i], col.Stage.Stage)
		got[col.Stage.Name] = ids(col.Candidates)
	}

	require.Equal(t, []string{"2"}, got["Applied"])
	require.Equal(t, []string{"4"}, got["Screening"])
	require.Equal(t, []string{"1"}, got["Technical"])
	require.Empty(t, got["Culture"])
	require.Equal(t, []string{"3"}, got["Job Offer"])
}

func TestSummarize(t *testing.T) {
	seed := domain.SeedCandidates()

	cases := map[string][]domain.Candidate{
		"all":      seed,
		"empty":    nil,
		"techflow": view.Filter(seed, company("techflow inc."), ""),
		"search":   view.Filter(seed, hr, "engineer"),
	}
	for name, cs := range cases {
		t.Run(name, func(t *testing.T) {
			s := view.Summarize(cs)
			require.Equal(t, len(cs), s.Total)
			require.Equal(t, s.Total, s.Active+s.Offers)
		})
	}

	s := view.Summarize(seed)
	require.Equal(t, view.Stats{Total: 4, Active: 3, Offers: 1}, s)
}

func TestDeriveScenarios(t *testing.T) {
	seed := domain.SeedCandidates()

	t.Run("company session scoped to techflow", func(t *testing.T) {
		p := view.Derive(view.Input{
			Candidates: seed,
			Profile:    company("techflow inc."),
			Mode:       view.ModeList,
		})
		require.Equal(t, view.ModeList, p.Mode)
		require.Equal(t, []string{"1", "3"}, ids(p.List))
		require.Equal(t, view.Stats{Total: 2, Active: 1, Offers: 1}, p.Stats)
		require.Nil(t, p.Sections)
		require.Nil(t, p.Columns)
	})

	t.Run("default mode is sections", func(t *testing.T) {
		p := view.Derive(view.Input{Candidates: seed, Profile: hr})
		require.Equal(t, view.ModeSections, p.Mode)
		require.Len(t, p.Sections, 3)
	})

	t.Run("board with search", func(t *testing.T) {
		p := view.Derive(view.Input{
			Candidates: seed,
			Profile:    hr,
			Query:      "CloudScale",
			Mode:       view.ModeBoard,
		})
		require.Equal(t, "CloudScale", p.Query)
		require.Len(t, p.Columns, len(domain.Stages))
		require.Equal(t, []string{"4"}, ids(p.Columns[domain.StageScreening].Candidates))
		require.Equal(t, 1, p.Stats.Total)
	})

	t.Run("logged out projection is empty", func(t *testing.T) {
		p := view.Derive(view.Input{Candidates: seed, Mode: view.ModeList})
		require.Empty(t, p.List)
		require.Equal(t, view.Stats{}, p.Stats)
	})
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]view.Mode{
		"sections": view.ModeSections,
		"Board":    view.ModeBoard,
		"list":     view.ModeList,
		"grid":     view.ModeList,
	} {
		got, err := view.ParseMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := view.ParseMode("table")
	require.ErrorIs(t, err, view.ErrUnknownMode)
}
