package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
)

// lower is shared by the visibility and search filters so both agree on what
// "case-insensitive" means. cases.Caser is stateful, so each call gets a copy.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Visible applies the company scope of the signed in profile. HR sees every
// candidate, COMPANY only those whose company equals its own ignoring case,
// and nobody sees anything without a profile.
func Visible(all []domain.Candidate, p *domain.UserProfile) []domain.Candidate {
	if p == nil {
		return nil
	}
	if !p.Scoped() {
		return all
	}

	want := lower(p.Company)
	out := make([]domain.Candidate, 0, len(all))
	for _, c := range all {
		if lower(c.Company) == want {
			out = append(out, c)
		}
	}
	return out
}

// CanSee reports whether the candidate passes the profile's visibility filter.
func CanSee(c domain.Candidate, p *domain.UserProfile) bool {
	return len(Visible([]domain.Candidate{c}, p)) == 1
}

// Search keeps candidates whose name, role or company contains query,
// ignoring case. An empty query keeps everything.
func Search(cs []domain.Candidate, query string) []domain.Candidate {
	if query == "" {
		return cs
	}

	q := lower(query)
	out := make([]domain.Candidate, 0, len(cs))
	for _, c := range cs {
		if strings.Contains(lower(c.Name), q) ||
			strings.Contains(lower(c.Role), q) ||
			strings.Contains(lower(c.Company), q) {
			out = append(out, c)
		}
	}
	return out
}

// Filter is Visible followed by Search.
func Filter(all []domain.Candidate, p *domain.UserProfile, query string) []domain.Candidate {
	return Search(Visible(all, p), query)
}
