package http

import (
	"context"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
	"github.com/aussiebroadwan/hirejoy/pkg/httpx"
	"github.com/aussiebroadwan/hirejoy/pkg/pipelinesdk"
)

// viewerFromContext rebuilds the caller's profile from the verified token so
// a request keeps the identity it was authenticated with.
func viewerFromContext(ctx context.Context) (*domain.UserProfile, bool) {
	c, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		return nil, false
	}
	role, err := domain.ParseRole(c.Role)
	if err != nil {
		return nil, false
	}
	return &domain.UserProfile{
		ID:      c.Subject,
		Name:    c.Name,
		Email:   c.Email,
		Role:    role,
		Company: c.Company,
		Avatar:  domain.AvatarURL(c.Email),
	}, true
}

func toProfile(p domain.UserProfile) pipelinesdk.Profile {
	return pipelinesdk.Profile{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Role:    string(p.Role),
		Company: p.Company,
		Avatar:  p.Avatar,
	}
}

func toCandidate(c domain.Candidate) pipelinesdk.Candidate {
	return pipelinesdk.Candidate{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Role:        c.Role,
		Company:     c.Company,
		Stage:       c.Stage.String(),
		AppliedDate: c.AppliedDate.Format(pipelinesdk.DateLayout),
		Avatar:      c.Avatar,
		Notes:       c.Notes,
	}
}

// toCandidates never returns nil so empty groups encode as [].
func toCandidates(cs []domain.Candidate) []pipelinesdk.Candidate {
	out := make([]pipelinesdk.Candidate, len(cs))
	for i, c := range cs {
		out[i] = toCandidate(c)
	}
	return out
}

func toStageDescriptor(d domain.StageDescriptor) pipelinesdk.StageDescriptor {
	return pipelinesdk.StageDescriptor{
		Order:       int(d.Stage),
		Name:        d.Name,
		Icon:        d.Icon,
		Color:       d.Color,
		Description: d.Description,
	}
}

func toStats(s view.Stats) pipelinesdk.Stats {
	return pipelinesdk.Stats{Total: s.Total, Active: s.Active, Offers: s.Offers}
}

func toProjection(p view.Projection) pipelinesdk.ProjectionResponse {
	out := pipelinesdk.ProjectionResponse{
		Mode:  string(p.Mode),
		Query: p.Query,
		Stats: toStats(p.Stats),
	}

	switch p.Mode {
	case view.ModeBoard:
		out.Columns = make([]pipelinesdk.StageColumn, len(p.Columns))
		for i, col := range p.Columns {
			out.Columns[i] = pipelinesdk.StageColumn{
				Stage:      toStageDescriptor(col.Stage),
				Candidates: toCandidates(col.Candidates),
			}
		}
	case view.ModeList:
		out.List = toCandidates(p.List)
	default:
		out.Sections = make([]pipelinesdk.CompanySection, len(p.Sections))
		for i, sec := range p.Sections {
			roles := make([]pipelinesdk.RoleGroup, len(sec.Roles))
			for j, g := range sec.Roles {
				roles[j] = pipelinesdk.RoleGroup{
					Key:        g.Key,
					Role:       g.Role,
					Expanded:   g.Expanded,
					Candidates: toCandidates(g.Candidates),
				}
			}
			out.Sections[i] = pipelinesdk.CompanySection{Company: sec.Company, Roles: roles}
		}
	}

	return out
}
