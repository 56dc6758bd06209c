package view

import (
	"errors"
	"strings"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
)

type Mode string

const (
	ModeSections Mode = "sections"
	ModeBoard    Mode = "board"
	ModeList     Mode = "list"
)

var ErrUnknownMode = errors.New("view: unknown mode")

// ParseMode accepts the three mode names in any case. "grid" is kept as an
// alias for list.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeSections):
		return ModeSections, nil
	case string(ModeBoard):
		return ModeBoard, nil
	case string(ModeList), "grid":
		return ModeList, nil
	default:
		return "", ErrUnknownMode
	}
}

// Stats summarises the filtered set. Total is always Active+Offers.
type Stats struct {
	Total  int
	Active int
	Offers int
}

// Summarize counts offers and derives the rest from them.
func Summarize(cs []domain.Candidate) Stats {
	var offers int
	for _, c := range cs {
		if c.Stage.IsOffer() {
			offers++
		}
	}
	return Stats{
		Total:  len(cs),
		Active: len(cs) - offers,
		Offers: offers,
	}
}

// Input is everything a projection depends on.
type Input struct {
	Candidates []domain.Candidate
	Profile    *domain.UserProfile
	Query      string
	Mode       Mode
	Collapsed  map[string]bool
}

// Projection is the read model handed to the presentation layer. Only the
// field matching Mode is filled.
type Projection struct {
	Mode     Mode
	Query    string
	Stats    Stats
	Sections []CompanySection
	Columns  []StageColumn
	List     []domain.Candidate
}

// Derive filters the candidates and builds the projection for in.Mode. It
// has no side effects. Anything but board or list means sections.
func Derive(in Input) Projection {
	filtered := Filter(in.Candidates, in.Profile, in.Query)

	p := Projection{
		Mode:  in.Mode,
		Query: in.Query,
		Stats: Summarize(filtered),
	}

	switch in.Mode {
	case ModeBoard:
		p.Columns = GroupByStage(filtered)
	case ModeList:
		p.List = filtered
	default:
		p.Mode = ModeSections
		p.Sections = GroupByCompanyRole(filtered, in.Collapsed)
	}
	return p
}
