package domain

import (
	"errors"
	"strings"
)

// Stage is a step of the hiring pipeline. The numeric order is the pipeline
// order, moving "next" means Stage+1.
type Stage int

const (
	StageApplied Stage = iota
	StageScreening
	StageTechnical
	StageCulture
	StageJobOffer

	stageCount
)

var ErrUnknownStage = errors.New("domain: unknown stage")

// Stages lists every stage in pipeline order.
var Stages = [stageCount]Stage{
	StageApplied,
	StageScreening,
	StageTechnical,
	StageCulture,
	StageJobOffer,
}

// StageDescriptor is what the board needs to draw a stage.
type StageDescriptor struct {
	Stage       Stage  `json:"stage"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// A stage added without a descriptor leaves this array shorter than
// stageCount and the length check below stops compiling.
var descriptors = [...]StageDescriptor{
	StageApplied:   {StageApplied, "Applied", "clock", "blue", "Initial application received"},
	StageScreening: {StageScreening, "Screening", "search", "purple", "Initial HR screening call"},
	StageTechnical: {StageTechnical, "Technical", "briefcase", "amber", "Technical assessment or interview"},
	StageCulture:   {StageCulture, "Culture", "user", "rose", "Team and culture fit interview"},
	StageJobOffer:  {StageJobOffer, "Job Offer", "check-circle", "emerald", "Final offer extended"},
}

var _ = [1]struct{}{}[len(descriptors)-int(stageCount)]

// Valid reports whether s is one of the enumerated stages.
func (s Stage) Valid() bool { return s >= 0 && s < stageCount }

// Descriptor returns the display descriptor, ok is false for invalid stages.
func (s Stage) Descriptor() (StageDescriptor, bool) {
	if !s.Valid() {
		return StageDescriptor{}, false
	}
	return descriptors[s], true
}

func (s Stage) String() string {
	if d, ok := s.Descriptor(); ok {
		return d.Name
	}
	return "Unknown"
}

// Next returns the following stage. ok is false at Job Offer.
func (s Stage) Next() (Stage, bool) { return s.step(1) }

// Prev returns the preceding stage. ok is false at Applied.
func (s Stage) Prev() (Stage, bool) { return s.step(-1) }

func (s Stage) step(delta int) (Stage, bool) {
	n := s + Stage(delta)
	if !s.Valid() || !n.Valid() {
		return s, false
	}
	return n, true
}

// IsOffer reports whether the stage is the terminal offer stage.
func (s Stage) IsOffer() bool { return s == StageJobOffer }

// ParseStage maps a display name ("Job Offer") back to its stage. Matching
// ignores case and surrounding whitespace.
func ParseStage(name string) (Stage, error) {
	name = strings.TrimSpace(name)
	for _, d := range descriptors {
		if strings.EqualFold(d.Name, name) {
			return d.Stage, nil
		}
	}
	return 0, ErrUnknownStage
}

// Descriptors returns a copy of all descriptors in pipeline order.
func Descriptors() []StageDescriptor {
	out := make([]StageDescriptor, len(descriptors))
	copy(out, descriptors[:])
	return out
}

func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnknownStage
	}
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	parsed, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Direction is the way a candidate moves through the pipeline.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

var ErrUnknownDirection = errors.New("domain: unknown direction")

// ParseDirection accepts "next" or "prev".
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionNext:
		return DirectionNext, nil
	case DirectionPrev:
		return DirectionPrev, nil
	default:
		return "", ErrUnknownDirection
	}
}

// Move applies the direction to s. Moving past either end leaves s unchanged
// and reports false.
func (s Stage) Move(d Direction) (Stage, bool) {
	switch d {
	case DirectionNext:
		return s.Next()
	case DirectionPrev:
		return s.Prev()
	default:
		return s, false
	}
}
