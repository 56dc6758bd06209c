package domain

import "time"

// DateLayout is the calendar date format used for applied dates.
const DateLayout = "2006-01-02"

type Candidate struct {
	ID          string
	Name        string
	Email       string
	Role        string // job title applied for
	Company     string
	Stage       Stage
	AppliedDate time.Time // UTC midnight
	Avatar      string
	Notes       string
}

// NewCandidate is the input for adding a candidate. Field presence is checked
// by the caller, nothing here validates.
type NewCandidate struct {
	Name    string
	Email   string
	Role    string
	Company string
	Stage   Stage
	Notes   string
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
