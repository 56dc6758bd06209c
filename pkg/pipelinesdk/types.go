package pipelinesdk

import (
	"net/mail"
	"strings"
)

// DateLayout is the wire form of a candidate's applied date.
const DateLayout = "2006-01-02"

// Roles accepted by the login endpoint.
const (
	RoleHR      = "HR"
	RoleCompany = "COMPANY"
)

// Directions accepted by the move endpoint.
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// View modes accepted by the mode endpoint.
const (
	ModeSections = "sections"
	ModeBoard    = "board"
	ModeList     = "list"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	// Error is a short machine readable code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when a request body is well formed but
// fields are missing or invalid.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details maps field name to what is wrong with it
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest starts a session. There is no password.
type LoginRequest struct {
	Email string `json:"email"`

	// Role is "HR" or "COMPANY"
	Role string `json:"role"`

	// Company is required when Role is COMPANY and ignored otherwise
	Company string `json:"company,omitempty"`
}

// Validate reports missing or malformed fields, nil when the request is fine.
func (r LoginRequest) Validate() map[string]string {
	errs := map[string]string{}

	if err := validateEmail(r.Email); err != "" {
		errs["email"] = err
	}

	switch strings.ToUpper(strings.TrimSpace(r.Role)) {
	case "":
		errs["role"] = "role is required"
	case RoleHR:
	case RoleCompany:
		if strings.TrimSpace(r.Company) == "" {
			errs["company"] = "company is required for COMPANY logins"
		}
	default:
		errs["role"] = "role must be HR or COMPANY"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Profile is the signed in user.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar"`
}

// SessionResponse is returned from POST /v1/session.
type SessionResponse struct {
	// AccessToken is the bearer token for every other endpoint
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime of the token in seconds
	ExpiresIn int `json:"expires_in"`

	Profile Profile `json:"profile"`
}

// ============================================================================
// Candidate Types
// ============================================================================

// Candidate is a person moving through the pipeline.
type Candidate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`

	// Stage is the stage display name, e.g. "Job Offer"
	Stage string `json:"stage"`

	// AppliedDate uses DateLayout
	AppliedDate string `json:"applied_date"`

	Avatar string `json:"avatar"`
	Notes  string `json:"notes,omitempty"`
}

// AddCandidateRequest is the body of POST /v1/candidates.
type AddCandidateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`

	// Stage defaults to "Applied" when empty
	Stage string `json:"stage,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Validate reports missing required fields. The stage name is checked by
// the server.
func (r AddCandidateRequest) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if err := validateEmail(r.Email); err != "" {
		errs["email"] = err
	}
	if strings.TrimSpace(r.Role) == "" {
		errs["role"] = "role is required"
	}
	if strings.TrimSpace(r.Company) == "" {
		errs["company"] = "company is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// MoveRequest is the body of POST /v1/candidates/{id}/move.
type MoveRequest struct {
	// Direction is "next" or "prev"
	Direction string `json:"direction"`
}

// Stats summarises a filtered set of candidates.
type Stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Offers int `json:"offers"`
}

// CandidateListResponse is returned from GET /v1/candidates.
type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
	Stats      Stats       `json:"stats"`
}

// ============================================================================
// Board Types
// ============================================================================

// StageDescriptor is how a stage is drawn.
type StageDescriptor struct {
	// Order is the position in the pipeline, starting at 0 for Applied
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// StagesResponse is returned from GET /v1/stages.
type StagesResponse struct {
	Stages []StageDescriptor `json:"stages"`
}

// RoleGroup is one collapsible company/role group in the sections view.
type RoleGroup struct {
	// Key identifies the group for ToggleGroupRequest
	Key        string      `json:"key"`
	Role       string      `json:"role"`
	Expanded   bool        `json:"expanded"`
	Candidates []Candidate `json:"candidates"`
}

// CompanySection groups role groups under a company.
type CompanySection struct {
	Company string      `json:"company"`
	Roles   []RoleGroup `json:"roles"`
}

// StageColumn is one column of the board view.
type StageColumn struct {
	Stage      StageDescriptor `json:"stage"`
	Candidates []Candidate     `json:"candidates"`
}

// ProjectionResponse is what the board renders. Only the field matching
// Mode is populated.
type ProjectionResponse struct {
	Mode     string           `json:"mode"`
	Query    string           `json:"query"`
	Stats    Stats            `json:"stats"`
	Sections []CompanySection `json:"sections,omitempty"`
	Columns  []StageColumn    `json:"columns,omitempty"`
	List     []Candidate      `json:"list,omitempty"`
}

// SearchRequest is the body of PUT /v1/board/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// ModeRequest is the body of PUT /v1/board/mode.
type ModeRequest struct {
	// Mode is "sections", "board" or "list"
	Mode string `json:"mode"`
}

// ToggleGroupRequest names a group either by its key or by company and role.
type ToggleGroupRequest struct {
	Key     string `json:"key,omitempty"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}

// ToggleGroupResponse reports the group state after the toggle.
type ToggleGroupResponse struct {
	Key      string `json:"key"`
	Expanded bool   `json:"expanded"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual components (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the components /readyz looks at.
type HealthChecks struct {
	// Store indicates whether the candidate store is open
	Store string `json:"store"`

	// Signer indicates the session token signing capability status
	Signer string `json:"signer"`
}

func validateEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "email is not a valid address"
	}
	return ""
}
