package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	"github.com/aussiebroadwan/hirejoy/pkg/idx"
	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrCompanyMissing = errors.New("company is required for COMPANY logins")
)

// LoginInput is what the login form collects. There is no password, the
// profile is fabricated from these fields.
type LoginInput struct {
	Email   string
	Role    domain.Role
	Company string
}

// Session is the result of a login.
type Session struct {
	ID        string
	Profile   domain.UserProfile
	Token     string
	ExpiresAt time.Time
}

// SessionService holds the single active profile. Logging in replaces
// whoever was signed in, logging out leaves nobody.
type SessionService struct {
	Signer jwtx.Signer
	IDs    idx.Generator
	Views  *ViewStateService // reset whenever the session changes

	Issuer string
	TTL    time.Duration
	Delay  time.Duration // cosmetic pause before a login takes effect
	Now    func() time.Time

	mu     sync.RWMutex
	active *Session
}

// Login fabricates a profile for in and makes it the active session.
// A context cancelled during the delay leaves the current session untouched.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (Session, error) {
	l := slogx.FromContext(ctx)

	company := strings.TrimSpace(in.Company)
	if in.Role != domain.RoleCompany {
		company = ""
	} else if company == "" {
		return Session{}, ErrCompanyMissing
	}

	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Session{}, ctx.Err()
		case <-t.C:
		}
	}

	now := s.now()
	profile := domain.UserProfile{
		ID:      s.IDs.NewID(),
		Name:    domain.DisplayName(in.Role, company),
		Email:   in.Email,
		Role:    in.Role,
		Company: company,
		Avatar:  domain.AvatarURL(in.Email),
	}
	sess := Session{
		ID:        s.IDs.NewID(),
		Profile:   profile,
		ExpiresAt: now.Add(s.ttl()),
	}

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(
		profile.ID, sess.ID,
		string(profile.Role), profile.Company, profile.Name, profile.Email,
		s.Issuer, s.ttl(), now,
	))
	if err != nil {
		l.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}
	sess.Token = token

	s.mu.Lock()
	replaced := s.active
	s.active = &sess
	if s.Views != nil {
		s.Views.Reset()
	}
	s.mu.Unlock()

	if replaced != nil {
		l.Info("session replaced", "old_sid", replaced.ID, "sid", sess.ID)
	}
	l.Info("session started", "sid", sess.ID, "role", profile.Role, "company", profile.Company)
	return sess, nil
}

// Logout clears the active session. It is a no-op when nobody is signed in.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	old := s.active
	s.active = nil
	if s.Views != nil {
		s.Views.Reset()
	}
	s.mu.Unlock()

	if old != nil {
		slogx.FromContext(ctx).Info("session ended", "sid", old.ID)
	}
}

// Current returns the active profile, ok is false when logged out.
func (s *SessionService) Current() (domain.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return domain.UserProfile{}, false
	}
	return s.active.Profile, true
}

// Check accepts claims only while their session is the active one. It plugs
// into httpx.AuthnMiddleware.
func (s *SessionService) Check(_ context.Context, c jwtx.Claims) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil || s.active.ID != c.SID {
		return ErrNoSession
	}
	return nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}
