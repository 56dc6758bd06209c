package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/hirejoy/pkg/cryptox"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer is anything that can sign session tokens.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// EdDSAKey is an Ed25519 key pair that both signs and verifies. Keys are
// generated per process, every token dies with a restart just like the data.
type EdDSAKey struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
	now    func() time.Time
}

// NewEdDSAKey generates a fresh Ed25519 key pair. An empty kid is derived
// from the public key.
func NewEdDSAKey(kid, issuer string) (*EdDSAKey, error) {
	pub, priv, err := cryptox.GenerateEd25519()
	if err != nil {
		return nil, fmt.Errorf("jwtx: %w", err)
	}
	if kid == "" {
		kid = cryptox.KeyID(pub)
	}
	return &EdDSAKey{
		kid:    kid,
		key:    priv,
		pub:    pub,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the key that checks expiry against now.
func (k *EdDSAKey) WithClock(now func() time.Time) *EdDSAKey {
	cp := *k
	cp.now = now
	return &cp
}

func (k *EdDSAKey) KID() string { return k.kid }

// Sign turns the claims into a signed JWT string.
func (k *EdDSAKey) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = k.kid
	return t.SignedString(k.key)
}

// Verify checks signature, kid, issuer and the validity window.
func (k *EdDSAKey) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithTimeFunc(k.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != k.kid {
			return nil, ErrUnknownKID
		}
		return k.pub, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(k.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryAt(k.now()); err != nil {
		return Claims{}, err
	}
	return *claims, nil
}
