package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrDecode marks a session token that could not be parsed.
var ErrDecode = errors.New("malformed session token")

// DecodeError wraps the parser failure for a rejected token.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode session token: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// Claims describes the JWT payload the toolbar reads.
type Claims struct {
	Username        string `json:"username"`
	IsPlatformAdmin bool   `json:"isPlatformAdmin"`
	jwt.RegisteredClaims
}

// IssuedAtTime returns iat, or the zero time when absent.
func (c *Claims) IssuedAtTime() time.Time {
	if c == nil || c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns exp, or the zero time when absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c == nil || c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenDecoder reads claims out of compact JWTs without verifying them.
// The result is fit for display only, never for authorization.
type TokenDecoder struct {
	parser *jwt.Parser
}

// NewTokenDecoder builds a decoder.
func NewTokenDecoder() *TokenDecoder {
	return &TokenDecoder{parser: jwt.NewParser()}
}

// Decode parses raw and returns its claims. Neither the signature nor exp is
// checked. The payload must be a JSON object; individual claims of the wrong
// type are read leniently instead of rejecting the token.
func (d *TokenDecoder) Decode(raw string) (*Claims, error) {
	fields := jwt.MapClaims{}
	_, parts, err := d.parser.ParseUnverified(raw, fields)
	// An unknown or missing alg only matters for verification; the claims are already decoded.
	if err != nil && !isUnverifiableOnly(err) {
		return nil, &DecodeError{Err: err}
	}

	// A literal null payload unmarshals into MapClaims without error.
	payload, err := d.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if !bytes.HasPrefix(bytes.TrimSpace(payload), []byte("{")) {
		return nil, &DecodeError{Err: errPayloadNotObject}
	}

	return claimsFromFields(fields), nil
}

var errPayloadNotObject = errors.New("token payload is not a JSON object")

func claimsFromFields(fields jwt.MapClaims) *Claims {
	claims := &Claims{}
	switch v := fields["username"].(type) {
	case string:
		claims.Username = v
	case float64, json.Number:
		claims.Username = fmt.Sprint(v)
	}
	claims.IsPlatformAdmin, _ = fields["isPlatformAdmin"].(bool)

	// Off-type iat or exp is treated as absent.
	if iat, err := fields.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}
	if exp, err := fields.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	return claims
}

func isUnverifiableOnly(err error) bool {
	return errors.Is(err, jwt.ErrTokenUnverifiable) && !errors.Is(err, jwt.ErrTokenMalformed)
}
