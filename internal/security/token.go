package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// The session token is a compact HS256 JWT produced by this package rather
// than a JWT library. The dashboard's admin_token cookie format predates this
// service and standard tooling must keep accepting it, which the interop
// tests pin down.

var (
	ErrMalformedToken    = errors.New("malformed token")
	ErrSignatureMismatch = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
)

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Claims is the payload carried by an admin session token.
type Claims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Iat   int64  `json:"iat"`
	Exp   int64  `json:"exp"`
}

// SignToken encodes and signs claims with the given secret. Iat and Exp are
// stamped here; any values already present on the claims are overwritten.
func SignToken(claims Claims, secret string, ttl time.Duration) (string, error) {
	now := time.Now().Unix()
	claims.Iat = now
	claims.Exp = now + int64(ttl.Seconds())

	headerJSON, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("encode header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("encode claims: %w", err)
	}

	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(claimsJSON)

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sign(signingInput, secret)), nil
}

// VerifyToken checks the shape, signature and expiry of a token and returns
// its claims. All failure paths return an error, never a panic; callers treat
// any error as "unauthenticated".
func VerifyToken(token, secret string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrMalformedToken
	}
	expected := sign(parts[0]+"."+parts[1], secret)
	if !hmac.Equal(signature, expected) {
		return nil, ErrSignatureMismatch
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrMalformedToken
	}

	// exp == now is still valid; the boundary is the moment of expiry.
	if claims.Exp != 0 && claims.Exp < time.Now().Unix() {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}

func sign(input, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(input))
	return mac.Sum(nil)
}
