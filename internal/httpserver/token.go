// internal/httpserver/token.go
//
// Round tokens: HS256 JWTs binding a client to one round.
// Responsibilities:
//   - Issue a token (sub = round ID) when a round is created.
//   - Verify bearer tokens on /rounds/{id}/* and check they match {id}.
//
// Notes:
//   - Tokens are stateless; losing the process loses the rounds anyway.
//   - ROUND_SECRET falls back to a dev secret (see main.go).

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "wordhunt"

var ErrTokenSubject = errors.New("token has no round")

// Tokens signs and verifies round tokens.
type Tokens struct {
	Secret []byte
	TTL    time.Duration
}

// Issue returns a signed token for roundID and its expiry.
func (t Tokens) Issue(roundID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.TTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   roundID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.Secret)
	return ss, exp, err
}

// Verify checks signature, issuer and expiry and returns the round ID.
func (t Tokens) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrTokenSubject
	}
	return claims.Subject, nil
}

// bearerToken extracts "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

type ctxRoundKey struct{}

// requireRound enforces a valid token whose subject is the {id} URL param.
func (s *Server) requireRound() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r)
			if tok == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			id, err := s.tokens.Verify(tok)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			if id != chi.URLParam(r, "id") {
				http.Error(w, `{"error":"Forbidden"}`, http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// roundID returns the round ID placed in the context by requireRound.
func roundID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRoundKey{}).(string)
	return id
}
