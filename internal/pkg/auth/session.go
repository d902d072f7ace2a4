package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

const adminSubject = "admin"

// Options tune session token issuing.
type Options struct {
	TTL time.Duration
}

// SessionStrategy issues and verifies HMAC-signed admin session tokens and
// derives stable shopper keys from opaque backend bearer tokens.
type SessionStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionStrategy builds SessionStrategy with provided secret and options.
func NewSessionStrategy(secret string, opts Options) *SessionStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueAdminToken generates a signed admin session token.
func (s *SessionStrategy) IssueAdminToken() (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", adminSubject, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseAdminToken validates an admin session token.
func (s *SessionStrategy) ParseAdminToken(token string) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] != adminSubject {
		return ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return ErrInvalidToken
	}

	return nil
}

// ShopperKey derives the cart storage key for a shopper from their backend
// bearer token. The raw token never reaches the cart store.
func (s *SessionStrategy) ShopperKey(bearerToken string) string {
	return s.sign("shopper:" + bearerToken)
}

func (s *SessionStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
