package auth

import (
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
)

// AdminGuard validates the shared admin key against its bcrypt hash from
// configuration. The plaintext key is never stored by the storefront.
type AdminGuard struct {
	hash []byte
}

// NewAdminGuard builds a guard around a bcrypt hash of the admin key.
func NewAdminGuard(keyHash string) *AdminGuard {
	return &AdminGuard{hash: []byte(keyHash)}
}

// VerifyKey checks a presented admin key.
func (g *AdminGuard) VerifyKey(key string) error {
	if len(g.hash) == 0 || key == "" {
		return domainErrors.ErrInvalidAdminKey
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(key)); err != nil {
		return domainErrors.ErrInvalidAdminKey
	}
	return nil
}

// HashKey produces a bcrypt hash suitable for ADMIN_KEY_HASH. Exposed for
// provisioning and tests.
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
