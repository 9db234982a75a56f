// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"ratesmart/config"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/service"
)

// PasswordPolicy is the strength policy enforced on business passwords.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy mirrors the signup form: 8+ characters with an
// uppercase letter and a digit. bcrypt ignores input past 72 bytes.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:        8,
	MaxLength:        72,
	RequireUppercase: true,
	RequireNumbers:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy PasswordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost and policy.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit bcrypt cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, policy: DefaultPasswordPolicy}
}

// NewBcryptHasherFromConfig reads cost and strength policy from configuration.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	h := NewBcryptHasherWithCost(cost).(*bcryptHasher)
	if ps := cfg.PasswordStrength; ps != nil {
		h.policy = PasswordPolicy{
			MinLength:        ps.MinLength,
			MaxLength:        ps.MaxLength,
			RequireUppercase: ps.RequireUppercase,
			RequireLowercase: ps.RequireLowercase,
			RequireNumbers:   ps.RequireNumbers,
			RequireSpecial:   ps.RequireSpecial,
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	n := len([]rune(password))

	switch {
	case p.MinLength > 0 && n < p.MinLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	case p.MaxLength > 0 && len(password) > p.MaxLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	case p.RequireUppercase && !h.hasUppercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password needs an uppercase letter")
	case p.RequireLowercase && !h.hasLowercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a lowercase letter")
	case p.RequireNumbers && !h.hasNumbers(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a number")
	case p.RequireSpecial && !h.hasSpecialChars(password):
		return domainerrors.ErrPasswordStrength.WithDetails("password needs a special character")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	}) >= 0
}
