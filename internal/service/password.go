package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PasswordVerifier turns a supplied password into its stored form and checks
// a supplied password against a stored one.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, supplied string) bool
}

// PlainVerifier stores passwords verbatim and compares them with exact,
// case-sensitive equality.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) { return password, nil }

func (PlainVerifier) Verify(stored, supplied string) bool { return stored == supplied }

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewPasswordVerifier returns the verifier for mode ("plain" or "bcrypt").
func NewPasswordVerifier(mode string) (PasswordVerifier, error) {
	switch mode {
	case "", PasswordModePlain:
		return PlainVerifier{}, nil
	case PasswordModeBcrypt:
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}
