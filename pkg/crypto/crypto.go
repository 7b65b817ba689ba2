package crypto

import (
	"crypto/rand"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Referral codes are 4-20 uppercase alphanumeric characters.
var referralCodeRe = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)

const (
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	generatedCodeLength  = 8
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidReferralCode reports whether code matches the accepted format.
func ValidReferralCode(code string) bool {
	return referralCodeRe.MatchString(code)
}

// GenerateReferralCode produces a random 8-character uppercase alphanumeric
// referral code. Uniqueness is the caller's concern.
func GenerateReferralCode() (string, error) {
	b := make([]byte, generatedCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i := range b {
		b[i] = referralCodeAlphabet[int(b[i])%len(referralCodeAlphabet)]
	}
	return string(b), nil
}
