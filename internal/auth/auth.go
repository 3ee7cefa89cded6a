package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks back-office credentials.
//
// The store never sees credentials; it only manages session tokens.
// Keeping this behind an interface lets a real identity provider
// replace the static account without touching anything else.
type Verifier interface {
	Verify(email, password string) bool
}

// Static is a Verifier over one fixed account, the only account the
// back office has today. It accepts either a bcrypt hash or, as a
// fallback, a plaintext password compared in constant time.
type Static struct {
	email string
	hash  []byte
	plain string
}

// NewStatic builds the single-account verifier. When passwordHash is
// non-empty it wins over the plaintext password.
func NewStatic(email, password, passwordHash string) *Static {
	return &Static{
		email: email,
		hash:  []byte(passwordHash),
		plain: password,
	}
}

func (s *Static) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	if len(s.hash) > 0 {
		// bcrypt comparison is constant-time on the hash side.
		passOK := bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
		return emailOK && passOK
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.plain)) == 1
	return emailOK && passOK
}
