package services

import "crypto/subtle"

// AdminVerifier checks operator credentials. The interface exists so
// the single env-configured identity can later be swapped for a real
// identity store without touching the handlers.
type AdminVerifier interface {
	Verify(email, password string) bool
}

// EnvAdminVerifier compares against credentials from the environment.
type EnvAdminVerifier struct {
	email    string
	password string
}

// NewEnvAdminVerifier constructs an EnvAdminVerifier.
func NewEnvAdminVerifier(email, password string) *EnvAdminVerifier {
	return &EnvAdminVerifier{email: email, password: password}
}

// Verify reports whether the supplied credentials match. Comparison is
// constant-time and always fails when no credentials are configured.
func (v *EnvAdminVerifier) Verify(email, password string) bool {
	if v.email == "" || v.password == "" {
		return false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return emailOK && passOK
}
