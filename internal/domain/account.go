package domain

import "unicode/utf8"

// Field length bounds for accounts.
const (
	UsernameMinLength = 4
	UsernameMaxLength = 10
	PasswordMinLength = 6
	PasswordMaxLength = 10
	NameMinLength     = 4
	NameMaxLength     = 20
)

// Account represents a registered forum account.
// HashedPassword is never exposed in JSON responses.
type Account struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Name           string `json:"name"`
}

// Registration holds the plaintext fields supplied when creating an account.
// The password is hashed by the store layer before persistence.
type Registration struct {
	Username string
	Password string
	Name     string
}

// Validate checks the registration fields against the account bounds.
// It accumulates every failure in field order rather than stopping at the
// first, so the caller can report them all in a single response.
func (r Registration) Validate() []string {
	var problems []string
	problems = appendBounded(problems, "username", r.Username, UsernameMinLength, UsernameMaxLength)
	problems = appendBounded(problems, "password", r.Password, PasswordMinLength, PasswordMaxLength)
	problems = appendBounded(problems, "name", r.Name, NameMinLength, NameMaxLength)
	return problems
}

// ValidateName checks a replacement display name. Used by account updates,
// which may change nothing but the name.
func ValidateName(name string) []string {
	return appendBounded(nil, "name", name, NameMinLength, NameMaxLength)
}

// appendBounded adds the required/too short/too long message for a field,
// mirroring the messages clients already depend on. Bounds are counted in
// characters, not bytes; multibyte input must not trip the length checks.
func appendBounded(problems []string, field, value string, min, max int) []string {
	switch length := utf8.RuneCountInString(value); {
	case value == "":
		problems = append(problems, field+" is required")
	case length < min:
		problems = append(problems, field+" is too short")
	case length > max:
		problems = append(problems, field+" is too long")
	}
	return problems
}
