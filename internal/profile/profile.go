// Package profile models the signed-in player as reported by an identity
// provider. Every field is optional; callers ask for a field and learn
// whether the provider supplied it.
package profile

import (
	"os"
	"os/user"
	"strings"
)

// Anonymous is the display name used when no name is known.
const Anonymous = "Anonymous"

// Profile is a player identity with optional email, name and subject.
type Profile struct {
	email   string
	name    string
	subject string
}

// New builds a profile from explicit values. Empty strings mean absent.
func New(email, name, subject string) Profile {
	return Profile{
		email:   strings.TrimSpace(email),
		name:    strings.TrimSpace(name),
		subject: strings.TrimSpace(subject),
	}
}

// Email returns the email address and whether one is present.
func (p Profile) Email() (string, bool) {
	return p.email, p.email != ""
}

// Name returns the user name and whether one is present.
func (p Profile) Name() (string, bool) {
	return p.name, p.name != ""
}

// Subject returns the provider's stable subject ID and whether one is present.
func (p Profile) Subject() (string, bool) {
	return p.subject, p.subject != ""
}

// IsZero reports whether the profile carries no identity at all.
func (p Profile) IsZero() bool {
	return p.email == "" && p.name == "" && p.subject == ""
}

// DisplayName returns the name, falling back to Anonymous.
func (p Profile) DisplayName() string {
	if name, ok := p.Name(); ok {
		return name
	}
	return Anonymous
}

// nameClaims lists the claims tried for the user name, in order.
var nameClaims = []string{"cognito:username", "preferred_username", "name"}

// FromClaims extracts a profile from decoded ID-token claims.
// Only string-valued claims are accepted; anything else counts as absent.
func FromClaims(claims map[string]any) Profile {
	str := func(key string) string {
		if v, ok := claims[key].(string); ok {
			return v
		}
		return ""
	}

	var name string
	for _, key := range nameClaims {
		if name = strings.TrimSpace(str(key)); name != "" {
			break
		}
	}

	return New(str("email"), name, str("sub"))
}

// FromOS builds a profile from the operating-system account.
// The name comes from $USER, then the account lookup; the subject is the uid.
func FromOS() Profile {
	name := os.Getenv("USER")
	var subject string
	if u, err := user.Current(); err == nil {
		if name == "" {
			name = u.Username
		}
		subject = u.Uid
	}
	return New("", name, subject)
}
