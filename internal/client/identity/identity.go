// internal/client/identity/identity.go

// Package identity is the resolved shape of the external identity service.
// The storefront never talks to the provider's endpoints directly; it only
// consumes the current user handed to it.
package identity

// User is a signed-in customer as resolved by the identity service
type User struct {
	ID          string
	Email       string
	BearerToken string
}

// Provider exposes the current session's identity
type Provider interface {
	CurrentUser() (*User, bool)
	IsSignedIn() bool
}

// StaticProvider wraps a fixed user; used by tools and tests
type StaticProvider struct {
	User *User
}

func (p *StaticProvider) CurrentUser() (*User, bool) {
	if p.User == nil {
		return nil, false
	}
	return p.User, true
}

func (p *StaticProvider) IsSignedIn() bool {
	return p.User != nil
}
