package auth

// User is the identity resolved from a bearer token. IDs are the auth
// backend's uuid strings.
type User struct {
	ID    string
	Email string
}

// Authenticator resolves bearer tokens to user identities.
type Authenticator interface {
	ValidateToken(token string) (*User, error)
}
