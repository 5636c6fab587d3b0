package types

// ------------------------------
// Response Types
// ------------------------------

// AuthToken is the bearer credential returned by a successful login.
type AuthToken struct {
	Token string `json:"token"`
}

// IsZero reports whether the token carries no credential.
func (t AuthToken) IsZero() bool { return t.Token == "" }
