package types

// ------------------------------
// Request Types
// ------------------------------

// Credentials is the username/password pair sent to signup and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
