package domain

// User is a registered account. The password travels with the persisted
// document but is stripped from anything handed back to callers.
type User struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}
