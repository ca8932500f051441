package domain

// Usuario is the domain entity for a user account.
// Username is the key and never changes after creation.
type Usuario struct {
	Username string
	Password string
	Nombre   string
	Email    string
}

// Identity is the authenticated user bound to a session.
// It carries what ownership checks and the UI need, never the password.
type Identity struct {
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
}

// Identity returns the session-safe view of u.
func (u Usuario) Identity() Identity {
	return Identity{Username: u.Username, Nombre: u.Nombre, Email: u.Email}
}
