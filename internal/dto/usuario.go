package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginForm describes what POST /auth/login expects. Status and Message
// echo the query string, e.g. after logout.
type LoginForm struct {
	Action  string   `json:"action"`
	Fields  []string `json:"fields"`
	Status  string   `json:"status,omitempty"`
	Message string   `json:"message,omitempty"`
}

// CreateUsuarioRequest is the JSON body for POST /usuarios.
type CreateUsuarioRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=1"`
	Nombre   string `json:"nombre" binding:"max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=100"`
}

// UpdateUsuarioRequest is the JSON body for PUT /usuarios/:username.
type UpdateUsuarioRequest struct {
	Password string `json:"password" binding:"required,min=1"`
	Nombre   string `json:"nombre" binding:"max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=100"`
}

// UsuarioResponse never carries the password.
type UsuarioResponse struct {
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
}

type ListUsuariosResponse struct {
	Items []UsuarioResponse `json:"items"`
}
