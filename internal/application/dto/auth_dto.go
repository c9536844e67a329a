package dto

// RegisterRequest entrada para registro de usuario (y creación de admins).
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse perfil del usuario autenticado. Token va vacío cuando la
// operación no emite sesión (un admin creando a otro admin).
type AuthResponse struct {
	UserID    string `json:"userId"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token,omitempty"`
	Message   string `json:"message"`
}
