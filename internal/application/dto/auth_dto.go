package dto

// LoginRequest credenciales de acceso. La contraseña solo debe ser no vacía:
// el sistema no la verifica (placeholder, no es frontera de seguridad).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
