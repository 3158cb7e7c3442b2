package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Login    string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el local autenticado.
type LoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    StoreResponse `json:"user"`
}

// CurrentUserResponse salida de GET /auth/user.
type CurrentUserResponse struct {
	Success bool          `json:"success"`
	User    StoreResponse `json:"user"`
}
