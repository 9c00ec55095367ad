package dto

import "time"

// SignupRequest body para POST /api/auth/signup.
// Crea el usuario y su empresa en un solo paso (relación 1:1).
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse token + usuario tras signup/login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse respuesta de GET /api/user/profile.
type ProfileResponse struct {
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}
