package model

// AuthRequest types
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     Role   `json:"role" binding:"required,oneof=patient doctor"`
}

// SessionResponse is returned by login and register. The token is the
// serialized session the client keeps; presenting it restores the
// session on a later request.
type SessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
