package dto

import "profoli_backend/internals/features/users/auth/model"

// ============================
// Request DTOs
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	Username        string `json:"username"`
	Password        string `json:"password"`
}

// ============================
// Response DTOs
// ============================

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:       m.UserID,
		Username: m.UserUsername,
		Role:     m.UserRole,
	}
}
