package dto

import "github.com/medtrack/medicine-tracker-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// LoginResponse carries the bearer token for subsequent requests
type LoginResponse struct {
	Token string `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
