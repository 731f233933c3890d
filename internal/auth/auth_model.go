package auth

import (
	"gorm.io/gorm"
)

const ManagerRole = "manager"

// User is a roster manager account. Raters never get an account; only the
// people maintaining the roster sign in.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"not null;default:manager"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Dina"`
	Email    string `json:"email" binding:"required,email" example:"dina@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"dina@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
