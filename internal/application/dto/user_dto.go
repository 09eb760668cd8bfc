package dto

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// CreateUserRequest entrada para crear un usuario. Avatar es opcional.
type CreateUserRequest struct {
	Avatar string `json:"avatar"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Plan   string `json:"plan"`
}

// UserResponse respuesta con un usuario creado.
type UserResponse struct {
	User entity.User `json:"user"`
}

// UserListResponse lista completa de usuarios.
type UserListResponse struct {
	Users []entity.User `json:"users"`
}
