package usecase

import (
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
)

// UserUseCase casos de uso de usuarios administrados.
type UserUseCase struct {
	store *filestore.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store *filestore.Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// List devuelve los usuarios (más reciente primero).
func (uc *UserUseCase) List() *dto.UserListResponse {
	return &dto.UserListResponse{Users: uc.store.GetUsers()}
}

// Create da de alta un usuario ya validado en el borde HTTP.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	created, err := uc.store.AddUser(filestore.NewUser{
		Avatar: in.Avatar,
		Name:   in.Name,
		Email:  in.Email,
		Plan:   in.Plan,
	})
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{User: created}, nil
}
