package dto

import (
	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
)

// UserRequest representa os dados de um novo usuário
type UserRequest struct {
	Name     string          `json:"name"`
	Login    string          `json:"user"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	Modules  []access.Module `json:"modules"`
}

// UserResponse representa a resposta com dados de um usuário, sem a senha
type UserResponse struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Login   string          `json:"user"`
	Role    string          `json:"role"`
	Modules []access.Module `json:"modules"`
}

// UpdateModulesRequest substitui a lista de módulos do usuário
type UpdateModulesRequest struct {
	Modules []access.Module `json:"modules"`
}

// ChangePasswordRequest representa os dados para alteração de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ModuleCatalogResponse lista os módulos concedíveis e suas categorias
type ModuleCatalogResponse struct {
	Modules    []access.Definition `json:"modules"`
	Categories map[string]string   `json:"categories"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u user.User) UserResponse {
	modules := u.Modules
	if modules == nil {
		modules = []access.Module{}
	}
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Login:   u.Login,
		Role:    u.Role,
		Modules: modules,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO de resposta
func ToUserListResponse(users []user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
