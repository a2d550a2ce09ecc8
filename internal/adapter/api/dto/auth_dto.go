package dto

import (
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SelectCompanyRequest seleciona a empresa da sessão
type SelectCompanyRequest struct {
	CNPJ string `json:"cnpj" binding:"required"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SessionResponse descreve a sessão corrente
type SessionResponse struct {
	User        UserResponse    `json:"user"`
	HomeCompany string          `json:"home_company"`
	Company     *tenant.Company `json:"company,omitempty"`
	Locked      bool            `json:"locked"`
	Modules     []access.Module `json:"modules"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Session     SessionResponse `json:"session"`
}

// RefreshTokenResponse representa a resposta de renovação de token bem-sucedida
type RefreshTokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ToSessionResponse converte a sessão do serviço para DTO de resposta
func ToSessionResponse(info *service.SessionInfo) SessionResponse {
	return SessionResponse{
		User:        ToUserResponse(info.User),
		HomeCompany: info.HomeCompany,
		Company:     info.Company,
		Locked:      info.Locked,
		Modules:     info.Modules,
	}
}
