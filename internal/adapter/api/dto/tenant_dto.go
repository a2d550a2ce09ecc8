package dto

import (
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

// CompanyInfoRequest representa os campos editáveis da empresa
type CompanyInfoRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	LogoURL  string `json:"logoUrl"`
}

// CompanyResponse reúne o cadastro e os dados editáveis da empresa
type CompanyResponse struct {
	Company tenant.Company    `json:"company"`
	Info    tenant.Info       `json:"info"`
	Lock    service.LockState `json:"lock"`
}

// ToInfoInput converte a requisição para a entrada do serviço
func (r CompanyInfoRequest) ToInfoInput() service.InfoInput {
	return service.InfoInput{Name: r.Name, Currency: r.Currency, LogoURL: r.LogoURL}
}
