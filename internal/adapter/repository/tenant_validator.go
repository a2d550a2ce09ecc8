package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	pkgtenant "github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

// CompanyValidator confere se a empresa selecionada existe no cadastro
// e se suas coleções estão acessíveis
type CompanyValidator struct {
	repository tenant.Repository
}

// NewCompanyValidator cria uma nova instância de CompanyValidator
func NewCompanyValidator(repository tenant.Repository) pkgtenant.Validator {
	return &CompanyValidator{
		repository: repository,
	}
}

// Exists verifica se a empresa está cadastrada
func (v *CompanyValidator) Exists(companyID string) (bool, error) {
	if _, err := v.repository.Get(context.Background(), companyID); err != nil {
		if errors.Is(err, tenant.ErrCompanyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao buscar empresa: %w", err)
	}
	return true, nil
}
