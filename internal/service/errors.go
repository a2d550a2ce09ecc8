package service

import (
	"errors"
	"fmt"
)

// Falhas classificadas pela camada de serviço
var (
	ErrForbidden          = errors.New("sem permissão")
	ErrAdminOnlyDelete    = fmt.Errorf("%w: apenas admin pode excluir", ErrForbidden)
	ErrAdminOnlyEdit      = fmt.Errorf("%w: apenas admin pode editar pedidos salvos", ErrForbidden)
	ErrAdminOnly          = fmt.Errorf("%w: ação restrita ao administrador", ErrForbidden)
	ErrModuleDenied       = fmt.Errorf("%w: acesso negado ao módulo", ErrForbidden)
	ErrSelfDelete         = fmt.Errorf("%w: não pode excluir a si mesmo", ErrForbidden)
	ErrNotFound           = errors.New("registro não encontrado")
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	ErrLocked             = errors.New("sistema bloqueado: mês não liberado")
	ErrNoCompany          = errors.New("empresa não selecionada")
	ErrIncomplete         = errors.New("preencha todos os campos")
	ErrNoDraft            = errors.New("nenhum pedido em edição")
)

// ValidationError é uma falha de validação da entrada. Nada é gravado
// nem registrado no log quando ela ocorre.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return &ValidationError{Err: err}
}

func invalidf(err error, format string, args ...interface{}) error {
	return &ValidationError{Err: err, Details: fmt.Sprintf(format, args...)}
}

// IsValidation informa se err é uma falha de validação
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
