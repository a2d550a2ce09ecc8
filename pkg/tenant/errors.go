package tenant

import "errors"

var (
	ErrNoCompany      = errors.New("empresa não selecionada")
	ErrUnknownCompany = errors.New("empresa não cadastrada")
)
