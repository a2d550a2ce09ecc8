package tenant

import (
	"errors"
	"time"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
)

var (
	ErrCompanyNotFound   = errors.New("empresa não encontrada")
	ErrInvalidCollection = errors.New("coleção inválida")
	ErrEmptyName         = errors.New("nome não pode ser vazio")
)

// LockDay é o dia do mês a partir do qual o acesso fica bloqueado até a
// liberação do mês corrente
const LockDay = 5

// Company representa uma empresa do grupo, identificada pelo CNPJ
type Company struct {
	CNPJ      string `json:"cnpj"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Companies é o cadastro fixo de empresas atendidas
var Companies = []Company{
	{CNPJ: "31501279000110", Name: "COMERCIAL STRAUSS (Matriz)", ShortName: "STRAUSS M"},
	{CNPJ: "31501279000200", Name: "COMERCIAL STRAUSS (Filial)", ShortName: "STRAUSS F"},
	{CNPJ: "55482599000139", Name: "GROUP SUPPLY SP", ShortName: "GROUP SP"},
}

// FindCompany busca uma empresa pelo CNPJ
func FindCompany(cnpj string) (Company, error) {
	for _, c := range Companies {
		if c.CNPJ == cnpj {
			return c, nil
		}
	}
	return Company{}, ErrCompanyNotFound
}

// DefaultCompany é a empresa usada por eventos sem empresa selecionada
func DefaultCompany() Company {
	return Companies[0]
}

// Info reúne as configurações da empresa
type Info struct {
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	LastUnlockedMonth string `json:"lastUnlockedMonth"`
	LogoURL           string `json:"logoUrl"`
}

// CurrentMonth retorna a chave YYYY-MM do instante informado
func CurrentMonth(now time.Time) string {
	return format.Month(now)
}

// IsLocked indica se o mês corrente ainda não foi liberado após o dia
// de bloqueio
func (i Info) IsLocked(now time.Time) bool {
	return now.Day() >= LockDay && i.LastUnlockedMonth != CurrentMonth(now)
}

// Unlock libera o mês corrente
func (i *Info) Unlock(now time.Time) {
	i.LastUnlockedMonth = CurrentMonth(now)
}
