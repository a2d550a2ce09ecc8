package partner

import (
	"errors"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// Kind distingue clientes de fornecedores
type Kind string

const (
	KindClient   Kind = "client"
	KindSupplier Kind = "supplier"
)

// Partner representa um cliente ou fornecedor. Documento e telefone
// ficam gravados já formatados.
type Partner struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Document string `json:"doc"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// GetID implementa domain.Record
func (p Partner) GetID() int { return p.ID }

// Normalize reaplica a formatação canônica de documento e telefone
func (p *Partner) Normalize() {
	p.Document = format.Document(p.Document)
	p.Phone = format.Phone(p.Phone)
}

// Validate verifica os campos obrigatórios
func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
