package product

import (
	"errors"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrNegativePrice = errors.New("preço e custo não podem ser negativos")
)

// Product é um item do catálogo de vendas e compras. Stock é o saldo
// corrente, movimentado por pedidos.
type Product struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	CustomerDescription string          `json:"customerDescription,omitempty"`
	Price               decimal.Decimal `json:"price"`
	Cost                decimal.Decimal `json:"cost"`
	Stock               decimal.Decimal `json:"stock"`
	Unit                string          `json:"unit,omitempty"`
	NCM                 string          `json:"ncm,omitempty"`
}

// GetID implementa domain.Record
func (p Product) GetID() int { return p.ID }

// Normalize reaplica a formatação do NCM
func (p *Product) Normalize() {
	p.NCM = format.NCM(p.NCM)
}

// Validate verifica os campos obrigatórios
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() || p.Cost.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// AdjustStock soma delta ao saldo (delta negativo debita)
func (p *Product) AdjustStock(delta decimal.Decimal) {
	p.Stock = p.Stock.Add(delta)
}
