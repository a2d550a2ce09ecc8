package product

import (
	"strings"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

// InventoryItem é um registro de estoque independente, mantido à mão
// para conferência fiscal. Não tem vínculo com Product.Stock.
type InventoryItem struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	NCM              string          `json:"ncm,omitempty"`
	LastEntryInvoice string          `json:"lastEntryInvoice,omitempty"`
	Stock            decimal.Decimal `json:"stock"`
	Unit             string          `json:"unit,omitempty"`
	Cost             decimal.Decimal `json:"cost"`
}

// GetID implementa domain.Record
func (i InventoryItem) GetID() int { return i.ID }

// Normalize reaplica a formatação do NCM
func (i *InventoryItem) Normalize() {
	i.NCM = format.NCM(i.NCM)
}

// Validate verifica os campos obrigatórios
func (i *InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Cost.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// TotalValue retorna o valor do saldo ao custo
func (i InventoryItem) TotalValue() decimal.Decimal {
	return i.Stock.Mul(i.Cost)
}
