package cashier

import (
	"errors"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("data do lançamento inválida")
	ErrInvalidType = errors.New("tipo do lançamento deve ser entrada ou saída")
)

// Type indica entrada ou saída no livro caixa
type Type string

const (
	TypeEntry Type = "entry"
	TypeExit  Type = "exit"
)

// Label retorna o rótulo impresso do tipo
func (t Type) Label() string {
	if t == TypeEntry {
		return "ENTRADA"
	}
	return "SAÍDA"
}

// Entry é uma linha do livro caixa: o cruzamento manual das notas de
// entrada e saída de um dia. Não há saldo acumulado.
type Entry struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"`
	Type         Type            `json:"type"`
	EntryInvoice string          `json:"entryInvoice"`
	ExitInvoice  string          `json:"exitInvoice"`
	SupplierID   int             `json:"supplierId,omitempty"`
	Value        decimal.Decimal `json:"value"`
}

// GetID implementa domain.Record
func (e Entry) GetID() int { return e.ID }

// Validate exige data e tipo
func (e *Entry) Validate() error {
	if _, err := format.ParseDate(e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Type != TypeEntry && e.Type != TypeExit {
		return ErrInvalidType
	}
	return nil
}

// InWindow filtra os lançamentos com data entre start e end, inclusive.
// Limites vazios não restringem.
func InWindow(entries []Entry, start, end string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if start != "" && e.Date < start {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		out = append(out, e)
	}
	return out
}
