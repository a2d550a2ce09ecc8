package financial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidType        = errors.New("tipo de lançamento inválido")
	ErrEmptyDescription   = errors.New("descrição não pode ser vazia")
	ErrInvalidValue       = errors.New("valor deve ser maior que zero")
	ErrInvalidDueDate     = errors.New("data de vencimento inválida")
	ErrAlreadySettled     = errors.New("lançamento já foi baixado")
	ErrInvalidInstallment = errors.New("número de parcelas inválido")
)

// Type distingue contas a pagar e a receber
type Type string

const (
	TypePayable    Type = "payable"
	TypeReceivable Type = "receivable"
)

// IsValid verifica se o tipo é conhecido
func (t Type) IsValid() bool {
	return t == TypePayable || t == TypeReceivable
}

// SettledStatus retorna a situação atribuída na baixa
func (t Type) SettledStatus() Status {
	if t == TypePayable {
		return StatusPaid
	}
	return StatusReceived
}

// Status é a situação do lançamento
type Status string

const (
	StatusPending  Status = "Pendente"
	StatusPaid     Status = "Pago"
	StatusReceived Status = "Recebido"
)

// IsSettled indica lançamentos pagos ou recebidos
func (s Status) IsSettled() bool {
	return s == StatusPaid || s == StatusReceived
}

// DocTypes lista os tipos de documento aceitos no cadastro
var DocTypes = []string{
	"Nota Fiscal", "Dacte", "Aluguel", "Financiamento", "Energia",
	"Água", "Pessoal", "Boleto", "Recibo", "Outros",
}

// Entry é um lançamento de contas a pagar ou a receber
type Entry struct {
	ID             int             `json:"id"`
	Type           Type            `json:"type"`
	Description    string          `json:"description"`
	Value          decimal.Decimal `json:"value"`
	DueDate        string          `json:"dueDate"`
	Status         Status          `json:"status"`
	PartnerID      int             `json:"partnerId,omitempty"`
	PartnerName    string          `json:"partnerName"`
	DocType        string          `json:"docType,omitempty"`
	DocNumber      string          `json:"docNumber,omitempty"`
	IssueDate      string          `json:"issueDate,omitempty"`
	SettlementDate string          `json:"settlementDate,omitempty"`
	SettledBy      string          `json:"settledBy,omitempty"`
}

// GetID implementa domain.Record
func (e Entry) GetID() int { return e.ID }

// Validate verifica tipo, descrição, valor e vencimento
func (e *Entry) Validate() error {
	if !e.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if !e.Value.IsPositive() {
		return ErrInvalidValue
	}
	if _, err := format.ParseDate(e.DueDate); err != nil {
		return ErrInvalidDueDate
	}
	return nil
}

// Settle baixa o lançamento na data e pelo usuário informados
func (e *Entry) Settle(today, settledBy string) error {
	if e.Status.IsSettled() {
		return ErrAlreadySettled
	}
	e.Status = e.Type.SettledStatus()
	e.SettlementDate = today
	e.SettledBy = settledBy
	return nil
}

// Installments gera n parcelas a partir do lançamento base. Cada parcela
// repete o valor base, vence i meses após o vencimento base e recebe o
// sufixo (i/n) na descrição. Os ids começam em firstID.
func Installments(base Entry, n, firstID int) ([]Entry, error) {
	if n < 1 {
		return nil, ErrInvalidInstallment
	}
	due, err := format.ParseDate(base.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		e := base
		e.ID = firstID + i
		e.Status = StatusPending
		e.SettlementDate = ""
		e.SettledBy = ""
		e.DueDate = due.AddDate(0, i, 0).Format(format.DateLayout)
		e.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, n)
		out[i] = e
	}
	return out, nil
}
