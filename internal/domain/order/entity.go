package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingPartner   = errors.New("preencha os dados: parceiro não informado")
	ErrEmptyItems       = errors.New("preencha os dados: pedido sem itens")
	ErrAlreadyCancelled = errors.New("pedido já está cancelado")
	ErrInvalidKind      = errors.New("tipo de pedido inválido")
)

// Kind distingue pedidos de venda e de compra. O valor coincide com o
// nome da coleção persistida.
type Kind string

const (
	KindSale     Kind = "sales"
	KindPurchase Kind = "purchases"
)

// Status é a situação agregada do pedido
type Status string

const (
	StatusOpen      Status = "Aberto"
	StatusPartial   Status = "Parcialmente"
	StatusDelivered Status = "Entregue"
	StatusCancelled Status = "Cancelado"
)

// ItemStatus é a situação de entrega de uma linha
type ItemStatus string

const (
	ItemPending   ItemStatus = "Pendente"
	ItemPartial   ItemStatus = "Parcial"
	ItemDelivered ItemStatus = "Entregue"
)

// Valores padrão aplicados ao salvar
const (
	UnknownPartner     = "Desconhecido"
	DefaultOrderNumber = "N/A"
)

// IsValid verifica se o tipo é conhecido
func (k Kind) IsValid() bool {
	return k == KindSale || k == KindPurchase
}

// CreationDelta é o efeito no estoque ao criar um pedido com a
// quantidade informada: vendas debitam, compras creditam.
func (k Kind) CreationDelta(quantity int) decimal.Decimal {
	q := decimal.NewFromInt(int64(quantity))
	if k == KindSale {
		return q.Neg()
	}
	return q
}

// CancellationDelta desfaz o efeito de CreationDelta
func (k Kind) CancellationDelta(quantity int) decimal.Decimal {
	return k.CreationDelta(quantity).Neg()
}

// Item é uma linha do pedido. ProductID é a identidade da linha e é
// gravado como "id" no layout persistido.
type Item struct {
	ProductID    int             `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Delivered    int             `json:"delivered"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	ItemStatus   ItemStatus      `json:"itemStatus"`
	DeliveryDate string          `json:"deliveryDate,omitempty"`
	SupplierID   int             `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplierName,omitempty"`
	ClientID     int             `json:"clientId,omitempty"`
	ClientName   string          `json:"clientName,omitempty"`
}

// Subtotal retorna quantidade vezes preço unitário
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Pending retorna a quantidade ainda não entregue
func (i Item) Pending() int {
	if i.Delivered >= i.Quantity {
		return 0
	}
	return i.Quantity - i.Delivered
}

// ItemStatusFor deriva a situação da linha a partir das quantidades
func ItemStatusFor(quantity, delivered int) ItemStatus {
	switch {
	case delivered >= quantity:
		return ItemDelivered
	case delivered > 0:
		return ItemPartial
	default:
		return ItemPending
	}
}

// Order é um pedido de venda ou de compra
type Order struct {
	ID                  int             `json:"id"`
	PartnerID           int             `json:"partnerId"`
	PartnerName         string          `json:"partnerName"`
	CustomerOrderNumber string          `json:"customerOrderNumber"`
	IssueDate           string          `json:"issueDate"`
	GeneralStatus       Status          `json:"generalStatus"`
	Total               decimal.Decimal `json:"total"`
	Items               []Item          `json:"items"`
}

// GetID implementa domain.Record
func (o Order) GetID() int { return o.ID }

// DeriveStatus calcula a situação agregada. Cancelado é terminal e
// nunca é derivado das entregas.
func DeriveStatus(items []Item, previous Status) Status {
	if previous == StatusCancelled {
		return StatusCancelled
	}
	allDelivered := true
	someDelivered := false
	for _, item := range items {
		if item.Delivered < item.Quantity {
			allDelivered = false
		}
		if item.Delivered > 0 {
			someDelivered = true
		}
	}
	switch {
	case allDelivered:
		return StatusDelivered
	case someDelivered:
		return StatusPartial
	default:
		return StatusOpen
	}
}

// ComputeTotal soma os subtotais das linhas
func ComputeTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate verifica parceiro e itens
func (o *Order) Validate() error {
	if o.PartnerID <= 0 {
		return ErrMissingPartner
	}
	if len(o.Items) == 0 {
		return ErrEmptyItems
	}
	return nil
}

// Recalculate atualiza total e situação a partir das linhas correntes
func (o *Order) Recalculate(previous Status) {
	o.Total = ComputeTotal(o.Items)
	o.GeneralStatus = DeriveStatus(o.Items, previous)
}

// Cancel força a situação Cancelado
func (o *Order) Cancel() error {
	if o.GeneralStatus == StatusCancelled {
		return ErrAlreadyCancelled
	}
	o.GeneralStatus = StatusCancelled
	return nil
}

// IsFinished indica pedidos entregues ou cancelados
func (o Order) IsFinished() bool {
	return o.GeneralStatus == StatusDelivered || o.GeneralStatus == StatusCancelled
}
