package order

import (
	"errors"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

var (
	ErrIncompleteLine   = errors.New("dados incompletos")
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrNegativeQuantity = errors.New("quantidade entregue não pode ser negativa")
	ErrOverDelivery     = errors.New("quantidade entregue maior que a quantidade do pedido")
	ErrLineNotFound     = errors.New("linha não encontrada no pedido")
)

// Line é o rascunho de uma linha antes de virar Item. Em vendas o
// parceiro opcional é um fornecedor; em compras, um cliente.
type Line struct {
	ProductID    int    `json:"productId"`
	Quantity     int    `json:"quantity"`
	Delivered    int    `json:"delivered"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
	SupplierID   int    `json:"supplierId,omitempty"`
	ClientID     int    `json:"clientId,omitempty"`
}

// Cart monta a lista de itens de um pedido em edição
type Cart struct {
	kind  Kind
	today string
	items []Item
}

// NewCart cria um carrinho, opcionalmente pré-carregado com os itens
// de um pedido existente
func NewCart(kind Kind, today string, items []Item) *Cart {
	return &Cart{kind: kind, today: today, items: append([]Item(nil), items...)}
}

// Kind retorna o tipo do pedido em construção
func (c *Cart) Kind() Kind { return c.kind }

// Items retorna uma cópia das linhas correntes
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Add resolve o produto da linha e acrescenta um novo Item. O preço
// unitário é o preço de venda em vendas e o custo em compras.
// partners é a lista de fornecedores (vendas) ou clientes (compras)
// usada para a referência opcional da linha.
func (c *Cart) Add(line Line, products []product.Product, partners []partner.Partner) (Item, error) {
	if err := line.validate(); err != nil {
		return Item{}, err
	}
	p, ok := domain.Find(products, line.ProductID)
	if !ok {
		return Item{}, ErrProductNotFound
	}

	name := p.Name
	if name == "" {
		name = "Item Sem Nome"
	}
	unitPrice := p.Cost
	if c.kind == KindSale {
		unitPrice = p.Price
	}

	return c.push(line, Item{
		Name:      name,
		UnitPrice: unitPrice,
		Price:     p.Price,
		Cost:      p.Cost,
	}, partners), nil
}

// Keep acrescenta a linha preservando nome e preços de snapshot, a
// linha já gravada no pedido reaberto para o mesmo produto
func (c *Cart) Keep(line Line, snapshot Item, partners []partner.Partner) (Item, error) {
	if err := line.validate(); err != nil {
		return Item{}, err
	}
	return c.push(line, snapshot, partners), nil
}

func (l Line) validate() error {
	if l.ProductID <= 0 || l.Quantity <= 0 {
		return ErrIncompleteLine
	}
	if l.Delivered < 0 {
		return ErrNegativeQuantity
	}
	if l.Delivered > l.Quantity {
		return ErrOverDelivery
	}
	return nil
}

func (c *Cart) push(line Line, item Item, partners []partner.Partner) Item {
	item.ProductID = line.ProductID
	item.Quantity = line.Quantity
	item.Delivered = line.Delivered
	item.ItemStatus = ItemStatusFor(line.Quantity, line.Delivered)
	if line.DeliveryDate != "" {
		item.DeliveryDate = line.DeliveryDate
	} else if item.DeliveryDate == "" {
		item.DeliveryDate = c.today
	}

	item.SupplierID, item.SupplierName = 0, ""
	item.ClientID, item.ClientName = 0, ""
	if c.kind == KindSale {
		if s, ok := domain.Find(partners, line.SupplierID); ok {
			item.SupplierID, item.SupplierName = s.ID, s.Name
		}
	} else {
		if cl, ok := domain.Find(partners, line.ClientID); ok {
			item.ClientID, item.ClientName = cl.ID, cl.Name
		}
	}

	c.items = append(c.items, item)
	return item
}

// Remove descarta a linha na posição informada
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrLineNotFound
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// EditLine retira a linha da lista e devolve o rascunho equivalente
// para ser corrigido e adicionado novamente.
func (c *Cart) EditLine(index int) (Line, error) {
	if index < 0 || index >= len(c.items) {
		return Line{}, ErrLineNotFound
	}
	item := c.items[index]
	if err := c.Remove(index); err != nil {
		return Line{}, err
	}
	return Line{
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		Delivered:    item.Delivered,
		DeliveryDate: item.DeliveryDate,
		SupplierID:   item.SupplierID,
		ClientID:     item.ClientID,
	}, nil
}

// Summary calcula total e lucro das linhas correntes
func (c *Cart) Summary() Profit {
	return ComputeProfit(c.kind, c.items)
}
