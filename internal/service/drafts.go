package service

import (
	"context"
	"sync"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

// Draft é o pedido em montagem de um usuário
type Draft struct {
	kind      order.Kind
	editingID int
	header    OrderHeader
	cart      *order.Cart
}

// DraftView é a representação do rascunho devolvida à API
type DraftView struct {
	Kind      order.Kind   `json:"kind"`
	EditingID int          `json:"editingId,omitempty"`
	Header    OrderHeader  `json:"header"`
	Items     []order.Item `json:"items"`
	Summary   order.Profit `json:"summary"`
}

func (d *Draft) view() DraftView {
	return DraftView{
		Kind:      d.kind,
		EditingID: d.editingID,
		Header:    d.header,
		Items:     d.cart.Items(),
		Summary:   d.cart.Summary(),
	}
}

// DraftService mantém um rascunho de pedido por usuário, montado linha
// a linha antes de ser salvo
type DraftService struct {
	orders *OrderService
	mu     sync.Mutex
	drafts map[string]*Draft
}

// Start abre um rascunho vazio ou, com editingID, carregado com as
// linhas do pedido salvo. Substitui o rascunho anterior do usuário.
func (s *DraftService) Start(ctx context.Context, actor *Actor, kind order.Kind, editingID int) (DraftView, error) {
	data, err := s.orders.orderScopeWrite(ctx, actor, kind)
	if err != nil {
		return DraftView{}, err
	}

	d := &Draft{kind: kind, cart: order.NewCart(kind, s.orders.today(), nil)}
	if editingID > 0 {
		if !access.CanEditOrder(actor.User.Role) {
			return DraftView{}, ErrAdminOnlyEdit
		}
		o, ok := domain.Find(data.Orders(kind), editingID)
		if !ok {
			return DraftView{}, ErrNotFound
		}
		d.editingID = o.ID
		d.header = OrderHeader{PartnerID: o.PartnerID, CustomerOrderNumber: o.CustomerOrderNumber, IssueDate: o.IssueDate}
		d.cart = order.NewCart(kind, s.orders.today(), o.Items)
	}

	s.mu.Lock()
	s.drafts[actor.owner()] = d
	s.mu.Unlock()
	return d.view(), nil
}

// Current retorna o rascunho do usuário
func (s *DraftService) Current(actor *Actor) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[actor.owner()]
	if !ok {
		return DraftView{}, ErrNoDraft
	}
	return d.view(), nil
}

// SetHeader atualiza parceiro, número do pedido do cliente e emissão
func (s *DraftService) SetHeader(actor *Actor, h OrderHeader) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[actor.owner()]
	if !ok {
		return DraftView{}, ErrNoDraft
	}
	d.header = h
	return d.view(), nil
}

// AddLine resolve o produto e acrescenta a linha
func (s *DraftService) AddLine(ctx context.Context, actor *Actor, line order.Line) (DraftView, error) {
	s.mu.Lock()
	d, ok := s.drafts[actor.owner()]
	s.mu.Unlock()
	if !ok {
		return DraftView{}, ErrNoDraft
	}

	data, err := s.orders.orderScopeWrite(ctx, actor, d.kind)
	if err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := d.cart.Add(line, data.Products, lineSupplier(data, d.kind)); err != nil {
		return DraftView{}, invalid(err)
	}
	return d.view(), nil
}

// RemoveLine descarta a linha na posição informada
func (s *DraftService) RemoveLine(actor *Actor, index int) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[actor.owner()]
	if !ok {
		return DraftView{}, ErrNoDraft
	}
	if err := d.cart.Remove(index); err != nil {
		return DraftView{}, invalid(err)
	}
	return d.view(), nil
}

// EditLine retira a linha e devolve seu rascunho para correção
func (s *DraftService) EditLine(actor *Actor, index int) (order.Line, DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[actor.owner()]
	if !ok {
		return order.Line{}, DraftView{}, ErrNoDraft
	}
	line, err := d.cart.EditLine(index)
	if err != nil {
		return order.Line{}, DraftView{}, invalid(err)
	}
	return line, d.view(), nil
}

// Save grava o rascunho como pedido e o descarta em caso de sucesso
func (s *DraftService) Save(ctx context.Context, actor *Actor) (*order.Order, error) {
	s.mu.Lock()
	d, ok := s.drafts[actor.owner()]
	var items []order.Item
	if ok {
		items = d.cart.Items()
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoDraft
	}

	o, err := s.orders.saveDraft(ctx, actor, d.kind, d.editingID, d.header, items)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.drafts[actor.owner()] == d {
		delete(s.drafts, actor.owner())
	}
	s.mu.Unlock()
	return o, nil
}

// Discard descarta o rascunho do usuário
func (s *DraftService) Discard(actor *Actor) {
	s.mu.Lock()
	delete(s.drafts, actor.owner())
	s.mu.Unlock()
}

func (s *OrderService) saveDraft(ctx context.Context, actor *Actor, kind order.Kind, editingID int, h OrderHeader, items []order.Item) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.orderScopeWrite(ctx, actor, kind)
	if err != nil {
		return nil, err
	}
	if editingID > 0 && !access.CanEditOrder(actor.User.Role) {
		return nil, ErrAdminOnlyEdit
	}
	return s.save(ctx, actor, data, kind, editingID, h, items)
}
