package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

const cancelTitle = "Cancelar Pedido"

// OrderHeader são os dados do pedido fora das linhas
type OrderHeader struct {
	PartnerID           int    `json:"partnerId"`
	CustomerOrderNumber string `json:"customerOrderNumber"`
	IssueDate           string `json:"issueDate"`
}

// OrderInput é um pedido completo enviado de uma vez
type OrderInput struct {
	OrderHeader
	Lines []order.Line `json:"items"`
}

// OrderDetail é o pedido com o resumo de lucro
type OrderDetail struct {
	Order  order.Order  `json:"order"`
	Profit order.Profit `json:"profit"`
}

// HistoryItem é uma linha vendida no histórico de itens
type HistoryItem struct {
	SaleID              int             `json:"saleId"`
	Date                string          `json:"date"`
	CustomerOrderNumber string          `json:"customerOrderNumber"`
	Client              string          `json:"client"`
	ProductID           int             `json:"productId"`
	Product             string          `json:"product"`
	EntryInvoice        string          `json:"entryInvoice"`
	Quantity            int             `json:"quantity"`
	Total               decimal.Decimal `json:"total"`
}

// OrderService concilia pedidos de venda e compra com o estoque
type OrderService struct {
	*core
}

func activeModule(kind order.Kind) access.Module {
	if kind == order.KindSale {
		return access.ModuleSales
	}
	return access.ModulePurchases
}

func historyModule(kind order.Kind) access.Module {
	if kind == order.KindSale {
		return access.ModuleSalesHistory
	}
	return access.ModulePurchasesHistory
}

func orderTag(kind order.Kind) string {
	if kind == order.KindSale {
		return audit.ModuleSales
	}
	return audit.ModulePurchases
}

// lineSupplier devolve o cadastro usado na referência opcional das
// linhas: fornecedores em vendas, clientes em compras
func lineSupplier(data *tenant.Data, kind order.Kind) []partner.Partner {
	if kind == order.KindSale {
		return data.Suppliers
	}
	return data.Clients
}

func orderPartners(data *tenant.Data, kind order.Kind) []partner.Partner {
	if kind == order.KindSale {
		return data.Clients
	}
	return data.Suppliers
}

// orderScope aceita quem acessa a lista ativa ou a de concluídos
func (s *OrderService) orderScope(ctx context.Context, actor *Actor, kind order.Kind) (*tenant.Data, error) {
	if !kind.IsValid() {
		return nil, invalid(order.ErrInvalidKind)
	}
	data, err := s.scope(ctx, actor, "")
	if err != nil {
		return nil, err
	}
	if !actor.User.HasAccess(activeModule(kind)) && !actor.User.HasAccess(historyModule(kind)) {
		return nil, ErrModuleDenied
	}
	return data, nil
}

// List retorna os pedidos ativos ou, com finished, os entregues e
// cancelados
func (s *OrderService) List(ctx context.Context, actor *Actor, kind order.Kind, finished bool) ([]order.Order, error) {
	if !kind.IsValid() {
		return nil, invalid(order.ErrInvalidKind)
	}
	module := activeModule(kind)
	if finished {
		module = historyModule(kind)
	}
	data, err := s.scope(ctx, actor, module)
	if err != nil {
		return nil, err
	}

	out := make([]order.Order, 0)
	for _, o := range data.Orders(kind) {
		if o.IsFinished() == finished {
			out = append(out, o)
		}
	}
	return out, nil
}

// Get retorna o pedido com o resumo de lucro
func (s *OrderService) Get(ctx context.Context, actor *Actor, kind order.Kind, id int) (*OrderDetail, error) {
	data, err := s.orderScope(ctx, actor, kind)
	if err != nil {
		return nil, err
	}
	o, ok := domain.Find(data.Orders(kind), id)
	if !ok {
		return nil, ErrNotFound
	}
	return &OrderDetail{Order: o, Profit: order.ComputeProfit(kind, o.Items)}, nil
}

// Create monta as linhas a partir do cadastro de produtos e grava um
// novo pedido, movimentando o estoque
func (s *OrderService) Create(ctx context.Context, actor *Actor, kind order.Kind, in OrderInput) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.orderScopeWrite(ctx, actor, kind)
	if err != nil {
		return nil, err
	}

	cart := order.NewCart(kind, s.today(), nil)
	for i, line := range in.Lines {
		if _, err := cart.Add(line, data.Products, lineSupplier(data, kind)); err != nil {
			return nil, invalidf(err, "linha %d", i+1)
		}
	}
	return s.save(ctx, actor, data, kind, 0, in.OrderHeader, cart.Items())
}

// Update substitui as linhas de um pedido salvo. Linhas de produtos já
// presentes mantêm nome e preços gravados. O estoque não é movimentado.
func (s *OrderService) Update(ctx context.Context, actor *Actor, kind order.Kind, id int, in OrderInput) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.orderScopeWrite(ctx, actor, kind)
	if err != nil {
		return nil, err
	}
	if !access.CanEditOrder(actor.User.Role) {
		return nil, ErrAdminOnlyEdit
	}
	existing, ok := domain.Find(data.Orders(kind), id)
	if !ok {
		return nil, ErrNotFound
	}

	cart := order.NewCart(kind, s.today(), nil)
	for i, line := range in.Lines {
		var err error
		if snapshot, found := snapshotFor(existing.Items, line.ProductID); found {
			_, err = cart.Keep(line, snapshot, lineSupplier(data, kind))
		} else {
			_, err = cart.Add(line, data.Products, lineSupplier(data, kind))
		}
		if err != nil {
			return nil, invalidf(err, "linha %d", i+1)
		}
	}
	return s.save(ctx, actor, data, kind, id, in.OrderHeader, cart.Items())
}

func snapshotFor(items []order.Item, productID int) (order.Item, bool) {
	for _, item := range items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return order.Item{}, false
}

func (s *OrderService) orderScopeWrite(ctx context.Context, actor *Actor, kind order.Kind) (*tenant.Data, error) {
	if !kind.IsValid() {
		return nil, invalid(order.ErrInvalidKind)
	}
	return s.scope(ctx, actor, activeModule(kind))
}

// save grava o pedido com as linhas já montadas. editingID zero cria um
// pedido novo. Exige mu travado.
func (s *OrderService) save(ctx context.Context, actor *Actor, data *tenant.Data, kind order.Kind, editingID int, h OrderHeader, items []order.Item) (*order.Order, error) {
	orders := data.Orders(kind)

	var previous order.Order
	idx := -1
	if editingID > 0 {
		idx = domain.IndexOf(orders, editingID)
		if idx < 0 {
			return nil, ErrNotFound
		}
		previous = orders[idx]
	}

	o := order.Order{
		ID:                  editingID,
		PartnerID:           h.PartnerID,
		PartnerName:         order.UnknownPartner,
		CustomerOrderNumber: h.CustomerOrderNumber,
		IssueDate:           h.IssueDate,
		Items:               items,
	}
	if err := o.Validate(); err != nil {
		return nil, invalid(err)
	}
	if p, ok := domain.Find(orderPartners(data, kind), h.PartnerID); ok {
		o.PartnerName = p.Name
	}
	if o.CustomerOrderNumber == "" {
		o.CustomerOrderNumber = order.DefaultOrderNumber
	}
	if o.IssueDate == "" {
		o.IssueDate = previous.IssueDate
	}
	if o.IssueDate == "" {
		o.IssueDate = s.today()
	}
	o.Recalculate(previous.GeneralStatus)

	var details string
	var action audit.Action
	if idx >= 0 {
		orders[idx] = o
		action = audit.ActionUpdate
		details = fmt.Sprintf("Editou Pedido #%d. %s", o.ID, describeOrderChanges(previous, o))
	} else {
		o.ID = domain.NextID(orders)
		orders = append(orders, o)
		action = audit.ActionCreate
		details = fmt.Sprintf("Criou Pedido #%d p/ %s. Valor: %s. Itens: [ %s ]",
			o.ID, o.PartnerName, format.Currency(o.Total), order.Summary(o.Items))
	}

	if err := s.commit(ctx, actor.CompanyID, tenant.OrderCollection(kind), orders); err != nil {
		return nil, err
	}
	if idx < 0 {
		if err := s.moveStock(ctx, actor.CompanyID, data, o.Items, kind.CreationDelta); err != nil {
			return nil, err
		}
	}
	s.record(ctx, actor, action, details, orderTag(kind))
	return &o, nil
}

func describeOrderChanges(before, after order.Order) string {
	var parts []string
	if before.GeneralStatus != after.GeneralStatus {
		parts = append(parts, fmt.Sprintf("Status: %s -> %s", before.GeneralStatus, after.GeneralStatus))
	}
	if !before.Total.Equal(after.Total) {
		parts = append(parts, fmt.Sprintf("Total: %s -> %s", format.Currency(before.Total), format.Currency(after.Total)))
	}
	if diff := order.DiffItems(before.Items, after.Items); diff != order.NoItemChanges {
		parts = append(parts, fmt.Sprintf("Itens: [ %s ]", diff))
	}
	if len(parts) == 0 {
		return "Salvou sem alterações."
	}
	return strings.Join(parts, " | ")
}

// moveStock aplica delta(quantidade) ao saldo do produto de cada linha.
// Linhas de produtos excluídos são ignoradas.
func (s *OrderService) moveStock(ctx context.Context, companyID string, data *tenant.Data, items []order.Item, delta func(int) decimal.Decimal) error {
	products := data.Products
	for _, item := range items {
		idx := domain.IndexOf(products, item.ProductID)
		if idx < 0 {
			continue
		}
		products[idx].AdjustStock(delta(item.Quantity))
	}
	return s.commit(ctx, companyID, tenant.CollectionProducts, products)
}

// RequestCancel registra o cancelamento para confirmação. Na
// confirmação o pedido passa a Cancelado e o estoque é estornado.
func (s *OrderService) RequestCancel(ctx context.Context, actor *Actor, kind order.Kind, id int) (confirm.Pending, error) {
	data, err := s.orderScopeWrite(ctx, actor, kind)
	if err != nil {
		return confirm.Pending{}, err
	}
	o, ok := domain.Find(data.Orders(kind), id)
	if !ok {
		return confirm.Pending{}, ErrNotFound
	}
	if o.GeneralStatus == order.StatusCancelled {
		return confirm.Pending{}, invalid(order.ErrAlreadyCancelled)
	}

	message := fmt.Sprintf("Tem a certeza que deseja CANCELAR o pedido #%d?\nIsso irá alterar o status e estornar o estoque.", id)
	return s.requestConfirmation(actor, cancelTitle, message, func(ctx context.Context) (interface{}, error) {
		return s.cancel(ctx, actor, kind, id)
	}), nil
}

func (s *OrderService) cancel(ctx context.Context, actor *Actor, kind order.Kind, id int) (*order.Order, error) {
	data, err := s.load(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	orders := data.Orders(kind)
	idx := domain.IndexOf(orders, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if err := orders[idx].Cancel(); err != nil {
		return nil, invalid(err)
	}

	if err := s.commit(ctx, actor.CompanyID, tenant.OrderCollection(kind), orders); err != nil {
		return nil, err
	}
	if err := s.moveStock(ctx, actor.CompanyID, data, orders[idx].Items, kind.CancellationDelta); err != nil {
		return nil, err
	}
	s.record(ctx, actor, audit.ActionUpdate, fmt.Sprintf("Cancelou Pedido #%d (Estoque estornado)", id), orderTag(kind))

	o := orders[idx]
	return &o, nil
}

// RequestDelete registra a exclusão do pedido, sem estorno de estoque
func (s *OrderService) RequestDelete(ctx context.Context, actor *Actor, kind order.Kind, id int) (confirm.Pending, error) {
	if !kind.IsValid() {
		return confirm.Pending{}, invalid(order.ErrInvalidKind)
	}
	return requestDelete(ctx, s.core, actor, orderSpec(kind), id)
}

func orderSpec(kind order.Kind) entitySpec[order.Order] {
	return entitySpec[order.Order]{
		collection: tenant.OrderCollection(kind),
		module:     activeModule(kind),
		tag:        orderTag(kind),
		list:       func(d *tenant.Data) []order.Order { return d.Orders(kind) },
		withID:     func(o order.Order, id int) order.Order { o.ID = id; return o },
		prepare:    func(o *order.Order) error { return o.Validate() },
		name:       func(order.Order) string { return "" },
	}
}

// ItemHistory lista as linhas vendidas, filtradas por cliente ou produto
func (s *OrderService) ItemHistory(ctx context.Context, actor *Actor, search string) ([]HistoryItem, error) {
	data, err := s.scope(ctx, actor, access.ModuleHistoryItems)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	out := make([]HistoryItem, 0)
	for _, sale := range data.Sales {
		for _, item := range sale.Items {
			if !strings.Contains(strings.ToLower(sale.PartnerName), search) && !strings.Contains(strings.ToLower(item.Name), search) {
				continue
			}
			invoice := "-"
			if inv, ok := domain.Find(data.InventoryItems, item.ProductID); ok {
				invoice = inv.LastEntryInvoice
			}
			out = append(out, HistoryItem{
				SaleID:              sale.ID,
				Date:                sale.IssueDate,
				CustomerOrderNumber: sale.CustomerOrderNumber,
				Client:              sale.PartnerName,
				ProductID:           item.ProductID,
				Product:             item.Name,
				EntryInvoice:        invoice,
				Quantity:            item.Quantity,
				Total:               item.Subtotal(),
			})
		}
	}
	return out, nil
}

// DeliveryReport lista as linhas de compra com entrega pendente
func (s *OrderService) DeliveryReport(ctx context.Context, actor *Actor, search string) ([]order.PendingDelivery, error) {
	data, err := s.scope(ctx, actor, access.ModuleDeliveryReport)
	if err != nil {
		return nil, err
	}
	return order.PendingDeliveries(data.Purchases, data.Suppliers, search), nil
}
