package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/report"
)

// ListKind seleciona a lista impressa pelo relatório genérico
type ListKind string

const (
	ListClients   ListKind = "clients"
	ListSuppliers ListKind = "suppliers"
	ListProducts  ListKind = "products"
)

// ReportService gera as planilhas dos relatórios e registra cada
// impressão no log de auditoria
type ReportService struct {
	*core
	svc *Services
}

// companyName é o cabeçalho das planilhas
func companyName(actor *Actor) string {
	c, err := tenant.FindCompany(actor.CompanyID)
	if err != nil {
		return actor.CompanyID
	}
	return c.Name
}

func (s *ReportService) printed(ctx context.Context, actor *Actor, details, module string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(ctx, actor, audit.ActionPrint, details, module)
}

func (s *ReportService) render(ctx context.Context, actor *Actor, name string, sheet report.Sheet, details, module string) (*report.File, error) {
	f, err := report.Render(name, sheet)
	if err != nil {
		s.log.Error("Erro ao gerar relatório", "report", name, "error", err)
		return nil, err
	}
	s.printed(ctx, actor, details, module)
	return f, nil
}

// Financial imprime contas a pagar ou a receber pelo filtro informado
func (s *ReportService) Financial(ctx context.Context, actor *Actor, f financial.Filter, title string) (*report.File, error) {
	entries, _, err := s.svc.Ledger.List(ctx, actor, f)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = "Contas a Receber"
		if f.Type == financial.TypePayable {
			title = "Contas a Pagar"
		}
	}
	sheet := report.Financial(companyName(actor), title, entries)
	return s.render(ctx, actor, "financeiro-"+string(f.Type), sheet,
		"Imprimiu relatório financeiro: "+title, audit.ModuleFinancial)
}

// Order imprime um pedido de venda ou compra
func (s *ReportService) Order(ctx context.Context, actor *Actor, kind order.Kind, id int) (*report.File, error) {
	detail, err := s.svc.Orders.Get(ctx, actor, kind, id)
	if err != nil {
		return nil, err
	}
	sheet := report.Order(companyName(actor), kind, detail.Order)
	return s.render(ctx, actor, fmt.Sprintf("pedido-%s-%d", kind, id), sheet,
		fmt.Sprintf("Imprimiu pedido #%d", id), orderTag(kind))
}

// Cashier imprime o livro caixa na janela de datas
func (s *ReportService) Cashier(ctx context.Context, actor *Actor, start, end string) (*report.File, error) {
	entries, err := s.svc.Cashier.ListWindow(ctx, actor, start, end)
	if err != nil {
		return nil, err
	}
	data, err := s.load(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	sheet := report.Cashier(companyName(actor), entries, data.Suppliers)
	return s.render(ctx, actor, "livro-caixa", sheet, "Imprimiu relatório do livro caixa", audit.ModuleCashier)
}

// Inventory imprime o estoque independente
func (s *ReportService) Inventory(ctx context.Context, actor *Actor) (*report.File, error) {
	items, err := s.svc.Inventory.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	sheet := report.Inventory(companyName(actor), items)
	return s.render(ctx, actor, "estoque", sheet, "Imprimiu relatório de estoque", audit.ModuleInventory)
}

// Logs imprime o log de auditoria filtrado
func (s *ReportService) Logs(ctx context.Context, actor *Actor, search string) (*report.File, error) {
	entries, err := s.svc.Audit.List(ctx, actor, search)
	if err != nil {
		return nil, err
	}
	sheet := report.Logs(companyName(actor), entries)
	return s.render(ctx, actor, "logs", sheet, "Imprimiu relatório de logs", audit.ModuleLogs)
}

// Deliveries imprime a cobrança de entregas pendentes
func (s *ReportService) Deliveries(ctx context.Context, actor *Actor, search string) (*report.File, error) {
	rows, err := s.svc.Orders.DeliveryReport(ctx, actor, search)
	if err != nil {
		return nil, err
	}
	sheet := report.Deliveries(companyName(actor), rows)
	return s.render(ctx, actor, "entregas", sheet, "Imprimiu relatório de entregas", audit.ModuleSales)
}

// List imprime a lista de clientes, fornecedores ou produtos
func (s *ReportService) List(ctx context.Context, actor *Actor, kind ListKind) (*report.File, error) {
	var (
		sheet report.Sheet
		title string
	)
	switch kind {
	case ListClients, ListSuppliers:
		catalog, label := s.svc.Clients, "Lista de Clientes"
		if kind == ListSuppliers {
			catalog, label = s.svc.Suppliers, "Lista de Fornecedores"
		}
		partners, err := catalog.List(ctx, actor)
		if err != nil {
			return nil, err
		}
		title = label
		sheet = report.Partners(companyName(actor), title, partners)
	case ListProducts:
		products, err := s.svc.Products.List(ctx, actor)
		if err != nil {
			return nil, err
		}
		title = "Lista de Produtos"
		sheet = report.Products(companyName(actor), title, products)
	default:
		return nil, ErrNotFound
	}
	return s.render(ctx, actor, "lista-"+string(kind), sheet, "Imprimiu lista: "+title, audit.ModuleSystem)
}
