package report

import (
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Financial monta o relatório de contas a pagar ou a receber
func Financial(company, title string, entries []financial.Entry) Sheet {
	s := Sheet{
		Company: company,
		Title:   title,
		Headers: []string{"Emissão", "Vencimento", "Baixa", "Documento", "Parceiro", "Descrição", "Valor", "Status", "Baixado por"},
	}
	total := decimal.Zero
	for _, e := range entries {
		doc := e.DocNumber
		if doc == "" {
			doc = e.DocType
		}
		s.Rows = append(s.Rows, []interface{}{
			format.Date(e.IssueDate), format.Date(e.DueDate), format.Date(e.SettlementDate),
			orDash(doc), orDash(e.PartnerName), e.Description, e.Value, e.Status, orDash(e.SettledBy),
		})
		total = total.Add(e.Value)
	}
	s.Footer = [][]interface{}{{"Total", "", "", "", "", "", total}}
	return s
}

// Order monta o documento de um pedido com o resumo de lucro
func Order(company string, kind order.Kind, o order.Order) Sheet {
	label := "Pedido de Venda"
	partnerLabel := "Cliente"
	if kind == order.KindPurchase {
		label = "Pedido de Compra"
		partnerLabel = "Fornecedor"
	}
	s := Sheet{
		Company: company,
		Title: fmt.Sprintf("%s #%d - %s: %s - Emissão: %s - Nº Ped. Cliente: %s",
			label, o.ID, partnerLabel, o.PartnerName, format.Date(o.IssueDate), o.CustomerOrderNumber),
		Headers: []string{"Produto", "Qtd", "Entregue", "Preço Unit.", "Subtotal", "Situação", "Entrega"},
	}
	for _, item := range o.Items {
		s.Rows = append(s.Rows, []interface{}{
			item.Name, item.Quantity, item.Delivered, item.UnitPrice, item.Subtotal(), item.ItemStatus, format.Date(item.DeliveryDate),
		})
	}
	profit := order.ComputeProfit(kind, o.Items)
	s.Footer = [][]interface{}{
		{"Total", "", "", "", o.Total},
		{"Situação", string(o.GeneralStatus)},
		{profit.Label, "", "", "", profit.Value},
		{"Margem (%)", "", "", "", profit.Margin},
	}
	return s
}

// Cashier monta o relatório do livro caixa
func Cashier(company string, entries []cashier.Entry, suppliers []partner.Partner) Sheet {
	s := Sheet{
		Company: company,
		Title:   "Relatório do Livro Caixa",
		Headers: []string{"Data", "Tipo", "NF Entrada", "NF Saída", "Fornecedor", "Valor"},
	}
	for _, e := range entries {
		supplier := "-"
		if p, ok := domain.Find(suppliers, e.SupplierID); ok {
			supplier = p.Name
		}
		s.Rows = append(s.Rows, []interface{}{
			format.Date(e.Date), e.Type.Label(), orDash(e.EntryInvoice), orDash(e.ExitInvoice), supplier, e.Value,
		})
	}
	return s
}

// Inventory monta o relatório do estoque independente
func Inventory(company string, items []product.InventoryItem) Sheet {
	s := Sheet{
		Company: company,
		Title:   "Relatório de Estoque",
		Headers: []string{"Produto", "NCM", "Última NF Entrada", "Estoque", "Unidade", "Custo", "Valor Total"},
	}
	total := decimal.Zero
	for _, i := range items {
		s.Rows = append(s.Rows, []interface{}{
			i.Name, orDash(i.NCM), orDash(i.LastEntryInvoice), i.Stock, orDash(i.Unit), i.Cost, i.TotalValue(),
		})
		total = total.Add(i.TotalValue())
	}
	s.Footer = [][]interface{}{{"Valor Total em Estoque", "", "", "", "", "", total}}
	return s
}

// Logs monta o relatório de auditoria
func Logs(company string, entries []audit.Entry) Sheet {
	s := Sheet{
		Company: company,
		Title:   "Relatório de Logs do Sistema",
		Headers: []string{"Data/Hora", "Usuário", "Ação", "Detalhes", "Módulo"},
	}
	for _, e := range entries {
		module := e.Module
		if module == "" {
			module = audit.ModuleSystem
		}
		s.Rows = append(s.Rows, []interface{}{
			format.DateTime(e.Timestamp), fmt.Sprintf("%s (%s)", e.User, e.Role), strings.ToUpper(string(e.Action)), e.Details, module,
		})
	}
	return s
}

// Deliveries monta o relatório de cobrança de entregas
func Deliveries(company string, rows []order.PendingDelivery) Sheet {
	s := Sheet{
		Company: company,
		Title:   "Relatório de Cobrança (Entregas)",
		Headers: []string{"Pedido", "Nº Ped. Cliente", "Fornecedor", "Telefone", "Produto", "Qtd", "Entregue", "Pendente", "Previsão"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []interface{}{
			r.OrderID, r.CustomerOrderNumber, r.SupplierName, r.SupplierPhone, r.Name, r.Quantity, r.Delivered, r.Pending, format.Date(r.DeliveryDate),
		})
	}
	return s
}

// Partners monta a lista de clientes ou fornecedores
func Partners(company, title string, partners []partner.Partner) Sheet {
	s := Sheet{
		Company: company,
		Title:   title,
		Headers: []string{"Código", "Nome", "Documento", "Telefone", "Endereço", "Cidade", "Contato"},
	}
	for _, p := range partners {
		s.Rows = append(s.Rows, []interface{}{
			p.ID, p.Name, orDash(p.Document), orDash(p.Phone), orDash(p.Address), orDash(p.City), orDash(p.Contact),
		})
	}
	return s
}

// Products monta a lista de produtos
func Products(company, title string, products []product.Product) Sheet {
	s := Sheet{
		Company: company,
		Title:   title,
		Headers: []string{"Código", "Nome", "Descrição do Cliente", "NCM", "Unidade", "Preço", "Custo", "Estoque"},
	}
	for _, p := range products {
		s.Rows = append(s.Rows, []interface{}{
			p.ID, p.Name, orDash(p.CustomerDescription), orDash(p.NCM), orDash(p.Unit), p.Price, p.Cost, p.Stock,
		})
	}
	return s
}
