package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/report"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

func TestReports_PrintLogs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")

	tests := []struct {
		name    string
		print   func() (*report.File, error)
		details string
		module  string
	}{
		{
			"financeiro",
			func() (*report.File, error) {
				return f.svc.Reports.Financial(ctx, admin, financial.Filter{Type: financial.TypePayable, Mode: financial.ViewOpen}, "")
			},
			"Imprimiu relatório financeiro: Contas a Pagar", audit.ModuleFinancial,
		},
		{
			"pedido de compra",
			func() (*report.File, error) { return f.svc.Reports.Order(ctx, admin, order.KindPurchase, 501) },
			"Imprimiu pedido #501", audit.ModulePurchases,
		},
		{
			"livro caixa",
			func() (*report.File, error) { return f.svc.Reports.Cashier(ctx, admin, "", "") },
			"Imprimiu relatório do livro caixa", audit.ModuleCashier,
		},
		{
			"estoque",
			func() (*report.File, error) { return f.svc.Reports.Inventory(ctx, admin) },
			"Imprimiu relatório de estoque", audit.ModuleInventory,
		},
		{
			"logs",
			func() (*report.File, error) { return f.svc.Reports.Logs(ctx, admin, "") },
			"Imprimiu relatório de logs", audit.ModuleLogs,
		},
		{
			"entregas",
			func() (*report.File, error) { return f.svc.Reports.Deliveries(ctx, admin, "") },
			"Imprimiu relatório de entregas", audit.ModuleSales,
		},
		{
			"lista de fornecedores",
			func() (*report.File, error) { return f.svc.Reports.List(ctx, admin, service.ListSuppliers) },
			"Imprimiu lista: Lista de Fornecedores", audit.ModuleSystem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := tt.print()
			if err != nil {
				t.Fatal(err)
			}
			if len(file.Content) == 0 || !strings.HasSuffix(file.Name, ".xlsx") {
				t.Errorf("arquivo = %s (%d bytes)", file.Name, len(file.Content))
			}
			last := f.lastLog(t, matriz)
			if last.Action != audit.ActionPrint || last.Details != tt.details || last.Module != tt.module {
				t.Errorf("entrada = %+v", last)
			}
		})
	}
}

func TestReports_Denied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.actor(t, "vendedor", "123")
	before := len(f.data(t, matriz).Logs)

	if _, err := f.svc.Reports.Logs(ctx, seller, ""); !errors.Is(err, service.ErrModuleDenied) {
		t.Errorf("vendedor imprimindo logs = %v", err)
	}
	if _, err := f.svc.Reports.List(ctx, seller, service.ListKind("pedidos")); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("lista desconhecida = %v", err)
	}
	if got := len(f.data(t, matriz).Logs); got != before {
		t.Errorf("impressão negada não deve gerar log")
	}
}

func TestAudit_List(t *testing.T) {
	f := newFixture(t)
	finance := f.actor(t, "finan", "123")

	entries, err := f.svc.Audit.List(context.Background(), finance, "acessou")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].User != "finan" {
		t.Errorf("busca = %+v", entries)
	}
}
