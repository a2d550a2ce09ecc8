package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

func TestCatalog_Save(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")

	p, err := f.svc.Clients.Save(ctx, admin, partner.Partner{Name: "Nova Loja", Document: "11222333000181", Phone: "11987654321"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 5 || p.Document != "11.222.333/0001-81" || p.Phone != "(11) 98765-4321" {
		t.Errorf("cliente = %+v", p)
	}
	if last := f.lastLog(t, matriz); last.Details != "Criou novo registro: Nova Loja" || last.Module != audit.ModuleClients {
		t.Errorf("entrada de criação = %+v", last)
	}

	if _, err := f.svc.Clients.Save(ctx, admin, p); err != nil {
		t.Fatal(err)
	}
	if last := f.lastLog(t, matriz); last.Details != "Salvou sem alterações." {
		t.Errorf("entrada sem alterações = %q", last.Details)
	}

	p.Phone = "1130302020"
	if _, err := f.svc.Clients.Save(ctx, admin, p); err != nil {
		t.Fatal(err)
	}
	if last := f.lastLog(t, matriz); !strings.HasPrefix(last.Details, "Alterou Nova Loja: [ ") || !strings.Contains(last.Details, "(11) 3030-2020") {
		t.Errorf("entrada de alteração = %q", last.Details)
	}

	if _, err := f.svc.Clients.Save(ctx, admin, partner.Partner{Name: "  "}); !service.IsValidation(err) {
		t.Errorf("nome vazio = %v", err)
	}
	if _, err := f.svc.Clients.Save(ctx, admin, partner.Partner{ID: 77, Name: "Fantasma"}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("id inexistente = %v", err)
	}
}

func TestCatalog_CreateUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")

	created, err := f.svc.Suppliers.Create(ctx, admin, partner.Partner{ID: 1, Name: "Distribuidora Sul"})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 1 {
		t.Fatalf("Create não deveria sobrescrever o id informado: %+v", created)
	}

	updated, err := f.svc.Suppliers.Update(ctx, admin, created.ID, partner.Partner{Name: "Distribuidora Sul Ltda"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != created.ID || updated.Name != "Distribuidora Sul Ltda" {
		t.Errorf("fornecedor atualizado = %+v", updated)
	}
	if _, err := f.svc.Suppliers.Update(ctx, admin, 0, updated); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Update sem id = %v", err)
	}
}

func TestCatalog_DeletePermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	manager := f.actor(t, "gerente", "123")
	warehouse := f.actor(t, "almox", "123")
	seller := f.actor(t, "vendedor", "123")

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"gerente exclui cliente", func() error { _, err := f.svc.Clients.RequestDelete(ctx, manager, 1); return err }, service.ErrAdminOnlyDelete},
		{"vendedor exclui produto", func() error { _, err := f.svc.Products.RequestDelete(ctx, seller, 1); return err }, service.ErrAdminOnlyDelete},
		{"vendedor sem estoque", func() error { _, err := f.svc.Inventory.RequestDelete(ctx, seller, 1); return err }, service.ErrModuleDenied},
		{"gerente exclui inexistente", func() error { _, err := f.svc.Inventory.RequestDelete(ctx, manager, 99); return err }, service.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("erro = %v, want %v", err, tt.want)
			}
		})
	}

	p, err := f.svc.Inventory.RequestDelete(ctx, warehouse, 1)
	if err != nil {
		t.Fatal(err)
	}
	f.confirm(t, warehouse, p.Token)
	if _, ok := domain.Find(f.data(t, matriz).InventoryItems, 1); ok {
		t.Errorf("item de estoque deveria ter sido excluído")
	}
	if last := f.lastLog(t, matriz); last.Details != "Excluiu permanentemente: Cimento CP II - Reserva Técnica" || last.User != "almox" {
		t.Errorf("entrada de exclusão = %+v", last)
	}
}

func TestCashier(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")

	if _, err := f.svc.Cashier.Save(ctx, admin, cashier.Entry{Date: "2024-04-02", Type: cashier.TypeExit, EntryInvoice: "NF-1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Cashier.Save(ctx, admin, cashier.Entry{Type: cashier.TypeExit}); !service.IsValidation(err) {
		t.Errorf("sem data = %v", err)
	}

	may, err := f.svc.Cashier.ListWindow(ctx, admin, "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatal(err)
	}
	if len(may) != 2 {
		t.Errorf("lançamentos de maio = %d, want 2", len(may))
	}
	all, _ := f.svc.Cashier.ListWindow(ctx, admin, "", "")
	if len(all) != 3 {
		t.Errorf("todos os lançamentos = %d, want 3", len(all))
	}

	p, err := f.svc.Cashier.RequestDelete(ctx, admin, 3)
	if err != nil {
		t.Fatal(err)
	}
	f.confirm(t, admin, p.Token)
	if last := f.lastLog(t, matriz); last.Details != "Excluiu permanentemente: ID 3" {
		t.Errorf("entrada de exclusão = %q", last.Details)
	}
}
