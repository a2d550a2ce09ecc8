package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")

	d, err := f.svc.Dashboard.Summary(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	if d.Restricted || d.Clients != 4 || d.Products != 6 || d.Suppliers != 4 {
		t.Errorf("contagens = %+v", d)
	}

	if len(d.Chart) != 6 {
		t.Fatalf("gráfico com %d meses", len(d.Chart))
	}
	first, last := d.Chart[0], d.Chart[5]
	if first.Month != "2023-12" || first.Label != "Dez" || last.Month != "2024-05" || last.Label != "Mai" {
		t.Errorf("meses do gráfico: %+v ... %+v", first, last)
	}
	// a venda cancelada fica de fora; a compra 501 é de abril
	if !last.Sales.Equal(decimal.NewFromInt(7795)) || !last.Purchases.Equal(decimal.NewFromInt(8400)) {
		t.Errorf("maio = vendas %s compras %s", last.Sales, last.Purchases)
	}
	if !d.Chart[4].Purchases.Equal(decimal.NewFromInt(2850)) {
		t.Errorf("abril = compras %s", d.Chart[4].Purchases)
	}

	// custo das linhas vem do produto quando não foi gravado
	if !d.MonthProfit.Equal(decimal.NewFromInt(3120)) {
		t.Errorf("lucro do mês = %s, want 3120", d.MonthProfit)
	}

	if len(d.TopProducts) != 2 || d.TopProducts[0].Name != "Tijolo 8 Furos" || !d.TopProducts[0].Value.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("ranking de produtos = %+v", d.TopProducts)
	}
	if len(d.TopClients) != 2 || d.TopClients[0].Name != "Construtora Horizonte" {
		t.Errorf("ranking de clientes = %+v", d.TopClients)
	}
	if len(d.TopSuppliers) != 2 || d.TopSuppliers[0].Name != "Logística Express" {
		t.Errorf("ranking de fornecedores = %+v", d.TopSuppliers)
	}

	if d.LateDeliveries != 0 || d.BillsToPay != 1 || d.BillsToReceive != 1 {
		t.Errorf("atrasos %d a pagar %d a receber %d", d.LateDeliveries, d.BillsToPay, d.BillsToReceive)
	}
}

func TestDashboard_Restricted(t *testing.T) {
	f := newFixture(t)
	seller := f.actor(t, "vendedor", "123")

	d, err := f.svc.Dashboard.Summary(context.Background(), seller)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Restricted || d.Clients != 4 || d.Products != 6 || d.Chart != nil || !d.MonthProfit.IsZero() {
		t.Errorf("painel restrito = %+v", d)
	}
}

func TestDashboard_NoCompany(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Session.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Dashboard.Summary(context.Background(), a); !errors.Is(err, service.ErrNoCompany) {
		t.Errorf("sem empresa = %v", err)
	}
}

func TestTop_Limit(t *testing.T) {
	var in []service.Ranking
	for i := 1; i <= 8; i++ {
		in = append(in, service.Ranking{Name: string(rune('A' + i)), Value: decimal.NewFromInt(int64(i))})
	}
	got := service.Top(in)
	if len(got) != service.RankingSize || !got[0].Value.Equal(decimal.NewFromInt(8)) || !got[4].Value.Equal(decimal.NewFromInt(4)) {
		t.Errorf("top() = %+v", got)
	}
}
