package order

import (
	"errors"
	"testing"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		previous Status
		want     Status
	}{
		{"nada entregue", []Item{{Quantity: 5}, {Quantity: 2}}, StatusOpen, StatusOpen},
		{"entrega parcial", []Item{{Quantity: 5, Delivered: 1}, {Quantity: 2}}, StatusOpen, StatusPartial},
		{"tudo entregue", []Item{{Quantity: 5, Delivered: 5}, {Quantity: 2, Delivered: 2}}, StatusPartial, StatusDelivered},
		{"entrega acima do pedido", []Item{{Quantity: 5, Delivered: 7}}, StatusOpen, StatusDelivered},
		{"uma linha completa outra vazia", []Item{{Quantity: 5, Delivered: 5}, {Quantity: 2}}, StatusOpen, StatusPartial},
		{"cancelado permanece", []Item{{Quantity: 5, Delivered: 5}}, StatusCancelled, StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.items, tt.previous); got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveStatus_OrderIndependent(t *testing.T) {
	a := []Item{{ProductID: 1, Quantity: 3, Delivered: 3}, {ProductID: 2, Quantity: 4}, {ProductID: 3, Quantity: 1, Delivered: 1}}
	b := []Item{a[2], a[0], a[1]}
	if DeriveStatus(a, StatusOpen) != DeriveStatus(b, StatusOpen) {
		t.Errorf("situação depende da ordem das linhas")
	}
}

func TestItemStatusFor(t *testing.T) {
	if ItemStatusFor(10, 0) != ItemPending || ItemStatusFor(10, 4) != ItemPartial || ItemStatusFor(10, 10) != ItemDelivered {
		t.Errorf("derivação da situação da linha incorreta")
	}
}

func TestKindDeltas(t *testing.T) {
	if !KindSale.CreationDelta(50).Equal(dec("-50")) || !KindSale.CancellationDelta(50).Equal(dec("50")) {
		t.Errorf("deltas de venda incorretos")
	}
	if !KindPurchase.CreationDelta(7).Equal(dec("7")) || !KindPurchase.CancellationDelta(7).Equal(dec("-7")) {
		t.Errorf("deltas de compra incorretos")
	}
}

func TestComputeProfit(t *testing.T) {
	items := []Item{
		{Quantity: 10, UnitPrice: dec("35.90"), Price: dec("35.90"), Cost: dec("28.50")},
		{Quantity: 2, UnitPrice: dec("10"), Price: dec("10"), Cost: dec("0")},
	}

	sale := ComputeProfit(KindSale, items)
	if sale.Label != LabelRealProfit || !sale.Total.Equal(dec("379")) || !sale.Cost.Equal(dec("285")) {
		t.Fatalf("venda: %+v", sale)
	}
	if !sale.Value.Equal(dec("94")) || !sale.Margin.Equal(dec("32.98")) {
		t.Errorf("lucro da venda: valor %s margem %s", sale.Value, sale.Margin)
	}

	purchaseItems := []Item{{Quantity: 100, UnitPrice: dec("28.50"), Price: dec("35.90"), Cost: dec("28.50")}}
	purchase := ComputeProfit(KindPurchase, purchaseItems)
	if purchase.Label != LabelProjectedProfit || !purchase.Cost.Equal(dec("2850")) || !purchase.Revenue.Equal(dec("3590")) {
		t.Fatalf("compra: %+v", purchase)
	}

	zero := ComputeProfit(KindSale, []Item{{Quantity: 1, UnitPrice: dec("5")}})
	if !zero.Margin.IsZero() {
		t.Errorf("margem com custo zero deveria ser zero, obteve %s", zero.Margin)
	}
}

func TestDiffItems(t *testing.T) {
	oldItems := []Item{
		{ProductID: 1, Name: "Cimento", Quantity: 10, UnitPrice: dec("35.90")},
		{ProductID: 2, Name: "Tinta", Quantity: 1, UnitPrice: dec("289.90")},
	}

	if got := DiffItems(oldItems, []Item{oldItems[1], oldItems[0]}); got != NoItemChanges {
		t.Errorf("reordenar não deveria gerar diferenças: %q", got)
	}

	newItems := []Item{
		{ProductID: 1, Name: "Cimento", Quantity: 12, UnitPrice: dec("36")},
		{ProductID: 3, Name: "Tijolo", Quantity: 500, UnitPrice: dec("1.2")},
	}
	want := "ALTEROU Qtd 'Cimento': 10 -> 12 | " +
		"ALTEROU Preço 'Cimento': R$ 35,90 -> R$ 36,00 | " +
		"REMOVEU item 'Tinta' (Qtd: 1) | " +
		"ADICIONOU item 'Tijolo' (Qtd: 500)"
	if got := DiffItems(oldItems, newItems); got != want {
		t.Errorf("DiffItems() =\n%q\nwant\n%q", got, want)
	}
}

func TestCart(t *testing.T) {
	products := []product.Product{
		{ID: 1, Name: "Cimento", Price: dec("35.90"), Cost: dec("28.50"), Stock: dec("150")},
	}
	suppliers := []partner.Partner{{ID: 4, Name: "Logística Express"}}

	cart := NewCart(KindSale, "2024-05-10", nil)

	tests := []struct {
		name    string
		line    Line
		wantErr error
	}{
		{"sem produto", Line{Quantity: 1}, ErrIncompleteLine},
		{"quantidade zero", Line{ProductID: 1}, ErrIncompleteLine},
		{"produto inexistente", Line{ProductID: 9, Quantity: 1}, ErrProductNotFound},
		{"entrega negativa", Line{ProductID: 1, Quantity: 1, Delivered: -1}, ErrNegativeQuantity},
		{"entrega acima do pedido", Line{ProductID: 1, Quantity: 1, Delivered: 2}, ErrOverDelivery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := cart.Add(tt.line, products, suppliers); !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("linhas inválidas não devem entrar no carrinho")
	}

	item, err := cart.Add(Line{ProductID: 1, Quantity: 50, Delivered: 10, SupplierID: 4}, products, suppliers)
	if err != nil {
		t.Fatal(err)
	}
	if !item.UnitPrice.Equal(dec("35.90")) || item.ItemStatus != ItemPartial || item.DeliveryDate != "2024-05-10" {
		t.Errorf("item montado incorretamente: %+v", item)
	}
	if item.SupplierName != "Logística Express" {
		t.Errorf("fornecedor da linha não resolvido: %+v", item)
	}

	line, err := cart.EditLine(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items()) != 0 || line.Quantity != 50 || line.Delivered != 10 || line.SupplierID != 4 {
		t.Errorf("EditLine deve remover e devolver o rascunho: %+v", line)
	}
	if _, err := cart.EditLine(0); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("EditLine fora do intervalo = %v", err)
	}

	purchase := NewCart(KindPurchase, "2024-05-10", nil)
	item, _ = purchase.Add(Line{ProductID: 1, Quantity: 1}, products, nil)
	if !item.UnitPrice.Equal(dec("28.50")) {
		t.Errorf("compra deve usar o custo como preço unitário, obteve %s", item.UnitPrice)
	}
}

func TestValidate(t *testing.T) {
	o := &Order{}
	if !errors.Is(o.Validate(), ErrMissingPartner) {
		t.Errorf("esperava ErrMissingPartner")
	}
	o.PartnerID = 1
	if !errors.Is(o.Validate(), ErrEmptyItems) {
		t.Errorf("esperava ErrEmptyItems")
	}
}

func TestCart_KeepPreservesSnapshot(t *testing.T) {
	snapshot := Item{ProductID: 1, Name: "Cimento antigo", UnitPrice: dec("30"), Price: dec("30"), Cost: dec("20"), DeliveryDate: "2024-01-02"}
	cart := NewCart(KindSale, "2024-05-10", nil)

	item, err := cart.Keep(Line{ProductID: 1, Quantity: 4, Delivered: 4}, snapshot, nil)
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "Cimento antigo" || !item.UnitPrice.Equal(dec("30")) || item.DeliveryDate != "2024-01-02" {
		t.Errorf("snapshot não preservado: %+v", item)
	}
	if item.ItemStatus != ItemDelivered {
		t.Errorf("situação da linha = %s", item.ItemStatus)
	}
	if _, err := cart.Keep(Line{ProductID: 1, Quantity: 1, Delivered: 3}, snapshot, nil); !errors.Is(err, ErrOverDelivery) {
		t.Errorf("Keep() deveria validar a linha: %v", err)
	}
}

func TestPendingDeliveries(t *testing.T) {
	purchases := []Order{
		{ID: 7, PartnerName: "Votorantim Cimentos", Items: []Item{
			{ProductID: 1, Name: "Cimento", Quantity: 100, Delivered: 40, DeliveryDate: "2024-05-01"},
			{ProductID: 2, Name: "Areia", Quantity: 10, Delivered: 10},
		}},
		{ID: 8, PartnerName: "Sem Cadastro", CustomerOrderNumber: "PC-55", Items: []Item{{ProductID: 3, Name: "Tinta", Quantity: 2}}},
	}
	suppliers := []partner.Partner{{ID: 1, Name: "Votorantim Cimentos", Phone: "(11) 3456-7890"}}

	got := PendingDeliveries(purchases, suppliers, "")
	if len(got) != 2 {
		t.Fatalf("esperava 2 pendências, obteve %d", len(got))
	}
	if got[0].Pending != 60 || got[0].SupplierPhone != "(11) 3456-7890" || got[0].CustomerOrderNumber != "Sem Número" {
		t.Errorf("primeira pendência incorreta: %+v", got[0])
	}
	if got[1].SupplierPhone != "N/A" {
		t.Errorf("fornecedor sem cadastro deveria ter telefone N/A: %+v", got[1])
	}

	if got := PendingDeliveries(purchases, suppliers, "pc-55"); len(got) != 1 || got[0].OrderID != 8 {
		t.Errorf("busca por número do cliente: %+v", got)
	}
}
