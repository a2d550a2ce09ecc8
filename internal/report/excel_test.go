package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func open(t *testing.T, f *File) *excelize.File {
	t.Helper()
	x, err := excelize.OpenReader(bytes.NewReader(f.Content))
	if err != nil {
		t.Fatalf("planilha inválida: %v", err)
	}
	t.Cleanup(func() { x.Close() })
	return x
}

func cell(t *testing.T, x *excelize.File, ref string) string {
	t.Helper()
	v, err := x.GetCellValue(sheetName, ref)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRender_Financial(t *testing.T) {
	entries := []financial.Entry{
		{ID: 1, IssueDate: "2024-05-01", DueDate: "2024-05-10", DocType: "Boleto", PartnerName: "Votorantim", Description: "Cimento", Value: decimal.RequireFromString("100.50"), Status: financial.StatusPending},
		{ID: 2, DueDate: "2024-06-10", DocNumber: "NF-77", Description: "Areia", Value: decimal.RequireFromString("49.50"), Status: financial.StatusPaid},
	}
	f, err := Render("contas", Financial("Matriz", "Contas a Pagar", entries))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "contas.xlsx" {
		t.Errorf("nome do arquivo = %s", f.Name)
	}
	x := open(t, f)

	if got := cell(t, x, "A1"); got != "Matriz" {
		t.Errorf("empresa = %q", got)
	}
	if got := cell(t, x, "E4"); got != "Parceiro" {
		t.Errorf("cabeçalho = %q", got)
	}
	if got := cell(t, x, "B5"); got != "10/05/2024" {
		t.Errorf("vencimento = %q", got)
	}
	if got := cell(t, x, "D6"); got != "NF-77" {
		t.Errorf("documento = %q", got)
	}
	if got := cell(t, x, "C5"); got != "-" {
		t.Errorf("baixa vazia = %q", got)
	}
	// linha em branco seguida do total
	if got := cell(t, x, "A8"); got != "Total" {
		t.Errorf("rodapé = %q", got)
	}
	if got := cell(t, x, "G8"); got != "150" {
		t.Errorf("total = %q", got)
	}
}

func TestRender_Order(t *testing.T) {
	o := order.Order{
		ID: 3, PartnerName: "Construtora Silva", IssueDate: "2024-05-10", CustomerOrderNumber: "PC-1",
		GeneralStatus: order.StatusOpen, Total: decimal.RequireFromString("359"),
		Items: []order.Item{{Name: "Cimento", Quantity: 10, UnitPrice: decimal.RequireFromString("35.90"), Price: decimal.RequireFromString("35.90"), Cost: decimal.RequireFromString("28.50"), ItemStatus: order.ItemPending}},
	}
	f, err := Render("pedido", Order("Matriz", order.KindSale, o))
	if err != nil {
		t.Fatal(err)
	}
	x := open(t, f)
	if got := cell(t, x, "A2"); !strings.HasPrefix(got, "Pedido de Venda #3 - Cliente: Construtora Silva") {
		t.Errorf("título = %q", got)
	}
	if got := cell(t, x, "E5"); got != "359" {
		t.Errorf("subtotal = %q", got)
	}
	if got := cell(t, x, "A9"); got != order.LabelRealProfit {
		t.Errorf("rótulo do lucro = %q", got)
	}
}

func TestLogs(t *testing.T) {
	s := Logs("Matriz", []audit.Entry{{Timestamp: "2024-05-10T12:00:00.000Z", User: "admin", Role: "admin", Action: audit.ActionLogin, Details: "Login realizado"}})
	if len(s.Rows) != 1 {
		t.Fatalf("linhas = %d", len(s.Rows))
	}
	row := s.Rows[0]
	if row[1] != "admin (admin)" || row[2] != "LOGIN" || row[4] != audit.ModuleSystem {
		t.Errorf("linha do log = %v", row)
	}
}
