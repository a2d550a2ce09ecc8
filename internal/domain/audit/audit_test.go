package audit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPrepend_Cap(t *testing.T) {
	var logs []Entry
	for i := 1; i <= MaxEntries+25; i++ {
		logs = Prepend(logs, Entry{ID: i})
	}
	if len(logs) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(logs), MaxEntries)
	}
	if logs[0].ID != MaxEntries+25 || logs[len(logs)-1].ID != 26 {
		t.Errorf("deveria manter as mais recentes em ordem decrescente: primeiro %d último %d", logs[0].ID, logs[len(logs)-1].ID)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].ID <= logs[i].ID {
			t.Fatalf("ordem quebrada na posição %d", i)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	now := time.UnixMilli(1715000000000)
	logs := []Entry{{ID: int(now.UnixMilli())}}
	if id := NewID(now, logs); id != int(now.UnixMilli())+1 {
		t.Errorf("NewID = %d, deveria avançar além do existente", id)
	}
	if id := NewID(now, nil); id != int(now.UnixMilli()) {
		t.Errorf("NewID sem histórico = %d", id)
	}
}

type sample struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Phone string          `json:"phone,omitempty"`
	Other string          `json:"other"`
}

func TestDiff(t *testing.T) {
	before := sample{Name: "Cimento", Price: decimal.RequireFromString("35.90"), Other: "a"}
	after := sample{Name: "Cimento CP-II", Price: decimal.RequireFromString("36.5"), Phone: "(11) 3456-7890", Other: "b"}

	got, err := Diff(before, after, []string{"name", "price", "phone"})
	if err != nil {
		t.Fatal(err)
	}
	want := "Nome: Cimento -> Cimento CP-II | Preço: 35.9 -> 36.5 | Telefone:  -> (11) 3456-7890"
	if got != want {
		t.Errorf("Diff() =\n%q\nwant\n%q", got, want)
	}

	same, _ := Diff(before, before, EntityFields)
	if same != "" {
		t.Errorf("registros iguais não deveriam gerar diferenças: %q", same)
	}
}

func TestLabel(t *testing.T) {
	if Label("docNumber") != "Nº Doc" || Label("entryInvoice") != "entryInvoice" {
		t.Errorf("tradução de rótulos incorreta")
	}
}

func TestEntryTime(t *testing.T) {
	for _, ts := range []string{"2024-05-10T10:30:00", "2024-05-10T10:30:00.123Z"} {
		if _, err := (Entry{Timestamp: ts}).Time(); err != nil {
			t.Errorf("Time(%q) = %v", ts, err)
		}
	}
}

func TestSearch(t *testing.T) {
	logs := []Entry{
		{ID: 3, User: "admin", Action: ActionLogin, Details: "Login realizado", Module: ModuleLogin},
		{ID: 2, User: "maria", Action: ActionCreate, Details: "Criou novo registro: Cimento", Module: ModuleProducts},
		{ID: 1, User: "Sistema", Action: ActionSystem, Details: "Falha de login: joao", Module: ModuleSystem},
	}
	tests := []struct {
		term string
		want []int
	}{
		{"", []int{3, 2, 1}},
		{"CIMENTO", []int{2}},
		{"login", []int{3, 1}},
		{"produtos", []int{2}},
		{"criar", []int{2}},
		{"inexistente", nil},
	}
	for _, tt := range tests {
		got := Search(logs, tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %d entradas, want %d", tt.term, len(got), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("Search(%q)[%d] = %d, want %d", tt.term, i, got[i].ID, id)
			}
		}
	}
}
