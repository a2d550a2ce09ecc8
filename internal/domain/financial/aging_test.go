package financial

import (
	"testing"

	"github.com/shopspring/decimal"
)

func entries() []Entry {
	v := decimal.NewFromInt
	return []Entry{
		{ID: 1, Type: TypePayable, Value: v(100), DueDate: "2024-05-01", Status: StatusPending},
		{ID: 2, Type: TypePayable, Value: v(200), DueDate: "2024-05-10", Status: StatusPending},
		{ID: 3, Type: TypePayable, Value: v(300), DueDate: "2024-06-01", Status: StatusPending},
		{ID: 4, Type: TypePayable, Value: v(400), DueDate: "2024-04-01", Status: StatusPaid, SettlementDate: "2024-05-02"},
		{ID: 5, Type: TypeReceivable, Value: v(500), DueDate: "2024-04-01", Status: StatusReceived},
	}
}

func TestSummarize_Partition(t *testing.T) {
	list := Filter{Type: TypePayable}.Apply(entries())
	s := Summarize(list, "2024-05-10")

	if !s.Overdue.Equal(decimal.NewFromInt(100)) || !s.Today.Equal(decimal.NewFromInt(200)) ||
		!s.Future.Equal(decimal.NewFromInt(300)) || !s.Settled.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("faixas incorretas: %+v", s)
	}

	sum := decimal.Zero
	for _, e := range list {
		sum = sum.Add(e.Value)
	}
	if !s.Overdue.Add(s.Today).Add(s.Future).Add(s.Settled).Equal(sum) {
		t.Errorf("faixas não somam o total filtrado")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"em aberto", Filter{Type: TypePayable, Mode: ViewOpen}, []int{1, 2, 3}},
		{"baixadas", Filter{Type: TypePayable, Mode: ViewSettled}, []int{4}},
		{"aberto com janela", Filter{Type: TypePayable, Mode: ViewOpen, Start: "2024-05-05", End: "2024-05-31"}, []int{2}},
		{"baixada compara data de baixa", Filter{Type: TypePayable, Mode: ViewSettled, Start: "2024-05-01"}, []int{4}},
		{"baixada sem data de baixa usa vencimento", Filter{Type: TypeReceivable, Mode: ViewSettled, End: "2024-04-30"}, []int{5}},
		{"todos os tipos", Filter{}, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(entries())
			if len(got) != len(tt.want) {
				t.Fatalf("obteve %d lançamentos, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("posição %d: id %d, want %d", i, e.ID, tt.want[i])
				}
			}
		})
	}
}
