package financial

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInstallments(t *testing.T) {
	base := Entry{
		Type:        TypeReceivable,
		Description: "Venda parcelada",
		Value:       decimal.NewFromInt(300),
		DueDate:     "2024-01-10",
		Status:      StatusReceived,
	}

	got, err := Installments(base, 3, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("esperava 3 parcelas, obteve %d", len(got))
	}

	wantDates := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	wantDesc := []string{"Venda parcelada (1/3)", "Venda parcelada (2/3)", "Venda parcelada (3/3)"}
	total := decimal.Zero
	for i, e := range got {
		if e.ID != 9+i {
			t.Errorf("parcela %d: id %d", i, e.ID)
		}
		if e.DueDate != wantDates[i] || e.Description != wantDesc[i] {
			t.Errorf("parcela %d: %s %q", i, e.DueDate, e.Description)
		}
		if e.Status != StatusPending || !e.Value.Equal(base.Value) {
			t.Errorf("parcela %d: situação %s valor %s", i, e.Status, e.Value)
		}
		total = total.Add(e.Value)
	}
	if !total.Equal(decimal.NewFromInt(900)) {
		t.Errorf("total das parcelas = %s", total)
	}
}

func TestInstallments_Invalid(t *testing.T) {
	if _, err := Installments(Entry{DueDate: "2024-01-10"}, 0, 1); !errors.Is(err, ErrInvalidInstallment) {
		t.Errorf("esperava ErrInvalidInstallment, obteve %v", err)
	}
	if _, err := Installments(Entry{DueDate: "10/01/2024"}, 2, 1); !errors.Is(err, ErrInvalidDueDate) {
		t.Errorf("esperava ErrInvalidDueDate, obteve %v", err)
	}
}

func TestSettle(t *testing.T) {
	e := Entry{Type: TypePayable, Status: StatusPending}
	if err := e.Settle("2024-05-10", "Administrador"); err != nil {
		t.Fatal(err)
	}
	if e.Status != StatusPaid || e.SettlementDate != "2024-05-10" || e.SettledBy != "Administrador" {
		t.Errorf("baixa incorreta: %+v", e)
	}
	if err := e.Settle("2024-05-11", "outro"); !errors.Is(err, ErrAlreadySettled) {
		t.Errorf("segunda baixa deveria falhar, obteve %v", err)
	}

	r := Entry{Type: TypeReceivable, Status: StatusPending}
	_ = r.Settle("2024-05-10", "x")
	if r.Status != StatusReceived {
		t.Errorf("recebível deveria ficar Recebido, ficou %s", r.Status)
	}
}

func TestValidate(t *testing.T) {
	valid := Entry{Type: TypePayable, Description: "Aluguel", Value: decimal.NewFromInt(10), DueDate: "2024-05-10"}
	tests := []struct {
		name   string
		mutate func(*Entry)
		want   error
	}{
		{"válido", func(*Entry) {}, nil},
		{"tipo", func(e *Entry) { e.Type = "x" }, ErrInvalidType},
		{"descrição", func(e *Entry) { e.Description = " " }, ErrEmptyDescription},
		{"valor", func(e *Entry) { e.Value = decimal.Zero }, ErrInvalidValue},
		{"vencimento", func(e *Entry) { e.DueDate = "" }, ErrInvalidDueDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
