package confirm

import (
	"context"
	"errors"
	"testing"
)

func TestRegistry_ConfirmRunsOnce(t *testing.T) {
	r := NewRegistry()
	calls := 0
	p := r.Request("1:admin", "Excluir Registro", "Tem a certeza?", func(ctx context.Context) (interface{}, error) {
		calls++
		return "ok", nil
	})
	if p.Token == "" || p.Title != "Excluir Registro" {
		t.Fatalf("pendência inválida: %+v", p)
	}

	got, err := r.Confirm(context.Background(), "1:admin", p.Token)
	if err != nil || got != "ok" {
		t.Fatalf("Confirm() = %v, %v", got, err)
	}
	if _, err := r.Confirm(context.Background(), "1:admin", p.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("segunda confirmação deveria falhar, obteve %v", err)
	}
	if calls != 1 {
		t.Errorf("comando executado %d vezes", calls)
	}
}

func TestRegistry_Dismiss(t *testing.T) {
	r := NewRegistry()
	executed := false
	p := r.Request("owner", "t", "m", func(ctx context.Context) (interface{}, error) {
		executed = true
		return nil, nil
	})

	if err := r.Dismiss("owner", p.Token); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Confirm(context.Background(), "owner", p.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("confirmação descartada não deveria executar: %v", err)
	}
	if executed {
		t.Errorf("comando descartado foi executado")
	}
}

func TestRegistry_OwnershipAndReplacement(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context) (interface{}, error) { return nil, nil }

	first := r.Request("a", "t", "m", noop)
	if _, err := r.Confirm(context.Background(), "b", first.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("token de outro dono deveria falhar: %v", err)
	}

	second := r.Request("a", "t2", "m2", noop)
	if _, err := r.Confirm(context.Background(), "a", first.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("pedido substituído deveria falhar: %v", err)
	}
	current, ok := r.Current("a")
	if !ok || current.Token != second.Token {
		t.Errorf("Current() = %+v, %v", current, ok)
	}
}
