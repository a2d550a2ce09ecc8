package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/vcontrol-pro/internal/service"
)

func TestCompany_Lock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")
	manager := f.actor(t, "gerente", "123")

	state, err := f.svc.Company.LockState(ctx, matriz)
	if err != nil {
		t.Fatal(err)
	}
	if !state.Locked || state.CurrentMonth != "2024-05" || state.LockDay != 5 {
		t.Errorf("bloqueio = %+v", state)
	}

	if _, err := f.svc.Company.RequestUnlock(ctx, manager); !errors.Is(err, service.ErrAdminOnly) {
		t.Errorf("gerente liberando mês = %v", err)
	}

	p, err := f.svc.Company.RequestUnlock(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	if p.Message != "Confirmar liberação do acesso ao mês 2024-05?" {
		t.Errorf("mensagem = %q", p.Message)
	}
	f.confirm(t, admin, p.Token)

	locked, err := f.svc.Company.IsLocked(ctx, matriz)
	if err != nil {
		t.Fatal(err)
	}
	if locked {
		t.Errorf("mês liberado continua bloqueado")
	}
	if other, _ := f.svc.Company.IsLocked(ctx, filial); !other {
		t.Errorf("liberação deve valer só para a empresa selecionada")
	}
	if last := f.lastLog(t, matriz); last.Details != "Liberou acesso ao mês 2024-05" {
		t.Errorf("entrada = %q", last.Details)
	}

	if _, err := f.svc.Company.LockState(ctx, "123"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("empresa inexistente = %v", err)
	}
}

func TestCompany_UpdateInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.actor(t, "admin", "admin")
	before := len(f.data(t, matriz).Logs)

	info, err := f.svc.Company.UpdateInfo(ctx, admin, service.InfoInput{Name: "Strauss Materiais", LogoURL: "https://exemplo.com/logo.png"})
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "Strauss Materiais" || info.Currency != "R$" {
		t.Errorf("dados = %+v", info)
	}
	if last := f.lastLog(t, matriz); last.Module != "configurações" {
		t.Errorf("entrada = %+v", last)
	}

	if _, err := f.svc.Company.UpdateInfo(ctx, admin, service.InfoInput{Name: "Strauss Materiais", LogoURL: "https://exemplo.com/logo.png"}); err != nil {
		t.Fatal(err)
	}
	if got := len(f.data(t, matriz).Logs); got != before+1 {
		t.Errorf("salvar sem alterações não deve gerar log: %d entradas novas", got-before)
	}
	if _, err := f.svc.Company.UpdateInfo(ctx, admin, service.InfoInput{}); !service.IsValidation(err) {
		t.Errorf("nome vazio = %v", err)
	}
}
