package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
)

// LockState é a situação do bloqueio mensal
type LockState struct {
	Locked            bool   `json:"locked"`
	CurrentMonth      string `json:"currentMonth"`
	LastUnlockedMonth string `json:"lastUnlockedMonth"`
	LockDay           int    `json:"lockDay"`
}

// InfoInput são os campos editáveis da empresa
type InfoInput struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	LogoURL  string `json:"logoUrl"`
}

// CompanyService mantém os dados da empresa e o bloqueio mensal
type CompanyService struct {
	*core
}

// Info retorna os dados da empresa selecionada
func (s *CompanyService) Info(ctx context.Context, actor *Actor) (tenant.Info, error) {
	data, err := s.scope(ctx, actor, "")
	if err != nil {
		return tenant.Info{}, err
	}
	return data.Company, nil
}

// UpdateInfo altera nome, moeda e logotipo. O mês liberado não muda.
func (s *CompanyService) UpdateInfo(ctx context.Context, actor *Actor, in InfoInput) (tenant.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.scope(ctx, actor, access.ModuleConfig)
	if err != nil {
		return tenant.Info{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return tenant.Info{}, invalid(tenant.ErrEmptyName)
	}

	before := data.Company
	info := before
	info.Name = in.Name
	info.LogoURL = in.LogoURL
	if in.Currency != "" {
		info.Currency = in.Currency
	}
	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionCompany, info); err != nil {
		return tenant.Info{}, err
	}

	changes, err := audit.Diff(before, info, []string{"name", "currency", "logoUrl"})
	if err != nil {
		return tenant.Info{}, fmt.Errorf("erro ao comparar dados da empresa: %w", err)
	}
	if changes != "" {
		s.record(ctx, actor, audit.ActionUpdate, fmt.Sprintf("Alterou dados da empresa: %s", changes), audit.ModuleConfig)
	}
	return info, nil
}

// IsLocked informa se a empresa está bloqueada no mês corrente
func (s *CompanyService) IsLocked(ctx context.Context, companyID string) (bool, error) {
	state, err := s.LockState(ctx, companyID)
	if err != nil {
		return false, err
	}
	return state.Locked, nil
}

// LockState descreve o bloqueio mensal da empresa
func (s *CompanyService) LockState(ctx context.Context, companyID string) (LockState, error) {
	data, err := s.repo.Get(ctx, companyID)
	if err != nil {
		if errors.Is(err, tenant.ErrCompanyNotFound) {
			return LockState{}, ErrNotFound
		}
		return LockState{}, fmt.Errorf("erro ao verificar bloqueio: %w", err)
	}
	now := s.now()
	return LockState{
		Locked:            data.Company.IsLocked(now),
		CurrentMonth:      tenant.CurrentMonth(now),
		LastUnlockedMonth: data.Company.LastUnlockedMonth,
		LockDay:           tenant.LockDay,
	}, nil
}

// RequestUnlock registra a liberação do mês corrente para confirmação.
// Restrito ao administrador.
func (s *CompanyService) RequestUnlock(ctx context.Context, actor *Actor) (confirm.Pending, error) {
	if _, err := s.scope(ctx, actor, ""); err != nil {
		return confirm.Pending{}, err
	}
	if !actor.User.IsAdmin() {
		return confirm.Pending{}, ErrAdminOnly
	}

	month := tenant.CurrentMonth(s.now())
	return s.requestConfirmation(actor, "Liberar Mês", fmt.Sprintf("Confirmar liberação do acesso ao mês %s?", month), func(ctx context.Context) (interface{}, error) {
		data, err := s.load(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		info := data.Company
		info.Unlock(s.now())
		if err := s.commit(ctx, actor.CompanyID, tenant.CollectionCompany, info); err != nil {
			return nil, err
		}
		s.record(ctx, actor, audit.ActionUpdate, fmt.Sprintf("Liberou acesso ao mês %s", info.LastUnlockedMonth), audit.ModuleSystem)
		return info, nil
	}), nil
}
