package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

// SessionInfo descreve a sessão corrente
type SessionInfo struct {
	User        user.User       `json:"user"`
	HomeCompany string          `json:"homeCompany"`
	Company     *tenant.Company `json:"company,omitempty"`
	Locked      bool            `json:"locked"`
	Modules     []access.Module `json:"modules"`
}

// SessionService autentica usuários e controla a empresa selecionada
type SessionService struct {
	*core
}

// Login procura o usuário em todas as empresas. Com uma única empresa
// cadastrada ela já vem selecionada.
func (s *SessionService) Login(ctx context.Context, login, password string) (*Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		s.recordAs(ctx, tenant.DefaultCompany().CNPJ, login, audit.UnknownRole, audit.ActionSystem,
			"Tentativa de login falha - usuário/senha incorretos.", audit.ModuleLogin)
		return nil, ErrInvalidCredentials
	}

	s.record(ctx, actor, audit.ActionLogin, "Usuário realizou login com sucesso.", audit.ModuleLogin)
	if len(tenant.Companies) == 1 {
		actor.CompanyID = tenant.Companies[0].CNPJ
	}
	return actor, nil
}

func (s *SessionService) authenticate(ctx context.Context, login, password string) (*Actor, error) {
	if login == "" || password == "" {
		return nil, nil
	}
	for _, company := range tenant.Companies {
		data, err := s.load(ctx, company.CNPJ)
		if err != nil {
			return nil, err
		}
		for _, u := range data.Users {
			if u.Login == login && u.CheckPassword(password) {
				return &Actor{User: u, HomeCompany: company.CNPJ}, nil
			}
		}
	}
	return nil, nil
}

// Resolve reconstrói o ator a partir da sessão, relendo o usuário na
// empresa de cadastro. Usuário excluído invalida a sessão.
func (s *SessionService) Resolve(ctx context.Context, homeCompany string, userID int, companyID string) (*Actor, error) {
	data, err := s.repo.Get(ctx, homeCompany)
	if err != nil {
		if errors.Is(err, tenant.ErrCompanyNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("erro ao carregar sessão: %w", err)
	}
	u, ok := domain.Find(data.Users, userID)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if companyID != "" {
		if _, err := tenant.FindCompany(companyID); err != nil {
			return nil, ErrNoCompany
		}
	}
	return &Actor{User: u, HomeCompany: homeCompany, CompanyID: companyID}, nil
}

// SelectCompany passa a sessão para a empresa informada
func (s *SessionService) SelectCompany(ctx context.Context, actor *Actor, cnpj string) (*Actor, error) {
	company, err := tenant.FindCompany(cnpj)
	if err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	selected := &Actor{User: actor.User, HomeCompany: actor.HomeCompany, CompanyID: company.CNPJ}
	s.record(ctx, selected, audit.ActionSystem, fmt.Sprintf("Acessou empresa: %s", company.Name), audit.ModuleSystem)
	return selected, nil
}

// Logout registra a saída na empresa selecionada
func (s *SessionService) Logout(ctx context.Context, actor *Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(ctx, actor, audit.ActionLogout, "Usuário realizou logout.", audit.ModuleLogin)
}

// Info descreve a sessão, incluindo o bloqueio mensal da empresa
func (s *SessionService) Info(ctx context.Context, actor *Actor) (*SessionInfo, error) {
	info := &SessionInfo{
		User:        actor.User,
		HomeCompany: actor.HomeCompany,
		Modules:     effectiveModules(actor.User),
	}
	if actor.CompanyID == "" {
		return info, nil
	}

	company, err := tenant.FindCompany(actor.CompanyID)
	if err != nil {
		return nil, ErrNoCompany
	}
	data, err := s.load(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	info.Company = &company
	info.Locked = data.Company.IsLocked(s.now())
	return info, nil
}

// effectiveModules lista os módulos que o usuário acessa de fato
func effectiveModules(u user.User) []access.Module {
	out := make([]access.Module, 0)
	for _, m := range access.All() {
		if u.HasAccess(m) {
			out = append(out, m)
		}
	}
	return out
}
