package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

// ErrDuplicateLogin indica login já usado em alguma empresa
var ErrDuplicateLogin = errors.New("usuário já cadastrado")

// UserInput é o formulário de novo usuário
type UserInput struct {
	Name     string          `json:"name"`
	Login    string          `json:"user"`
	Password string          `json:"pass"`
	Role     string          `json:"role"`
	Modules  []access.Module `json:"modules"`
}

// PasswordChange é o formulário de troca da própria senha
type PasswordChange struct {
	Current string `json:"current"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

// UserService gerencia os usuários da empresa selecionada
type UserService struct {
	*core
}

// List retorna os usuários da empresa
func (s *UserService) List(ctx context.Context, actor *Actor) ([]user.User, error) {
	data, err := s.scope(ctx, actor, access.ModuleConfig)
	if err != nil {
		return nil, err
	}
	return data.Users, nil
}

// Create cadastra um usuário. Sem módulos explícitos valem os do papel.
func (s *UserService) Create(ctx context.Context, actor *Actor, in UserInput) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.scope(ctx, actor, access.ModuleConfig)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Login) == "" || in.Password == "" {
		return nil, invalid(ErrIncomplete)
	}
	taken, err := s.loginTaken(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalidf(ErrDuplicateLogin, "%s", in.Login)
	}

	u, err := user.NewUser(domain.NextID(data.Users), in.Name, in.Login, in.Password, in.Role, in.Modules)
	if err != nil {
		if errors.Is(err, user.ErrInvalidModule) {
			return nil, invalid(err)
		}
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionUsers, append(data.Users, *u)); err != nil {
		return nil, err
	}
	s.record(ctx, actor, audit.ActionCreate,
		fmt.Sprintf("Criou novo usuário: %s (Permissão: %s)", u.Login, u.Role), audit.ModuleConfig)
	return u, nil
}

func (s *UserService) loginTaken(ctx context.Context, login string) (bool, error) {
	for _, company := range tenant.Companies {
		data, err := s.load(ctx, company.CNPJ)
		if err != nil {
			return false, err
		}
		for _, u := range data.Users {
			if u.Login == login {
				return true, nil
			}
		}
	}
	return false, nil
}

// UpdateModules substitui a lista explícita de módulos do usuário
func (s *UserService) UpdateModules(ctx context.Context, actor *Actor, id int, modules []access.Module) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.scope(ctx, actor, access.ModuleConfig)
	if err != nil {
		return nil, err
	}
	idx := domain.IndexOf(data.Users, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if err := data.Users[idx].SetModules(modules); err != nil {
		return nil, invalid(err)
	}
	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionUsers, data.Users); err != nil {
		return nil, err
	}

	u := data.Users[idx]
	s.record(ctx, actor, audit.ActionUpdate, fmt.Sprintf("Atualizou módulos do usuário: %s", u.Name), audit.ModuleConfig)
	return &u, nil
}

// RequestDelete registra a exclusão do usuário para confirmação. O
// próprio usuário da sessão não pode ser excluído.
func (s *UserService) RequestDelete(ctx context.Context, actor *Actor, id int) (confirm.Pending, error) {
	data, err := s.scope(ctx, actor, access.ModuleConfig)
	if err != nil {
		return confirm.Pending{}, err
	}
	if id == actor.User.ID && actor.CompanyID == actor.HomeCompany {
		return confirm.Pending{}, ErrSelfDelete
	}
	if _, ok := domain.Find(data.Users, id); !ok {
		return confirm.Pending{}, ErrNotFound
	}

	return s.requestConfirmation(actor, "Excluir Usuário", "Tem a certeza que deseja excluir este usuário?", func(ctx context.Context) (interface{}, error) {
		data, err := s.load(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		u, ok := domain.Find(data.Users, id)
		if !ok {
			return nil, nil
		}
		if err := s.commit(ctx, actor.CompanyID, tenant.CollectionUsers, domain.Remove(data.Users, id)); err != nil {
			return nil, err
		}
		s.record(ctx, actor, audit.ActionDelete, fmt.Sprintf("Excluiu usuário: %s", u.Login), audit.ModuleConfig)
		return nil, nil
	}), nil
}

// ChangePassword troca a senha do próprio usuário na empresa de cadastro
func (s *UserService) ChangePassword(ctx context.Context, actor *Actor, in PasswordChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load(ctx, actor.HomeCompany)
	if err != nil {
		return err
	}
	idx := domain.IndexOf(data.Users, actor.User.ID)
	if idx < 0 {
		return ErrNotFound
	}
	if err := data.Users[idx].ChangePassword(in.Current, in.New, in.Confirm); err != nil {
		if errors.Is(err, user.ErrEmptyPassword) || errors.Is(err, user.ErrWrongPassword) || errors.Is(err, user.ErrPasswordMismatch) {
			return invalid(err)
		}
		return fmt.Errorf("erro ao trocar senha: %w", err)
	}
	if err := s.commit(ctx, actor.HomeCompany, tenant.CollectionUsers, data.Users); err != nil {
		return err
	}

	s.record(ctx, actor, audit.ActionUpdate, "Alterou a própria senha administrativa", audit.ModuleConfig)
	return nil
}
