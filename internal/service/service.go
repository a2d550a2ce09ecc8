// Package service implementa os casos de uso do VControl Pro sobre o
// repositório de empresas. Cada operação lê o estado atual da empresa,
// calcula o novo estado, grava as coleções alteradas e registra o
// evento no log de auditoria.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// Deps reúne as dependências compartilhadas pelos serviços
type Deps struct {
	Repository tenant.Repository
	Confirm    *confirm.Registry
	Logger     logger.Logger
	Now        func() time.Time
}

// Actor é o usuário autenticado da requisição. HomeCompany é a empresa
// onde o usuário está cadastrado e CompanyID a empresa selecionada.
type Actor struct {
	User        user.User
	HomeCompany string
	CompanyID   string
}

// owner identifica o dono das confirmações pendentes
func (a *Actor) owner() string {
	return fmt.Sprintf("%s:%d", a.HomeCompany, a.User.ID)
}

// core guarda o estado comum. mu serializa os ciclos de leitura e
// gravação, então nenhum método com mu travado chama outro que trave.
type core struct {
	repo    tenant.Repository
	confirm *confirm.Registry
	log     logger.Logger
	now     func() time.Time
	mu      sync.Mutex
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Session       *SessionService
	Users         *UserService
	Company       *CompanyService
	Clients       *Catalog[partner.Partner]
	Suppliers     *Catalog[partner.Partner]
	Products      *Catalog[product.Product]
	Inventory     *Catalog[product.InventoryItem]
	Cashier       *CashierService
	Orders        *OrderService
	Drafts        *DraftService
	Ledger        *LedgerService
	Audit         *AuditService
	Dashboard     *DashboardService
	Reports       *ReportService
	Confirmations *ConfirmationService
}

// New monta os serviços sobre as dependências informadas
func New(deps Deps) *Services {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop{}
	}
	if deps.Confirm == nil {
		deps.Confirm = confirm.NewRegistry()
	}
	c := &core{repo: deps.Repository, confirm: deps.Confirm, log: deps.Logger, now: deps.Now}

	orders := &OrderService{core: c}
	svc := &Services{
		Session:       &SessionService{core: c},
		Users:         &UserService{core: c},
		Company:       &CompanyService{core: c},
		Clients:       newCatalog(c, clientSpec),
		Suppliers:     newCatalog(c, supplierSpec),
		Products:      newCatalog(c, productSpec),
		Inventory:     newCatalog(c, inventorySpec),
		Cashier:       &CashierService{Catalog: newCatalog(c, cashierSpec)},
		Orders:        orders,
		Drafts:        &DraftService{orders: orders, drafts: make(map[string]*Draft)},
		Ledger:        &LedgerService{core: c, staged: make(map[string]*Batch)},
		Audit:         &AuditService{core: c},
		Dashboard:     &DashboardService{core: c},
		Confirmations: &ConfirmationService{core: c},
	}
	svc.Reports = &ReportService{core: c, svc: svc}
	return svc
}

func (c *core) today() string {
	return format.Today(c.now())
}

// load lê as coleções da empresa
func (c *core) load(ctx context.Context, companyID string) (*tenant.Data, error) {
	data, err := c.repo.Get(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar empresa %s: %w", companyID, err)
	}
	return data, nil
}

func (c *core) commit(ctx context.Context, companyID string, collection tenant.Collection, value interface{}) error {
	if err := c.repo.Commit(ctx, companyID, collection, value); err != nil {
		return fmt.Errorf("erro ao salvar %s: %w", collection, err)
	}
	return nil
}

// scope exige empresa selecionada e acesso ao módulo, e devolve os
// dados da empresa
func (c *core) scope(ctx context.Context, actor *Actor, module access.Module) (*tenant.Data, error) {
	if actor == nil || actor.CompanyID == "" {
		return nil, ErrNoCompany
	}
	if module != "" && !actor.User.HasAccess(module) {
		return nil, ErrModuleDenied
	}
	return c.load(ctx, actor.CompanyID)
}

// record grava uma entrada de auditoria na empresa do ator, ou na
// primeira empresa quando nenhuma foi selecionada. Sem ator só eventos
// de sistema são gravados. Falhas de gravação são apenas registradas no
// logger.
func (c *core) record(ctx context.Context, actor *Actor, action audit.Action, details, module string) {
	if actor == nil {
		if action != audit.ActionSystem {
			return
		}
		c.recordAs(ctx, tenant.DefaultCompany().CNPJ, audit.SystemUser, audit.UnknownRole, action, details, module)
		return
	}

	companyID := actor.CompanyID
	if companyID == "" {
		companyID = tenant.DefaultCompany().CNPJ
	}
	c.recordAs(ctx, companyID, actor.User.Login, actor.User.Role, action, details, module)
}

func (c *core) recordAs(ctx context.Context, companyID, userName, role string, action audit.Action, details, module string) {
	data, err := c.repo.Get(ctx, companyID)
	if err != nil {
		c.log.Error("Erro ao carregar log de auditoria", "company", companyID, "error", err)
		return
	}

	now := c.now()
	entry := audit.Entry{
		ID:        audit.NewID(now, data.Logs),
		Timestamp: audit.Timestamp(now),
		User:      userName,
		Role:      role,
		Action:    action,
		Details:   details,
		Module:    module,
	}
	if err := c.repo.Commit(ctx, companyID, tenant.CollectionLogs, audit.Prepend(data.Logs, entry)); err != nil {
		c.log.Error("Erro ao gravar log de auditoria", "company", companyID, "error", err)
	}
}

// requestConfirmation registra o comando destrutivo do ator. O comando
// executa com mu travado.
func (c *core) requestConfirmation(actor *Actor, title, message string, cmd confirm.Command) confirm.Pending {
	return c.confirm.Request(actor.owner(), title, message, func(ctx context.Context) (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		return cmd(ctx)
	})
}

// ConfirmationService confirma ou descarta as ações pendentes do ator
type ConfirmationService struct {
	*core
}

// Current retorna a confirmação pendente do ator
func (s *ConfirmationService) Current(actor *Actor) (confirm.Pending, error) {
	p, ok := s.confirm.Current(actor.owner())
	if !ok {
		return confirm.Pending{}, ErrNotFound
	}
	return p, nil
}

// Confirm executa a ação pendente identificada pelo token
func (s *ConfirmationService) Confirm(ctx context.Context, actor *Actor, token string) (interface{}, error) {
	result, err := s.confirm.Confirm(ctx, actor.owner(), token)
	if err == confirm.ErrNotFound {
		return nil, ErrNotFound
	}
	return result, err
}

// Dismiss descarta a ação pendente
func (s *ConfirmationService) Dismiss(actor *Actor, token string) error {
	if err := s.confirm.Dismiss(actor.owner(), token); err != nil {
		return ErrNotFound
	}
	return nil
}
