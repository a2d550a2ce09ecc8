package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

// Textos da confirmação de exclusão
const (
	deleteTitle   = "Excluir Registro"
	deleteMessage = "Tem a certeza que deseja excluir este registro permanentemente?"
)

// entitySpec descreve como um cadastro simples é lido, validado e
// registrado no log
type entitySpec[T domain.Record] struct {
	collection tenant.Collection
	module     access.Module
	tag        string
	list       func(d *tenant.Data) []T
	withID     func(v T, id int) T
	prepare    func(v *T) error
	name       func(v T) string
}

// Catalog implementa listar, salvar e excluir de um cadastro
type Catalog[T domain.Record] struct {
	*core
	spec entitySpec[T]
}

func newCatalog[T domain.Record](c *core, spec entitySpec[T]) *Catalog[T] {
	return &Catalog[T]{core: c, spec: spec}
}

// List retorna os registros na ordem de inserção
func (s *Catalog[T]) List(ctx context.Context, actor *Actor) ([]T, error) {
	data, err := s.scope(ctx, actor, s.spec.module)
	if err != nil {
		return nil, err
	}
	return s.spec.list(data), nil
}

// Get busca um registro pelo id
func (s *Catalog[T]) Get(ctx context.Context, actor *Actor, id int) (T, error) {
	var zero T
	data, err := s.scope(ctx, actor, s.spec.module)
	if err != nil {
		return zero, err
	}
	v, ok := domain.Find(s.spec.list(data), id)
	if !ok {
		return zero, ErrNotFound
	}
	return v, nil
}

// Save cria o registro quando o id é zero, com o próximo id livre, ou
// substitui o registro de mesmo id registrando as diferenças
func (s *Catalog[T]) Save(ctx context.Context, actor *Actor, v T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.scope(ctx, actor, s.spec.module)
	if err != nil {
		return zero, err
	}
	if err := s.spec.prepare(&v); err != nil {
		return zero, invalid(err)
	}

	list := s.spec.list(data)
	var details string
	var action audit.Action
	if v.GetID() == 0 {
		v = s.spec.withID(v, domain.NextID(list))
		list = append(list, v)
		action = audit.ActionCreate
		details = fmt.Sprintf("Criou novo registro: %s", itemName(s.spec.name(v)))
	} else {
		idx := domain.IndexOf(list, v.GetID())
		if idx < 0 {
			return zero, ErrNotFound
		}
		changes, err := audit.Diff(list[idx], v, audit.EntityFields)
		if err != nil {
			return zero, fmt.Errorf("erro ao comparar registro: %w", err)
		}
		list[idx] = v
		action = audit.ActionUpdate
		details = "Salvou sem alterações."
		if changes != "" {
			details = fmt.Sprintf("Alterou %s: [ %s ]", itemName(s.spec.name(v)), changes)
		}
	}

	if err := s.commit(ctx, actor.CompanyID, s.spec.collection, list); err != nil {
		return zero, err
	}
	s.record(ctx, actor, action, details, s.spec.tag)
	return v, nil
}

// Create grava v como um novo registro, ignorando o id recebido
func (s *Catalog[T]) Create(ctx context.Context, actor *Actor, v T) (T, error) {
	return s.Save(ctx, actor, s.spec.withID(v, 0))
}

// Update grava v como o registro id
func (s *Catalog[T]) Update(ctx context.Context, actor *Actor, id int, v T) (T, error) {
	if id <= 0 {
		var zero T
		return zero, ErrNotFound
	}
	return s.Save(ctx, actor, s.spec.withID(v, id))
}

// RequestDelete registra a exclusão para confirmação
func (s *Catalog[T]) RequestDelete(ctx context.Context, actor *Actor, id int) (confirm.Pending, error) {
	return requestDelete(ctx, s.core, actor, s.spec, id)
}

// requestDelete verifica a permissão de exclusão do módulo e adia a
// remoção até a confirmação. Um registro já removido na confirmação é
// ignorado.
func requestDelete[T domain.Record](ctx context.Context, c *core, actor *Actor, spec entitySpec[T], id int) (confirm.Pending, error) {
	data, err := c.scope(ctx, actor, spec.module)
	if err != nil {
		return confirm.Pending{}, err
	}
	if !access.CanDelete(actor.User.Role, spec.module) {
		if spec.module == access.ModuleInventoryReport {
			return confirm.Pending{}, ErrForbidden
		}
		return confirm.Pending{}, ErrAdminOnlyDelete
	}
	if _, ok := domain.Find(spec.list(data), id); !ok {
		return confirm.Pending{}, ErrNotFound
	}

	return c.requestConfirmation(actor, deleteTitle, deleteMessage, func(ctx context.Context) (interface{}, error) {
		data, err := c.load(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		list := spec.list(data)
		v, ok := domain.Find(list, id)
		if !ok {
			return nil, nil
		}
		if err := c.commit(ctx, actor.CompanyID, spec.collection, domain.Remove(list, id)); err != nil {
			return nil, err
		}
		label := spec.name(v)
		if label == "" {
			label = fmt.Sprintf("ID %d", id)
		}
		c.record(ctx, actor, audit.ActionDelete, fmt.Sprintf("Excluiu permanentemente: %s", label), spec.tag)
		return nil, nil
	}), nil
}

func itemName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Item"
	}
	return name
}

var clientSpec = partnerSpec(partner.KindClient, access.ModuleClients, audit.ModuleClients)

var supplierSpec = partnerSpec(partner.KindSupplier, access.ModuleSuppliers, audit.ModuleSuppliers)

func partnerSpec(kind partner.Kind, module access.Module, tag string) entitySpec[partner.Partner] {
	return entitySpec[partner.Partner]{
		collection: tenant.PartnerCollection(kind),
		module:     module,
		tag:        tag,
		list:       func(d *tenant.Data) []partner.Partner { return d.Partners(kind) },
		withID:     func(p partner.Partner, id int) partner.Partner { p.ID = id; return p },
		prepare: func(p *partner.Partner) error {
			p.Normalize()
			return p.Validate()
		},
		name: func(p partner.Partner) string { return p.Name },
	}
}

var productSpec = entitySpec[product.Product]{
	collection: tenant.CollectionProducts,
	module:     access.ModuleProducts,
	tag:        audit.ModuleProducts,
	list:       func(d *tenant.Data) []product.Product { return d.Products },
	withID:     func(p product.Product, id int) product.Product { p.ID = id; return p },
	prepare: func(p *product.Product) error {
		p.Normalize()
		return p.Validate()
	},
	name: func(p product.Product) string { return p.Name },
}

var inventorySpec = entitySpec[product.InventoryItem]{
	collection: tenant.CollectionInventoryItems,
	module:     access.ModuleInventoryReport,
	tag:        audit.ModuleInventory,
	list:       func(d *tenant.Data) []product.InventoryItem { return d.InventoryItems },
	withID:     func(i product.InventoryItem, id int) product.InventoryItem { i.ID = id; return i },
	prepare: func(i *product.InventoryItem) error {
		i.Normalize()
		return i.Validate()
	},
	name: func(i product.InventoryItem) string { return i.Name },
}

var cashierSpec = entitySpec[cashier.Entry]{
	collection: tenant.CollectionCashier,
	module:     access.ModuleCashier,
	tag:        audit.ModuleCashier,
	list:       func(d *tenant.Data) []cashier.Entry { return d.Cashier },
	withID:     func(e cashier.Entry, id int) cashier.Entry { e.ID = id; return e },
	prepare:    func(e *cashier.Entry) error { return e.Validate() },
	name:       func(cashier.Entry) string { return "" },
}

// CashierService é o cadastro do livro caixa, com filtro por período
type CashierService struct {
	*Catalog[cashier.Entry]
}

// ListWindow retorna os lançamentos entre start e end (inclusive).
// Limites vazios não restringem.
func (s *CashierService) ListWindow(ctx context.Context, actor *Actor, start, end string) ([]cashier.Entry, error) {
	entries, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	return cashier.InWindow(entries, start, end), nil
}
