package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/pkg/confirm"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
	"github.com/hugohenrick/vcontrol-pro/pkg/format"
	"github.com/shopspring/decimal"
)

// EntryInput é o formulário de lançamento. Installments maior que um
// gera um lote de parcelas em revisão em vez de gravar.
type EntryInput struct {
	financial.Entry
	Installments int `json:"installments"`
}

// SaveResult traz o lançamento gravado ou o lote de parcelas gerado
type SaveResult struct {
	Entry *financial.Entry `json:"entry,omitempty"`
	Batch *Batch           `json:"batch,omitempty"`
}

// Batch é o lote de parcelas aguardando revisão
type Batch struct {
	Type    financial.Type    `json:"type"`
	Entries []financial.Entry `json:"entries"`
}

// InstallmentPatch altera vencimento e valor de uma parcela do lote
type InstallmentPatch struct {
	DueDate string           `json:"dueDate"`
	Value   *decimal.Decimal `json:"value"`
}

// LedgerService mantém contas a pagar e a receber
type LedgerService struct {
	*core
	stagedMu sync.Mutex
	staged   map[string]*Batch
}

func ledgerModule(t financial.Type) access.Module {
	if t == financial.TypePayable {
		return access.ModuleFinancialPayable
	}
	return access.ModuleFinancialReceivable
}

func ledgerPartners(data *tenant.Data, t financial.Type) []partner.Partner {
	if t == financial.TypePayable {
		return data.Suppliers
	}
	return data.Clients
}

func (s *LedgerService) ledgerScope(ctx context.Context, actor *Actor, t financial.Type) (*tenant.Data, error) {
	if !t.IsValid() {
		return nil, invalid(financial.ErrInvalidType)
	}
	return s.scope(ctx, actor, ledgerModule(t))
}

// List retorna os lançamentos do filtro com o resumo por faixa de
// vencimento dos mesmos lançamentos
func (s *LedgerService) List(ctx context.Context, actor *Actor, f financial.Filter) ([]financial.Entry, financial.Summary, error) {
	data, err := s.ledgerScope(ctx, actor, f.Type)
	if err != nil {
		return nil, financial.Summary{}, err
	}
	entries := f.Apply(data.Financials)
	return entries, financial.Summarize(entries, s.today()), nil
}

// Get busca um lançamento pelo id
func (s *LedgerService) Get(ctx context.Context, actor *Actor, id int) (financial.Entry, error) {
	data, err := s.scope(ctx, actor, "")
	if err != nil {
		return financial.Entry{}, err
	}
	e, ok := domain.Find(data.Financials, id)
	if !ok {
		return financial.Entry{}, ErrNotFound
	}
	if !actor.User.HasAccess(ledgerModule(e.Type)) {
		return financial.Entry{}, ErrModuleDenied
	}
	return e, nil
}

// Save grava o lançamento, ou gera o lote quando há mais de uma parcela
func (s *LedgerService) Save(ctx context.Context, actor *Actor, in EntryInput) (*SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := in.Entry
	data, err := s.ledgerScope(ctx, actor, e.Type)
	if err != nil {
		return nil, err
	}

	e.PartnerName = order.UnknownPartner
	if p, ok := domain.Find(ledgerPartners(data, e.Type), e.PartnerID); ok {
		e.PartnerName = p.Name
	}
	if e.Status == "" {
		e.Status = financial.StatusPending
	}
	if err := e.Validate(); err != nil {
		return nil, invalid(err)
	}

	list := data.Financials
	if e.ID > 0 {
		idx := domain.IndexOf(list, e.ID)
		if idx < 0 {
			return nil, ErrNotFound
		}
		changes, err := audit.Diff(list[idx], e, audit.FinancialFields)
		if err != nil {
			return nil, fmt.Errorf("erro ao comparar lançamento: %w", err)
		}
		list[idx] = e
		if err := s.commit(ctx, actor.CompanyID, tenant.CollectionFinancials, list); err != nil {
			return nil, err
		}
		details := "Salvou sem alterações."
		if changes != "" {
			details = fmt.Sprintf("Alterou Fin: %s", changes)
		}
		s.record(ctx, actor, audit.ActionUpdate, details, audit.ModuleFinancial)
		return &SaveResult{Entry: &e}, nil
	}

	if in.Installments > 1 {
		entries, err := financial.Installments(e, in.Installments, domain.NextID(list))
		if err != nil {
			return nil, invalid(err)
		}
		batch := &Batch{Type: e.Type, Entries: entries}
		s.stagedMu.Lock()
		s.staged[actor.owner()] = batch
		s.stagedMu.Unlock()
		return &SaveResult{Batch: copyBatch(batch)}, nil
	}

	e.ID = domain.NextID(list)
	list = append(list, e)
	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionFinancials, list); err != nil {
		return nil, err
	}
	s.record(ctx, actor, audit.ActionCreate,
		fmt.Sprintf("Criou financeiro: %s - Valor: %s", e.Description, format.Currency(e.Value)), audit.ModuleFinancial)
	return &SaveResult{Entry: &e}, nil
}

func copyBatch(b *Batch) *Batch {
	return &Batch{Type: b.Type, Entries: append([]financial.Entry(nil), b.Entries...)}
}

// StagedBatch retorna o lote em revisão do usuário
func (s *LedgerService) StagedBatch(actor *Actor) (*Batch, error) {
	s.stagedMu.Lock()
	defer s.stagedMu.Unlock()

	b, ok := s.staged[actor.owner()]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBatch(b), nil
}

// UpdateInstallment altera vencimento e valor de uma parcela do lote
func (s *LedgerService) UpdateInstallment(actor *Actor, index int, patch InstallmentPatch) (*Batch, error) {
	s.stagedMu.Lock()
	defer s.stagedMu.Unlock()

	b, ok := s.staged[actor.owner()]
	if !ok || index < 0 || index >= len(b.Entries) {
		return nil, ErrNotFound
	}
	e := b.Entries[index]
	if patch.DueDate != "" {
		e.DueDate = patch.DueDate
	}
	if patch.Value != nil {
		e.Value = *patch.Value
	}
	if err := e.Validate(); err != nil {
		return nil, invalid(err)
	}
	b.Entries[index] = e
	return copyBatch(b), nil
}

// DiscardBatch descarta o lote em revisão
func (s *LedgerService) DiscardBatch(actor *Actor) {
	s.stagedMu.Lock()
	delete(s.staged, actor.owner())
	s.stagedMu.Unlock()
}

// ConfirmBatch grava todas as parcelas do lote de uma vez. Os ids são
// reatribuídos a partir do próximo id livre no momento da gravação.
func (s *LedgerService) ConfirmBatch(ctx context.Context, actor *Actor) ([]financial.Entry, error) {
	s.stagedMu.Lock()
	b, ok := s.staged[actor.owner()]
	var batch *Batch
	if ok {
		batch = copyBatch(b)
	}
	s.stagedMu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.ledgerScope(ctx, actor, batch.Type)
	if err != nil {
		return nil, err
	}
	list := data.Financials
	next := domain.NextID(list)
	for i := range batch.Entries {
		batch.Entries[i].ID = next + i
	}
	list = append(list, batch.Entries...)
	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionFinancials, list); err != nil {
		return nil, err
	}

	s.stagedMu.Lock()
	if s.staged[actor.owner()] == b {
		delete(s.staged, actor.owner())
	}
	s.stagedMu.Unlock()

	s.record(ctx, actor, audit.ActionCreate,
		fmt.Sprintf("Criou %d parcelas financeiras (em lote)", len(batch.Entries)), audit.ModuleFinancial)
	return batch.Entries, nil
}

// RequestSettle registra a baixa do lançamento para confirmação
func (s *LedgerService) RequestSettle(ctx context.Context, actor *Actor, id int) (confirm.Pending, error) {
	e, err := s.Get(ctx, actor, id)
	if err != nil {
		return confirm.Pending{}, err
	}
	if e.Status.IsSettled() {
		return confirm.Pending{}, invalid(financial.ErrAlreadySettled)
	}

	status := e.Type.SettledStatus()
	title := fmt.Sprintf("Baixar Conta (%s)", status)
	message := fmt.Sprintf("Confirmar baixa de: %s?\nValor: %s", e.Description, format.Currency(e.Value))
	return s.requestConfirmation(actor, title, message, func(ctx context.Context) (interface{}, error) {
		return s.settle(ctx, actor, id)
	}), nil
}

// settle baixa o lançamento. Um lançamento removido antes da
// confirmação é ignorado.
func (s *LedgerService) settle(ctx context.Context, actor *Actor, id int) (*financial.Entry, error) {
	data, err := s.load(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	list := data.Financials
	idx := domain.IndexOf(list, id)
	if idx < 0 {
		return nil, nil
	}
	if err := list[idx].Settle(s.today(), actor.User.Name); err != nil {
		return nil, invalid(err)
	}
	if err := s.commit(ctx, actor.CompanyID, tenant.CollectionFinancials, list); err != nil {
		return nil, err
	}

	e := list[idx]
	s.record(ctx, actor, audit.ActionUpdate,
		fmt.Sprintf("Baixou conta #%d (%s) - Valor: %s", id, e.Status, format.Currency(e.Value)), audit.ModuleFinancial)
	return &e, nil
}

// RequestDelete registra a exclusão do lançamento para confirmação
func (s *LedgerService) RequestDelete(ctx context.Context, actor *Actor, id int) (confirm.Pending, error) {
	e, err := s.Get(ctx, actor, id)
	if err != nil {
		return confirm.Pending{}, err
	}
	return requestDelete(ctx, s.core, actor, entitySpec[financial.Entry]{
		collection: tenant.CollectionFinancials,
		module:     ledgerModule(e.Type),
		tag:        audit.ModuleFinancial,
		list:       func(d *tenant.Data) []financial.Entry { return d.Financials },
		name:       func(e financial.Entry) string { return e.Description },
	}, id)
}
