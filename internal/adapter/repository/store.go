package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/audit"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/internal/infrastructure/blobstore"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"github.com/shopspring/decimal"
)

// StateVersion identifica o layout do estado gravado
const StateVersion = "v2.12.complete_logs"

func init() {
	// valores monetários gravados como números, no mesmo layout já persistido
	decimal.MarshalJSONWithoutQuotes = true
}

// Store mantém as coleções de todas as empresas em memória e grava o
// estado inteiro no blob a cada alteração
type Store struct {
	mu        sync.RWMutex
	blob      blobstore.Blob
	key       string
	log       logger.Logger
	now       func() time.Time
	companies map[string]*tenant.Data
	// empresas gravadas fora do cadastro fixo, preservadas sem alteração
	extra map[string]json.RawMessage
}

// NewStore cria o repositório sobre o blob e a chave informados
func NewStore(blob blobstore.Blob, key string, log logger.Logger) *Store {
	return &Store{
		blob:      blob,
		key:       key,
		log:       log,
		now:       time.Now,
		companies: make(map[string]*tenant.Data),
		extra:     make(map[string]json.RawMessage),
	}
}

// WithClock troca o relógio usado para datas dos dados iniciais
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Load lê o blob e mescla cada empresa sobre os dados iniciais. Registros
// nulos ou ilegíveis são descartados e documentos, telefones e NCMs são
// reformatados. O resultado saneado é gravado de volta.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := map[string]json.RawMessage{}
	raw, err := s.blob.Get(ctx, s.key)
	switch {
	case errors.Is(err, blobstore.ErrBlobNotFound):
		s.log.Info("Nenhum estado gravado, usando dados iniciais", "key", s.key)
	case err != nil:
		return fmt.Errorf("erro ao carregar estado: %w", err)
	default:
		if err := json.Unmarshal(raw, &saved); err != nil {
			s.log.Warn("Estado gravado ilegível, usando dados iniciais", "erro", err)
			saved = map[string]json.RawMessage{}
		}
	}

	now := s.now()
	s.companies = make(map[string]*tenant.Data, len(tenant.Companies))
	for _, c := range tenant.Companies {
		data := tenant.DefaultData(now)
		if companyRaw, ok := saved[c.CNPJ]; ok {
			data = merge(companyRaw, tenant.DefaultData(now))
		}
		if err := sanitize(data); err != nil {
			return fmt.Errorf("erro ao sanear dados da empresa %s: %w", c.CNPJ, err)
		}
		s.companies[c.CNPJ] = data
		delete(saved, c.CNPJ)
	}
	s.extra = saved

	return s.persist(ctx)
}

// Get retorna uma cópia das coleções da empresa
func (s *Store) Get(_ context.Context, companyID string) (*tenant.Data, error) {
	if _, err := tenant.FindCompany(companyID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.companies[companyID]
	if ok {
		defer s.mu.RUnlock()
		return data.Clone(), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.company(companyID)
	if err != nil {
		return nil, err
	}
	return data.Clone(), nil
}

// Commit substitui a coleção e grava o estado. Uma falha na gravação é
// devolvida mas a alteração em memória permanece.
func (s *Store) Commit(ctx context.Context, companyID string, collection tenant.Collection, value interface{}) error {
	if _, err := tenant.FindCompany(companyID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.company(companyID)
	if err != nil {
		return err
	}
	next := data.Clone()
	if err := next.Set(collection, value); err != nil {
		return fmt.Errorf("erro ao gravar coleção %s: %w", collection, err)
	}
	normalize(next, collection)
	s.companies[companyID] = next.Clone()

	return s.persist(ctx)
}

// company retorna os dados da empresa, criando os iniciais se preciso.
// Deve ser chamado com o lock de escrita.
func (s *Store) company(companyID string) (*tenant.Data, error) {
	if data, ok := s.companies[companyID]; ok {
		return data, nil
	}
	data := tenant.DefaultData(s.now())
	if err := sanitize(data); err != nil {
		return nil, err
	}
	s.companies[companyID] = data
	return data, nil
}

func (s *Store) persist(ctx context.Context) error {
	state := make(map[string]interface{}, len(s.companies)+len(s.extra))
	for k, v := range s.extra {
		state[k] = v
	}
	for k, v := range s.companies {
		state[k] = v
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("erro ao serializar estado: %w", err)
	}
	if err := s.blob.Put(ctx, s.key, raw); err != nil {
		s.log.Error("Erro ao persistir estado", "key", s.key, "erro", err)
		return fmt.Errorf("erro ao persistir estado: %w", err)
	}
	return nil
}

// merge aplica a empresa gravada sobre os dados iniciais
func merge(raw json.RawMessage, defaults *tenant.Data) *tenant.Data {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return defaults
	}

	out := &tenant.Data{Company: defaults.Company}
	if companyRaw, ok := fields[string(tenant.CollectionCompany)]; ok {
		info := defaults.Company
		if err := json.Unmarshal(companyRaw, &info); err == nil {
			out.Company = info
		}
	}

	out.Users = pick(tenant.CollectionUsers, decodeList[user.User](fields, tenant.CollectionUsers), defaults.Users)
	out.Clients = pick(tenant.CollectionClients, decodeList[partner.Partner](fields, tenant.CollectionClients), defaults.Clients)
	out.Suppliers = pick(tenant.CollectionSuppliers, decodeList[partner.Partner](fields, tenant.CollectionSuppliers), defaults.Suppliers)
	out.Products = pick(tenant.CollectionProducts, decodeList[product.Product](fields, tenant.CollectionProducts), defaults.Products)
	out.InventoryItems = pick(tenant.CollectionInventoryItems, decodeList[product.InventoryItem](fields, tenant.CollectionInventoryItems), defaults.InventoryItems)
	out.Sales = pick(tenant.CollectionSales, decodeList[order.Order](fields, tenant.CollectionSales), defaults.Sales)
	out.Purchases = pick(tenant.CollectionPurchases, decodeList[order.Order](fields, tenant.CollectionPurchases), defaults.Purchases)
	out.Financials = pick(tenant.CollectionFinancials, decodeList[financial.Entry](fields, tenant.CollectionFinancials), defaults.Financials)
	out.Cashier = pick(tenant.CollectionCashier, decodeList[cashier.Entry](fields, tenant.CollectionCashier), defaults.Cashier)
	out.Logs = pick(tenant.CollectionLogs, decodeList[audit.Entry](fields, tenant.CollectionLogs), defaults.Logs)
	return out
}

// decodeList lê a coleção registro a registro. Valores que não são
// listas viram lista vazia; registros nulos ou ilegíveis são descartados.
func decodeList[T any](fields map[string]json.RawMessage, c tenant.Collection) []T {
	raw, ok := fields[string(c)]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if len(item) == 0 || string(item) == "null" {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// pick escolhe entre a lista gravada e os dados iniciais
func pick[T any](c tenant.Collection, saved, defaults []T) []T {
	if len(saved) > 0 {
		return saved
	}
	if tenant.ReseedOnEmpty(c) {
		return defaults
	}
	return []T{}
}

// sanitize reformata os campos canônicos e protege senhas em texto puro
func sanitize(d *tenant.Data) error {
	for _, c := range tenant.Collections {
		normalize(d, c)
	}
	for i := range d.Users {
		if err := d.Users[i].UpgradeLegacyPassword(); err != nil {
			return fmt.Errorf("erro ao proteger senha do usuário %s: %w", d.Users[i].Login, err)
		}
	}
	return nil
}

// normalize reaplica a formatação canônica da coleção
func normalize(d *tenant.Data, c tenant.Collection) {
	switch c {
	case tenant.CollectionClients:
		for i := range d.Clients {
			d.Clients[i].Normalize()
		}
	case tenant.CollectionSuppliers:
		for i := range d.Suppliers {
			d.Suppliers[i].Normalize()
		}
	case tenant.CollectionProducts:
		for i := range d.Products {
			d.Products[i].Normalize()
		}
	case tenant.CollectionInventoryItems:
		for i := range d.InventoryItems {
			d.InventoryItems[i].Normalize()
		}
	case tenant.CollectionSales, tenant.CollectionPurchases:
		for _, orders := range [][]order.Order{d.Sales, d.Purchases} {
			for i := range orders {
				if orders[i].Items == nil {
					orders[i].Items = []order.Item{}
				}
			}
		}
	}
}
