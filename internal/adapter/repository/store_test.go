package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/internal/infrastructure/blobstore"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	testKey = "vcontrol_test"
	matriz  = "31501279000110"
	filial  = "31501279000200"
)

func init() {
	user.PasswordCost = bcrypt.MinCost
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, saved string) (*Store, *blobstore.Memory) {
	t.Helper()
	blob := blobstore.NewMemory()
	if saved != "" {
		if err := blob.Put(context.Background(), testKey, []byte(saved)); err != nil {
			t.Fatal(err)
		}
	}
	s := NewStore(blob, testKey, logger.Nop{}).WithClock(func() time.Time { return fixedNow })
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s, blob
}

func TestLoad_EmptyBlobUsesDefaults(t *testing.T) {
	s, blob := newStore(t, "")

	for _, c := range tenant.Companies {
		d, err := s.Get(context.Background(), c.CNPJ)
		if err != nil {
			t.Fatal(err)
		}
		if len(d.Sales) != 3 || len(d.Financials) != 8 || len(d.Users) != 5 {
			t.Errorf("empresa %s sem dados iniciais completos", c.CNPJ)
		}
		for _, u := range d.Users {
			if !u.HasHashedPassword() {
				t.Errorf("senha do usuário %s não foi protegida", u.Login)
			}
		}
	}
	if blob.Puts() != 1 {
		t.Errorf("Load deveria gravar o estado saneado, Puts = %d", blob.Puts())
	}
}

func TestLoad_MergeAndSanitize(t *testing.T) {
	saved := `{
		"31501279000110": {
			"company": {"name": "Minha Loja"},
			"users": [{"id": 1, "name": "Dono", "user": "dono", "pass": "segredo", "role": "admin"}],
			"clients": [null, {"id": 7, "name": "Cliente", "doc": "12345678900", "phone": "11987654321"}, "lixo"],
			"products": [{"id": 1, "name": "Prod", "price": 10, "cost": "5.5", "stock": 3, "ncm": "2523291"}],
			"sales": [],
			"financials": "não é lista",
			"suppliers": []
		},
		"99999999000199": {"company": {"name": "Fora do cadastro"}}
	}`
	s, blob := newStore(t, saved)

	d, err := s.Get(context.Background(), matriz)
	if err != nil {
		t.Fatal(err)
	}
	if d.Company.Name != "Minha Loja" || d.Company.Currency != "R$" {
		t.Errorf("informações da empresa não mescladas: %+v", d.Company)
	}
	if len(d.Clients) != 1 || d.Clients[0].Document != "123.456.789-00" || d.Clients[0].Phone != "(11) 98765-4321" {
		t.Errorf("clientes não saneados: %+v", d.Clients)
	}
	if d.Products[0].NCM != "0252.32.91" || d.Products[0].Cost.String() != "5.5" {
		t.Errorf("produto não saneado: %+v", d.Products[0])
	}
	if len(d.Sales) != 0 || len(d.Financials) != 0 {
		t.Errorf("vendas e financeiro vazios não devem ser recarregados")
	}
	if len(d.Suppliers) != 4 {
		t.Errorf("fornecedores vazios deveriam voltar aos iniciais, obteve %d", len(d.Suppliers))
	}
	if len(d.InventoryItems) != 4 {
		t.Errorf("coleção ausente deveria usar os dados iniciais")
	}
	if !d.Users[0].CheckPassword("segredo") {
		t.Errorf("senha legada deveria continuar válida após a proteção")
	}

	other, _ := s.Get(context.Background(), filial)
	if len(other.Sales) != 3 {
		t.Errorf("empresa ausente do estado deveria receber o esquema inicial completo")
	}

	raw, _ := blob.Get(context.Background(), testKey)
	var state map[string]json.RawMessage
	if err := json.Unmarshal(raw, &state); err != nil {
		t.Fatal(err)
	}
	if _, ok := state["99999999000199"]; !ok {
		t.Errorf("empresas fora do cadastro deveriam ser preservadas")
	}
}

func TestLoad_CorruptBlob(t *testing.T) {
	s, _ := newStore(t, "{corrompido")
	d, err := s.Get(context.Background(), matriz)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Products) != 6 {
		t.Errorf("estado ilegível deveria cair nos dados iniciais")
	}
}

func TestCommit(t *testing.T) {
	s, blob := newStore(t, "")
	ctx := context.Background()
	before := blob.Puts()

	d, _ := s.Get(ctx, matriz)
	clients := append(d.Clients, partner.Partner{ID: 5, Name: "Novo", Document: "11222333000144"})
	if err := s.Commit(ctx, matriz, tenant.CollectionClients, clients); err != nil {
		t.Fatal(err)
	}
	if blob.Puts() != before+1 {
		t.Errorf("Commit deveria gravar o estado")
	}

	got, _ := s.Get(ctx, matriz)
	if len(got.Clients) != 5 || got.Clients[4].Document != "11.222.333/0001-44" {
		t.Errorf("Commit não aplicou ou não formatou: %+v", got.Clients[4])
	}

	clients[0].Name = "alterado por fora"
	again, _ := s.Get(ctx, matriz)
	if again.Clients[0].Name == "alterado por fora" {
		t.Errorf("a coleção gravada não deve compartilhar memória com quem a enviou")
	}

	if err := s.Commit(ctx, matriz, tenant.CollectionProducts, []order.Order{}); !errors.Is(err, tenant.ErrInvalidCollection) {
		t.Errorf("tipo incompatível deveria falhar, obteve %v", err)
	}
	if err := s.Commit(ctx, "000", tenant.CollectionProducts, []product.Product{}); !errors.Is(err, tenant.ErrCompanyNotFound) {
		t.Errorf("empresa desconhecida deveria falhar, obteve %v", err)
	}
}

type failingBlob struct {
	*blobstore.Memory
	fail bool
}

func (f *failingBlob) Put(ctx context.Context, key string, data []byte) error {
	if f.fail {
		return errors.New("disco cheio")
	}
	return f.Memory.Put(ctx, key, data)
}

func TestCommit_PersistFailureKeepsMemory(t *testing.T) {
	blob := &failingBlob{Memory: blobstore.NewMemory()}
	s := NewStore(blob, testKey, logger.Nop{}).WithClock(func() time.Time { return fixedNow })
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	blob.fail = true
	if err := s.Commit(ctx, matriz, tenant.CollectionProducts, []product.Product{{ID: 1, Name: "Único"}}); err == nil {
		t.Fatal("esperava erro de persistência")
	}
	d, _ := s.Get(ctx, matriz)
	if len(d.Products) != 1 {
		t.Errorf("a alteração em memória deveria permanecer após falha na gravação")
	}
}
