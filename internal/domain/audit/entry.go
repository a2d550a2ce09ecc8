package audit

import (
	"strings"
	"time"
)

// Action classifica o evento registrado
type Action string

const (
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
	ActionCreate Action = "criar"
	ActionUpdate Action = "alterar"
	ActionDelete Action = "excluir"
	ActionView   Action = "visualizar"
	ActionPrint  Action = "imprimir"
	ActionSystem Action = "sistema"
)

// Tags de módulo gravadas nas entradas
const (
	ModuleClients   = "clientes"
	ModuleSuppliers = "fornecedores"
	ModuleProducts  = "produtos"
	ModuleInventory = "estoque"
	ModuleCashier   = "caixa"
	ModuleSales     = "vendas"
	ModulePurchases = "compras"
	ModuleFinancial = "financeiro"
	ModuleUsers     = "usuários"
	ModuleConfig    = "configurações"
	ModuleLogin     = "login"
	ModuleLogs      = "logs"
	ModuleSystem    = "sistema"
)

// MaxEntries é o limite de entradas mantidas por empresa
const MaxEntries = 1000

// Entradas gravadas sem usuário autenticado
const (
	SystemUser  = "Sistema"
	UnknownRole = "N/A"
)

// Entry é uma linha do log de auditoria
type Entry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Action    Action `json:"action"`
	Details   string `json:"details"`
	Module    string `json:"module"`
}

// timestampLayout grava o instante em UTC com milissegundos
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formata o instante no layout gravado nas entradas
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// GetID implementa domain.Record
func (e Entry) GetID() int { return e.ID }

// Time interpreta o timestamp gravado
func (e Entry) Time() (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, e.Timestamp); err == nil {
			return t, nil
		}
	}
	return time.Parse("2006-01-02", e.Timestamp)
}

// NewID deriva um id do relógio em milissegundos, avançando além do
// maior id já usado para que ids gerados no mesmo milissegundo não colidam.
func NewID(now time.Time, logs []Entry) int {
	id := int(now.UnixMilli())
	for _, e := range logs {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// Prepend insere a entrada no topo e descarta as mais antigas além de
// MaxEntries.
func Prepend(logs []Entry, e Entry) []Entry {
	n := len(logs) + 1
	if n > MaxEntries {
		n = MaxEntries
	}
	out := make([]Entry, 0, n)
	out = append(out, e)
	out = append(out, logs[:n-1]...)
	return out
}

// Search filtra as entradas cujo usuário, detalhes, ação ou módulo
// contenham o termo, sem diferenciar maiúsculas. Termo vazio devolve
// todas.
func Search(logs []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]Entry(nil), logs...)
	}
	out := make([]Entry, 0, len(logs))
	for _, e := range logs {
		for _, field := range []string{e.User, e.Details, string(e.Action), e.Module} {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
