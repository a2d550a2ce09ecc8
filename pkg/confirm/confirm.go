// Package confirm implementa a confirmação em duas fases das ações
// destrutivas: a ação é registrada com um token e só executa quando o
// mesmo dono confirma esse token.
package confirm

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indica token desconhecido, já usado ou de outro dono
var ErrNotFound = errors.New("confirmação não encontrada")

// Command é a ação adiada até a confirmação
type Command func(ctx context.Context) (interface{}, error)

// Pending descreve a confirmação aguardando resposta
type Pending struct {
	Token   string `json:"token"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type entry struct {
	pending Pending
	command Command
}

// Registry guarda no máximo uma confirmação pendente por dono. Um novo
// pedido substitui o anterior.
type Registry struct {
	mu      sync.Mutex
	pending map[string]entry
}

// NewRegistry cria um registro vazio
func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]entry)}
}

// Request registra o comando e devolve o token a confirmar
func (r *Registry) Request(owner, title, message string, cmd Command) Pending {
	p := Pending{Token: uuid.NewString(), Title: title, Message: message}

	r.mu.Lock()
	r.pending[owner] = entry{pending: p, command: cmd}
	r.mu.Unlock()

	return p
}

// Current retorna a confirmação pendente do dono, se houver
func (r *Registry) Current(owner string) (Pending, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pending[owner]
	return e.pending, ok
}

// Confirm executa o comando pendente e libera o slot do dono. O slot é
// liberado antes da execução, então um comando com erro precisa ser
// solicitado de novo.
func (r *Registry) Confirm(ctx context.Context, owner, token string) (interface{}, error) {
	e, err := r.take(owner, token)
	if err != nil {
		return nil, err
	}
	return e.command(ctx)
}

// Dismiss descarta o comando pendente sem executá-lo
func (r *Registry) Dismiss(owner, token string) error {
	_, err := r.take(owner, token)
	return err
}

func (r *Registry) take(owner, token string) (entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pending[owner]
	if !ok || e.pending.Token != token {
		return entry{}, ErrNotFound
	}
	delete(r.pending, owner)
	return e, nil
}
