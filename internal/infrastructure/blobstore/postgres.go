package blobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres grava o estado na tabela app_state criada pelas migrações
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres cria o armazenamento sobre um pool já conectado
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx, "SELECT payload FROM app_state WHERE key = $1", key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estado: %w", err)
	}
	return payload, nil
}

func (p *Postgres) Put(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO app_state (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := p.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("erro ao gravar estado: %w", err)
	}
	return nil
}

// Close fecha o pool de conexões
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
