package tenant

import (
	"context"
)

// Repository guarda as coleções de cada empresa
type Repository interface {
	// Get retorna uma cópia das coleções da empresa
	Get(ctx context.Context, companyID string) (*Data, error)

	// Commit substitui uma coleção da empresa e persiste o estado
	Commit(ctx context.Context, companyID string, collection Collection, value interface{}) error
}
