// Package blobstore guarda o estado serializado da aplicação como um
// único valor opaco por chave.
package blobstore

import (
	"context"
	"errors"
)

// ErrBlobNotFound indica que nada foi gravado sob a chave
var ErrBlobNotFound = errors.New("estado não encontrado")

// Blob é um armazenamento chave/valor de conteúdo opaco
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}
