// Package tenant carrega a empresa selecionada na sessão pelos
// contextos do Gin e da requisição.
package tenant

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey struct{}

// ContextKey é a chave da empresa selecionada no contexto do Gin
const ContextKey = "company_id"

// WithCompanyID grava a empresa selecionada no contexto
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, contextKey{}, companyID)
}

// CompanyIDFromContext lê a empresa gravada por WithCompanyID
func CompanyIDFromContext(ctx context.Context) string {
	companyID, _ := ctx.Value(contextKey{}).(string)
	return companyID
}

// CompanyID lê a empresa selecionada do contexto do Gin
func CompanyID(c *gin.Context) string {
	return c.GetString(ContextKey)
}
