package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
)

// Validator confere se a empresa está cadastrada
type Validator interface {
	Exists(companyID string) (bool, error)
}

// RequireCompany exige que o token de sessão traga uma empresa
// cadastrada. Sem empresa responde 400, empresa desconhecida 403.
func RequireCompany(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := CompanyID(c)
		if companyID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest, "Empresa não selecionada", ErrNoCompany.Error(),
			))
			return
		}

		ok, err := validator.Exists(companyID)
		switch {
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError, "Erro ao validar empresa", err.Error(),
			))
		case !ok:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden, "Empresa inválida", ErrUnknownCompany.Error(),
			))
		default:
			c.Next()
		}
	}
}
