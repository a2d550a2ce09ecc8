package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

// LockHeader sinaliza ao administrador que o mês está bloqueado
const LockHeader = "X-Monthly-Lock"

// LockChecker informa se a empresa está bloqueada no mês corrente
type LockChecker interface {
	IsLocked(ctx context.Context, companyID string) (bool, error)
}

// MonthlyLockMiddleware recusa com 423 as requisições de usuários não
// administradores enquanto o mês corrente não for liberado. Para o
// administrador a requisição segue, marcada com o cabeçalho LockHeader.
func MonthlyLockMiddleware(checker LockChecker, adminRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := tenant.CompanyID(c)
		if companyID == "" {
			c.Next()
			return
		}

		locked, err := checker.IsLocked(c.Request.Context(), companyID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao verificar bloqueio mensal",
				err.Error(),
			))
			return
		}
		if !locked {
			c.Next()
			return
		}

		if c.GetString(auth.ContextUserRole) == adminRole {
			c.Header(LockHeader, "locked")
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusLocked, dto.NewErrorResponse(
			http.StatusLocked,
			"Sistema bloqueado",
			"O acesso deste mês ainda não foi liberado pelo administrador",
		))
	}
}
