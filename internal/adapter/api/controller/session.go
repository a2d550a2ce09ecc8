package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// ContextActor é a chave do ator resolvido no contexto do Gin
const ContextActor = "actor"

// ActorMiddleware relê o usuário do token no cadastro. Usuário excluído
// depois da emissão do token perde a sessão.
func ActorMiddleware(sessions *service.SessionService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		current := auth.GetCurrentUser(ctx)
		actor, err := sessions.Resolve(ctx.Request.Context(), current.HomeCompany, current.ID, current.CompanyID)
		if err != nil {
			respondError(ctx, log, err)
			ctx.Abort()
			return
		}
		ctx.Set(ContextActor, actor)
		ctx.Next()
	}
}

// currentActor devolve o ator gravado por ActorMiddleware
func currentActor(ctx *gin.Context) *service.Actor {
	if v, ok := ctx.Get(ContextActor); ok {
		if actor, ok := v.(*service.Actor); ok {
			return actor
		}
	}
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
	return nil
}
