package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// AuditController consulta o log de auditoria e o painel
type AuditController struct {
	audit     *service.AuditService
	dashboard *service.DashboardService
	log       logger.Logger
}

// NewAuditController cria uma nova instância de AuditController
func NewAuditController(audit *service.AuditService, dashboard *service.DashboardService, log logger.Logger) *AuditController {
	return &AuditController{
		audit:     audit,
		dashboard: dashboard,
		log:       log,
	}
}

// Logs lista as entradas do log da empresa, mais recentes primeiro
// @Summary Logs do sistema
// @Tags audit
// @Produce json
// @Param search query string false "Usuário, ação, módulo ou detalhe"
// @Success 200 {array} audit.Entry
// @Failure 403 {object} dto.ErrorResponse
// @Router /logs [get]
// @Security Bearer
func (c *AuditController) Logs(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	logs, err := c.audit.List(ctx.Request.Context(), actor, ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// Dashboard retorna os indicadores da visão geral
// @Summary Visão geral
// @Description Sem acesso aos módulos financeiros os cartões financeiros não são preenchidos
// @Tags audit
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} dto.ErrorResponse
// @Router /dashboard [get]
// @Security Bearer
func (c *AuditController) Dashboard(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	summary, err := c.dashboard.Summary(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
