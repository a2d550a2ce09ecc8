package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// CompanyController gerencia os dados da empresa selecionada e o
// bloqueio mensal
type CompanyController struct {
	company *service.CompanyService
	log     logger.Logger
}

// NewCompanyController cria uma nova instância de CompanyController
func NewCompanyController(company *service.CompanyService, log logger.Logger) *CompanyController {
	return &CompanyController{
		company: company,
		log:     log,
	}
}

// Get retorna a empresa selecionada
// @Summary Dados da empresa
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /company [get]
// @Security Bearer
func (c *CompanyController) Get(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	info, err := c.company.Info(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	c.respond(ctx, actor, info)
}

// UpdateInfo altera nome, moeda e logotipo da empresa
// @Summary Atualiza os dados da empresa
// @Tags company
// @Accept json
// @Produce json
// @Param company body dto.CompanyInfoRequest true "Dados da empresa"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /company [put]
// @Security Bearer
func (c *CompanyController) UpdateInfo(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request dto.CompanyInfoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	info, err := c.company.UpdateInfo(ctx.Request.Context(), actor, request.ToInfoInput())
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	c.respond(ctx, actor, info)
}

func (c *CompanyController) respond(ctx *gin.Context, actor *service.Actor, info tenant.Info) {
	company, err := tenant.FindCompany(actor.CompanyID)
	if err != nil {
		respondError(ctx, c.log, service.ErrNoCompany)
		return
	}
	lock, err := c.company.LockState(ctx.Request.Context(), actor.CompanyID)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompanyResponse{Company: company, Info: info, Lock: lock})
}

// LockState retorna a situação do bloqueio mensal
// @Summary Bloqueio mensal
// @Tags company
// @Produce json
// @Success 200 {object} service.LockState
// @Router /company/lock [get]
// @Security Bearer
func (c *CompanyController) LockState(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	if actor.CompanyID == "" {
		respondError(ctx, c.log, service.ErrNoCompany)
		return
	}

	state, err := c.company.LockState(ctx.Request.Context(), actor.CompanyID)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// Unlock solicita a liberação do mês corrente
// @Summary Libera o mês corrente
// @Description Restrito ao administrador. Retorna a confirmação pendente.
// @Tags company
// @Produce json
// @Success 202 {object} confirm.Pending
// @Failure 403 {object} dto.ErrorResponse
// @Router /company/unlock [post]
// @Security Bearer
func (c *CompanyController) Unlock(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	pending, err := c.company.RequestUnlock(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}
