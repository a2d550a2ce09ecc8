package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// ConfirmationController confirma ou descarta as ações destrutivas
// pendentes do usuário
type ConfirmationController struct {
	confirmations *service.ConfirmationService
	log           logger.Logger
}

// NewConfirmationController cria uma nova instância de ConfirmationController
func NewConfirmationController(confirmations *service.ConfirmationService, log logger.Logger) *ConfirmationController {
	return &ConfirmationController{
		confirmations: confirmations,
		log:           log,
	}
}

// Current retorna a confirmação pendente
// @Summary Confirmação pendente
// @Tags confirmations
// @Produce json
// @Success 200 {object} confirm.Pending
// @Failure 404 {object} dto.ErrorResponse
// @Router /confirmations [get]
// @Security Bearer
func (c *ConfirmationController) Current(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	pending, err := c.confirmations.Current(actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, pending)
}

// Confirm executa a ação pendente
// @Summary Confirma a ação
// @Tags confirmations
// @Produce json
// @Param token path string true "Token da confirmação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /confirmations/{token} [post]
// @Security Bearer
func (c *ConfirmationController) Confirm(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	result, err := c.confirmations.Confirm(ctx.Request.Context(), actor, ctx.Param("token"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Ação confirmada", result))
}

// Dismiss descarta a ação pendente
// @Summary Descarta a ação
// @Tags confirmations
// @Param token path string true "Token da confirmação"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /confirmations/{token} [delete]
// @Security Bearer
func (c *ConfirmationController) Dismiss(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	if err := c.confirmations.Dismiss(actor, ctx.Param("token")); err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
