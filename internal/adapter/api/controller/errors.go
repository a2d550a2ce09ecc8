package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// respondError traduz as falhas do serviço para a resposta HTTP.
// Apenas falhas inesperadas são registradas no logger.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	switch {
	case service.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", err.Error()))
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", err.Error()))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoDraft):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Não encontrado", err.Error()))
	case errors.Is(err, service.ErrNoCompany):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Empresa não selecionada", err.Error()))
	case errors.Is(err, service.ErrLocked):
		ctx.JSON(http.StatusLocked, dto.NewErrorResponse(http.StatusLocked, "Sistema bloqueado", err.Error()))
	default:
		log.Error("Erro ao processar requisição", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro interno", err.Error()))
	}
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
}

// pathID lê o parâmetro numérico informado, respondendo 400 quando inválido
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "O parâmetro "+name+" deve ser um número positivo"))
		return 0, false
	}
	return id, true
}
