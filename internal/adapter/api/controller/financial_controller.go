package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// FinancialController gerencia contas a pagar e a receber
type FinancialController struct {
	ledger *service.LedgerService
	log    logger.Logger
}

// NewFinancialController cria uma nova instância de FinancialController
func NewFinancialController(ledger *service.LedgerService, log logger.Logger) *FinancialController {
	return &FinancialController{
		ledger: ledger,
		log:    log,
	}
}

// financialFilter lê tipo, modo e janela de datas da query
func financialFilter(ctx *gin.Context) financial.Filter {
	return financial.Filter{
		Type:  financial.Type(ctx.Query("type")),
		Mode:  financial.ViewMode(ctx.DefaultQuery("mode", string(financial.ViewOpen))),
		Start: ctx.Query("start"),
		End:   ctx.Query("end"),
	}
}

// List lista os lançamentos com o resumo por faixa de vencimento
// @Summary Lista lançamentos financeiros
// @Tags financials
// @Produce json
// @Param type query string true "payable ou receivable"
// @Param mode query string false "open ou settled"
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.FinancialListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /financials [get]
// @Security Bearer
func (c *FinancialController) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	entries, summary, err := c.ledger.List(ctx.Request.Context(), actor, financialFilter(ctx))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FinancialListResponse{Entries: entries, Summary: summary})
}

// Get busca um lançamento
// @Summary Busca um lançamento
// @Tags financials
// @Produce json
// @Param id path int true "ID do lançamento"
// @Success 200 {object} financial.Entry
// @Failure 404 {object} dto.ErrorResponse
// @Router /financials/{id} [get]
// @Security Bearer
func (c *FinancialController) Get(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	e, err := c.ledger.Get(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, e)
}

// Create grava um lançamento ou gera o lote de parcelas
// @Summary Cria um lançamento
// @Description Com installments maior que um devolve o lote de parcelas em revisão, confirmado em POST /installments/confirm
// @Tags financials
// @Accept json
// @Produce json
// @Param entry body service.EntryInput true "Lançamento"
// @Success 200 {object} service.SaveResult
// @Success 201 {object} service.SaveResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /financials [post]
// @Security Bearer
func (c *FinancialController) Create(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request service.EntryInput
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	request.ID = 0

	result, err := c.ledger.Save(ctx.Request.Context(), actor, request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	status := http.StatusCreated
	if result.Batch != nil {
		status = http.StatusOK
	}
	ctx.JSON(status, result)
}

// Update grava as alterações de um lançamento
// @Summary Atualiza um lançamento
// @Tags financials
// @Accept json
// @Produce json
// @Param id path int true "ID do lançamento"
// @Param entry body financial.Entry true "Lançamento"
// @Success 200 {object} financial.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /financials/{id} [put]
// @Security Bearer
func (c *FinancialController) Update(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var request financial.Entry
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	request.ID = id

	result, err := c.ledger.Save(ctx.Request.Context(), actor, service.EntryInput{Entry: request})
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, result.Entry)
}

// Settle solicita a baixa de um lançamento
// @Summary Baixa um lançamento
// @Description Retorna a confirmação pendente; a baixa grava a data de hoje
// @Tags financials
// @Produce json
// @Param id path int true "ID do lançamento"
// @Success 202 {object} confirm.Pending
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /financials/{id}/settle [post]
// @Security Bearer
func (c *FinancialController) Settle(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.ledger.RequestSettle(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// Delete solicita a exclusão de um lançamento
// @Summary Exclui um lançamento
// @Tags financials
// @Produce json
// @Param id path int true "ID do lançamento"
// @Success 202 {object} confirm.Pending
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /financials/{id} [delete]
// @Security Bearer
func (c *FinancialController) Delete(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.ledger.RequestDelete(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// Installments retorna o lote de parcelas em revisão
// @Summary Lote de parcelas em revisão
// @Tags financials
// @Produce json
// @Success 200 {object} service.Batch
// @Failure 404 {object} dto.ErrorResponse
// @Router /installments [get]
// @Security Bearer
func (c *FinancialController) Installments(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	batch, err := c.ledger.StagedBatch(actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, batch)
}

// UpdateInstallment altera vencimento e valor de uma parcela
// @Summary Altera uma parcela do lote
// @Tags financials
// @Accept json
// @Produce json
// @Param index path int true "Posição da parcela"
// @Param patch body service.InstallmentPatch true "Vencimento e valor"
// @Success 200 {object} service.Batch
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /installments/{index} [put]
// @Security Bearer
func (c *FinancialController) UpdateInstallment(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	index, ok := lineIndex(ctx)
	if !ok {
		return
	}
	var request service.InstallmentPatch
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	batch, err := c.ledger.UpdateInstallment(actor, index, request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, batch)
}

// ConfirmInstallments grava todas as parcelas do lote
// @Summary Confirma o lote de parcelas
// @Tags financials
// @Produce json
// @Success 201 {array} financial.Entry
// @Failure 404 {object} dto.ErrorResponse
// @Router /installments/confirm [post]
// @Security Bearer
func (c *FinancialController) ConfirmInstallments(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	entries, err := c.ledger.ConfirmBatch(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, entries)
}

// DiscardInstallments descarta o lote em revisão
// @Summary Descarta o lote de parcelas
// @Tags financials
// @Success 204
// @Router /installments [delete]
// @Security Bearer
func (c *FinancialController) DiscardInstallments(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	c.ledger.DiscardBatch(actor)
	ctx.Status(http.StatusNoContent)
}
