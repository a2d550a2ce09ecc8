package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/order"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// OrderController gerencia pedidos de venda e de compra
type OrderController struct {
	orders *service.OrderService
	log    logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orders *service.OrderService, log logger.Logger) *OrderController {
	return &OrderController{
		orders: orders,
		log:    log,
	}
}

func orderKind(ctx *gin.Context) order.Kind {
	return order.Kind(ctx.Param("kind"))
}

// List lista os pedidos ativos ou concluídos
// @Summary Lista pedidos
// @Description Sem finished lista os pedidos em aberto; com finished=true os entregues e cancelados
// @Tags orders
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param finished query bool false "Pedidos concluídos"
// @Success 200 {array} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /orders/{kind} [get]
// @Security Bearer
func (c *OrderController) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	finished, _ := strconv.ParseBool(ctx.DefaultQuery("finished", "false"))

	orders, err := c.orders.List(ctx.Request.Context(), actor, orderKind(ctx), finished)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// Get busca um pedido com o resumo de lucro
// @Summary Busca um pedido
// @Tags orders
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param id path int true "ID do pedido"
// @Success 200 {object} service.OrderDetail
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{kind}/{id} [get]
// @Security Bearer
func (c *OrderController) Get(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.orders.Get(ctx.Request.Context(), actor, orderKind(ctx), id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// Create grava um novo pedido e movimenta o estoque
// @Summary Cria um pedido
// @Tags orders
// @Accept json
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param order body service.OrderInput true "Cabeçalho e linhas do pedido"
// @Success 201 {object} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /orders/{kind} [post]
// @Security Bearer
func (c *OrderController) Create(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request service.OrderInput
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	o, err := c.orders.Create(ctx.Request.Context(), actor, orderKind(ctx), request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, o)
}

// Update substitui as linhas de um pedido salvo
// @Summary Atualiza um pedido
// @Description Restrito ao administrador. O estoque não é movimentado.
// @Tags orders
// @Accept json
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param id path int true "ID do pedido"
// @Param order body service.OrderInput true "Cabeçalho e linhas do pedido"
// @Success 200 {object} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{kind}/{id} [put]
// @Security Bearer
func (c *OrderController) Update(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var request service.OrderInput
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	o, err := c.orders.Update(ctx.Request.Context(), actor, orderKind(ctx), id, request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// Cancel solicita o cancelamento de um pedido
// @Summary Cancela um pedido
// @Description Retorna a confirmação pendente; o cancelamento estorna o estoque
// @Tags orders
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param id path int true "ID do pedido"
// @Success 202 {object} confirm.Pending
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{kind}/{id}/cancel [post]
// @Security Bearer
func (c *OrderController) Cancel(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.orders.RequestCancel(ctx.Request.Context(), actor, orderKind(ctx), id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// Delete solicita a exclusão de um pedido
// @Summary Exclui um pedido
// @Description Restrito ao administrador. O estoque não é estornado.
// @Tags orders
// @Produce json
// @Param kind path string true "sales ou purchases"
// @Param id path int true "ID do pedido"
// @Success 202 {object} confirm.Pending
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{kind}/{id} [delete]
// @Security Bearer
func (c *OrderController) Delete(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.orders.RequestDelete(ctx.Request.Context(), actor, orderKind(ctx), id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// ItemHistory lista as linhas vendidas
// @Summary Histórico de itens vendidos
// @Tags orders
// @Produce json
// @Param search query string false "Cliente ou produto"
// @Success 200 {array} service.HistoryItem
// @Router /history/items [get]
// @Security Bearer
func (c *OrderController) ItemHistory(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	items, err := c.orders.ItemHistory(ctx.Request.Context(), actor, ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// Deliveries lista as entregas de compra pendentes
// @Summary Relatório de entregas pendentes
// @Tags orders
// @Produce json
// @Param search query string false "Fornecedor, produto ou número do pedido"
// @Success 200 {array} order.PendingDelivery
// @Router /deliveries [get]
// @Security Bearer
func (c *OrderController) Deliveries(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	deliveries, err := c.orders.DeliveryReport(ctx.Request.Context(), actor, ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, deliveries)
}

// DraftController monta pedidos linha a linha antes de salvar
type DraftController struct {
	drafts *service.DraftService
	log    logger.Logger
}

// NewDraftController cria uma nova instância de DraftController
func NewDraftController(drafts *service.DraftService, log logger.Logger) *DraftController {
	return &DraftController{
		drafts: drafts,
		log:    log,
	}
}

// lineIndex lê a posição da linha, que começa em zero
func lineIndex(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Linha inválida", "O parâmetro index deve ser um número não negativo"))
		return 0, false
	}
	return index, true
}

func (c *DraftController) respond(ctx *gin.Context, view service.DraftView, err error) {
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Start abre um rascunho
// @Summary Abre um rascunho de pedido
// @Description Com editingId carrega as linhas do pedido salvo (restrito ao administrador)
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft body dto.StartDraftRequest true "Tipo e pedido em edição"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /drafts [post]
// @Security Bearer
func (c *DraftController) Start(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request dto.StartDraftRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	view, err := c.drafts.Start(ctx.Request.Context(), actor, request.Kind, request.EditingID)
	c.respond(ctx, view, err)
}

// Current retorna o rascunho do usuário
// @Summary Rascunho atual
// @Tags drafts
// @Produce json
// @Success 200 {object} service.DraftView
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts [get]
// @Security Bearer
func (c *DraftController) Current(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	view, err := c.drafts.Current(actor)
	c.respond(ctx, view, err)
}

// SetHeader altera parceiro, número do cliente e data de emissão
// @Summary Altera o cabeçalho do rascunho
// @Tags drafts
// @Accept json
// @Produce json
// @Param header body service.OrderHeader true "Cabeçalho"
// @Success 200 {object} service.DraftView
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts/header [put]
// @Security Bearer
func (c *DraftController) SetHeader(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request service.OrderHeader
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	view, err := c.drafts.SetHeader(actor, request)
	c.respond(ctx, view, err)
}

// AddLine acrescenta uma linha ao rascunho
// @Summary Adiciona uma linha
// @Tags drafts
// @Accept json
// @Produce json
// @Param line body order.Line true "Produto, quantidade e entrega"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts/lines [post]
// @Security Bearer
func (c *DraftController) AddLine(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request order.Line
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	view, err := c.drafts.AddLine(ctx.Request.Context(), actor, request)
	c.respond(ctx, view, err)
}

// RemoveLine descarta uma linha do rascunho
// @Summary Remove uma linha
// @Tags drafts
// @Produce json
// @Param index path int true "Posição da linha"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts/lines/{index} [delete]
// @Security Bearer
func (c *DraftController) RemoveLine(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	index, ok := lineIndex(ctx)
	if !ok {
		return
	}

	view, err := c.drafts.RemoveLine(actor, index)
	c.respond(ctx, view, err)
}

// EditLine retira uma linha do rascunho para correção
// @Summary Edita uma linha
// @Description Remove a linha e devolve seus dados para serem adicionados novamente
// @Tags drafts
// @Produce json
// @Param index path int true "Posição da linha"
// @Success 200 {object} dto.EditLineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts/lines/{index}/edit [post]
// @Security Bearer
func (c *DraftController) EditLine(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	index, ok := lineIndex(ctx)
	if !ok {
		return
	}

	line, view, err := c.drafts.EditLine(actor, index)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EditLineResponse{Line: line, Draft: view})
}

// Save grava o rascunho como pedido
// @Summary Salva o rascunho
// @Tags drafts
// @Produce json
// @Success 201 {object} order.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drafts/save [post]
// @Security Bearer
func (c *DraftController) Save(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	o, err := c.drafts.Save(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, o)
}

// Discard descarta o rascunho
// @Summary Descarta o rascunho
// @Tags drafts
// @Success 204
// @Router /drafts [delete]
// @Security Bearer
func (c *DraftController) Discard(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	c.drafts.Discard(actor)
	ctx.Status(http.StatusNoContent)
}
