package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/cashier"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// CatalogController expõe um cadastro simples: clientes, fornecedores,
// produtos, estoque independente ou livro caixa
type CatalogController[T domain.Record] struct {
	catalog *service.Catalog[T]
	log     logger.Logger
}

// NewCatalogController cria um controller para o cadastro informado
func NewCatalogController[T domain.Record](catalog *service.Catalog[T], log logger.Logger) *CatalogController[T] {
	return &CatalogController[T]{
		catalog: catalog,
		log:     log,
	}
}

// List lista os registros do cadastro
// @Summary Lista os registros
// @Tags catalogs
// @Produce json
// @Param collection path string true "clients, suppliers, products, inventory ou cashier"
// @Success 200 {array} object
// @Failure 403 {object} dto.ErrorResponse
// @Router /{collection} [get]
// @Security Bearer
func (c *CatalogController[T]) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	list, err := c.catalog.List(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// Get busca um registro pelo id
// @Summary Busca um registro
// @Tags catalogs
// @Produce json
// @Param collection path string true "clients, suppliers, products, inventory ou cashier"
// @Param id path int true "ID do registro"
// @Success 200 {object} object
// @Failure 404 {object} dto.ErrorResponse
// @Router /{collection}/{id} [get]
// @Security Bearer
func (c *CatalogController[T]) Get(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	v, err := c.catalog.Get(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// Create grava um novo registro
// @Summary Cria um registro
// @Tags catalogs
// @Accept json
// @Produce json
// @Param collection path string true "clients, suppliers, products, inventory ou cashier"
// @Success 201 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Router /{collection} [post]
// @Security Bearer
func (c *CatalogController[T]) Create(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request T
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	v, err := c.catalog.Create(ctx.Request.Context(), actor, request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, v)
}

// Update grava as alterações de um registro, registrando a diferença no log
// @Summary Atualiza um registro
// @Tags catalogs
// @Accept json
// @Produce json
// @Param collection path string true "clients, suppliers, products, inventory ou cashier"
// @Param id path int true "ID do registro"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /{collection}/{id} [put]
// @Security Bearer
func (c *CatalogController[T]) Update(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var request T
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	v, err := c.catalog.Update(ctx.Request.Context(), actor, id, request)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// Delete solicita a exclusão de um registro
// @Summary Exclui um registro
// @Description Retorna a confirmação pendente; a exclusão ocorre em POST /confirmations/{token}
// @Tags catalogs
// @Produce json
// @Param collection path string true "clients, suppliers, products, inventory ou cashier"
// @Param id path int true "ID do registro"
// @Success 202 {object} confirm.Pending
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /{collection}/{id} [delete]
// @Security Bearer
func (c *CatalogController[T]) Delete(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.catalog.RequestDelete(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// CashierController é o livro caixa, listado por período
type CashierController struct {
	*CatalogController[cashier.Entry]
	cashier *service.CashierService
}

// NewCashierController cria uma nova instância de CashierController
func NewCashierController(cashierService *service.CashierService, log logger.Logger) *CashierController {
	return &CashierController{
		CatalogController: NewCatalogController(cashierService.Catalog, log),
		cashier:           cashierService,
	}
}

// List lista os lançamentos do livro caixa no período
// @Summary Lista o livro caixa
// @Tags cashier
// @Produce json
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Success 200 {array} cashier.Entry
// @Failure 403 {object} dto.ErrorResponse
// @Router /cashier [get]
// @Security Bearer
func (c *CashierController) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	entries, err := c.cashier.ListWindow(ctx.Request.Context(), actor, ctx.Query("start"), ctx.Query("end"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
