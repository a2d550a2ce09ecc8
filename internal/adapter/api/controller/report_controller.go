package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/financial"
	"github.com/hugohenrick/vcontrol-pro/internal/report"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// ReportController exporta os relatórios em planilha
type ReportController struct {
	reports *service.ReportService
	log     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reports *service.ReportService, log logger.Logger) *ReportController {
	return &ReportController{
		reports: reports,
		log:     log,
	}
}

func (c *ReportController) send(ctx *gin.Context, f *report.File, err error) {
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	ctx.Data(http.StatusOK, report.ContentType, f.Content)
}

// Financial exporta contas a pagar ou a receber
// @Summary Relatório financeiro
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string true "payable ou receivable"
// @Param mode query string false "open ou settled"
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /reports/financials [get]
// @Security Bearer
func (c *ReportController) Financial(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	filter := financialFilter(ctx)
	title := "Contas a Receber"
	if filter.Type == financial.TypePayable {
		title = "Contas a Pagar"
	}

	f, err := c.reports.Financial(ctx.Request.Context(), actor, filter, title)
	c.send(ctx, f, err)
}

// Order exporta um pedido
// @Summary Imprime um pedido
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "sales ou purchases"
// @Param id path int true "ID do pedido"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/orders/{kind}/{id} [get]
// @Security Bearer
func (c *ReportController) Order(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	f, err := c.reports.Order(ctx.Request.Context(), actor, orderKind(ctx), id)
	c.send(ctx, f, err)
}

// Cashier exporta o livro caixa do período
// @Summary Relatório do livro caixa
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reports/cashier [get]
// @Security Bearer
func (c *ReportController) Cashier(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	f, err := c.reports.Cashier(ctx.Request.Context(), actor, ctx.Query("start"), ctx.Query("end"))
	c.send(ctx, f, err)
}

// Inventory exporta o estoque independente
// @Summary Relatório de estoque
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /reports/inventory [get]
// @Security Bearer
func (c *ReportController) Inventory(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	f, err := c.reports.Inventory(ctx.Request.Context(), actor)
	c.send(ctx, f, err)
}

// Logs exporta o log de auditoria
// @Summary Relatório de logs
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Usuário, ação, módulo ou detalhe"
// @Success 200 {file} file
// @Router /reports/logs [get]
// @Security Bearer
func (c *ReportController) Logs(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	f, err := c.reports.Logs(ctx.Request.Context(), actor, ctx.Query("search"))
	c.send(ctx, f, err)
}

// Deliveries exporta as entregas pendentes
// @Summary Relatório de entregas
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Fornecedor, produto ou número do pedido"
// @Success 200 {file} file
// @Router /reports/deliveries [get]
// @Security Bearer
func (c *ReportController) Deliveries(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	f, err := c.reports.Deliveries(ctx.Request.Context(), actor, ctx.Query("search"))
	c.send(ctx, f, err)
}

// List exporta a lista de clientes, fornecedores ou produtos
// @Summary Imprime uma lista
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "clients, suppliers ou products"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/lists/{kind} [get]
// @Security Bearer
func (c *ReportController) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	f, err := c.reports.List(ctx.Request.Context(), actor, service.ListKind(ctx.Param("kind")))
	c.send(ctx, f, err)
}
