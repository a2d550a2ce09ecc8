package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
)

// SetupFinancialRoutes configura contas a pagar e a receber e o lote
// de parcelas em revisão
func SetupFinancialRoutes(router *gin.RouterGroup, financialController *controller.FinancialController) {
	financialRouter := router.Group("/financials")
	{
		financialRouter.GET("", financialController.List)
		financialRouter.POST("", financialController.Create)
		financialRouter.GET("/:id", financialController.Get)
		financialRouter.PUT("/:id", financialController.Update)
		financialRouter.DELETE("/:id", financialController.Delete)
		financialRouter.POST("/:id/settle", financialController.Settle)
	}

	installmentRouter := router.Group("/installments")
	{
		installmentRouter.GET("", financialController.Installments)
		installmentRouter.DELETE("", financialController.DiscardInstallments)
		installmentRouter.PUT("/:index", financialController.UpdateInstallment)
		installmentRouter.POST("/confirm", financialController.ConfirmInstallments)
	}
}
