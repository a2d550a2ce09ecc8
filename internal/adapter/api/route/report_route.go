package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
)

// SetupReportRoutes configura as exportações em planilha, o log de
// auditoria e a visão geral
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController, auditController *controller.AuditController) {
	reportRouter := router.Group("/reports")
	{
		reportRouter.GET("/financials", reportController.Financial)
		reportRouter.GET("/orders/:kind/:id", reportController.Order)
		reportRouter.GET("/cashier", reportController.Cashier)
		reportRouter.GET("/inventory", reportController.Inventory)
		reportRouter.GET("/logs", reportController.Logs)
		reportRouter.GET("/deliveries", reportController.Deliveries)
		reportRouter.GET("/lists/:kind", reportController.List)
	}

	router.GET("/logs", auditController.Logs)
	router.GET("/dashboard", auditController.Dashboard)
}

// SetupConfirmationRoutes configura a confirmação das ações destrutivas
func SetupConfirmationRoutes(router *gin.RouterGroup, confirmationController *controller.ConfirmationController) {
	confirmationRouter := router.Group("/confirmations")
	{
		confirmationRouter.GET("", confirmationController.Current)
		confirmationRouter.POST("/:token", confirmationController.Confirm)
		confirmationRouter.DELETE("/:token", confirmationController.Dismiss)
	}
}
