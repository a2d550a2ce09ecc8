package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
	"github.com/hugohenrick/vcontrol-pro/pkg/domain"
)

// SetupCatalogRoutes configura as rotas CRUD de um cadastro simples
func SetupCatalogRoutes[T domain.Record](router *gin.RouterGroup, path string, catalogController *controller.CatalogController[T]) {
	catalogRouter := router.Group(path)
	{
		catalogRouter.GET("", catalogController.List)
		catalogRouter.GET("/:id", catalogController.Get)
		catalogRouter.POST("", catalogController.Create)
		catalogRouter.PUT("/:id", catalogController.Update)
		catalogRouter.DELETE("/:id", catalogController.Delete)
	}
}

// SetupCashierRoutes configura o livro caixa, listado por período
func SetupCashierRoutes(router *gin.RouterGroup, cashierController *controller.CashierController) {
	cashierRouter := router.Group("/cashier")
	{
		cashierRouter.GET("", cashierController.List)
		cashierRouter.GET("/:id", cashierController.Get)
		cashierRouter.POST("", cashierController.Create)
		cashierRouter.PUT("/:id", cashierController.Update)
		cashierRouter.DELETE("/:id", cashierController.Delete)
	}
}
