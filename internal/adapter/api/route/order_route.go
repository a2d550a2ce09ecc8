package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
)

// SetupOrderRoutes configura pedidos, rascunhos, histórico e entregas
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController, draftController *controller.DraftController) {
	orderRouter := router.Group("/orders/:kind")
	{
		orderRouter.GET("", orderController.List)
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("/:id", orderController.Get)
		orderRouter.PUT("/:id", orderController.Update)
		orderRouter.DELETE("/:id", orderController.Delete)
		orderRouter.POST("/:id/cancel", orderController.Cancel)
	}

	router.GET("/history/items", orderController.ItemHistory)
	router.GET("/deliveries", orderController.Deliveries)

	draftRouter := router.Group("/drafts")
	{
		draftRouter.POST("", draftController.Start)
		draftRouter.GET("", draftController.Current)
		draftRouter.DELETE("", draftController.Discard)
		draftRouter.PUT("/header", draftController.SetHeader)
		draftRouter.POST("/lines", draftController.AddLine)
		draftRouter.DELETE("/lines/:index", draftController.RemoveLine)
		draftRouter.POST("/lines/:index/edit", draftController.EditLine)
		draftRouter.POST("/save", draftController.Save)
	}
}
