package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
)

// SetupUserRoutes configura as rotas de usuários e do catálogo de módulos
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	{
		userRouter.GET("", userController.List)
		userRouter.POST("", userController.Create)
		userRouter.PUT("/:id/modules", userController.UpdateModules)
		userRouter.DELETE("/:id", userController.Delete)
	}

	router.GET("/modules", userController.Modules)
}
