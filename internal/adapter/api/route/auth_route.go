package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas de autenticação. public não exige
// token; session exige token mas não empresa selecionada.
func SetupAuthRoutes(public, session *gin.RouterGroup, authController *controller.AuthController, userController *controller.UserController) {
	publicRouter := public.Group("/auth")
	{
		publicRouter.POST("/login", authController.Login)
		publicRouter.POST("/refresh-token", authController.RefreshToken)
		publicRouter.GET("/companies", authController.Companies)
	}

	sessionRouter := session.Group("/auth")
	{
		sessionRouter.GET("/me", authController.Me)
		sessionRouter.POST("/company", authController.SelectCompany)
		sessionRouter.POST("/logout", authController.Logout)
		sessionRouter.PUT("/password", userController.ChangePassword)
	}
}
