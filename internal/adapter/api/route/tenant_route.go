package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
)

// SetupCompanyRoutes configura as rotas da empresa selecionada
func SetupCompanyRoutes(router *gin.RouterGroup, companyController *controller.CompanyController) {
	companyRouter := router.Group("/company")
	{
		companyRouter.GET("", companyController.Get)
		companyRouter.PUT("", companyController.UpdateInfo)
		companyRouter.GET("/lock", companyController.LockState)
		companyRouter.POST("/unlock", auth.RoleAuthMiddleware(access.RoleAdmin), companyController.Unlock)
	}
}
