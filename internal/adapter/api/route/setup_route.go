package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/controller"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/partner"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/product"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"github.com/hugohenrick/vcontrol-pro/pkg/middleware"
	"github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

// Version é a versão informada pelo health check
const Version = "1.0.0"

// Controllers reúne os controllers da API
type Controllers struct {
	Auth          *controller.AuthController
	Users         *controller.UserController
	Company       *controller.CompanyController
	Clients       *controller.CatalogController[partner.Partner]
	Suppliers     *controller.CatalogController[partner.Partner]
	Products      *controller.CatalogController[product.Product]
	Inventory     *controller.CatalogController[product.InventoryItem]
	Cashier       *controller.CashierController
	Orders        *controller.OrderController
	Drafts        *controller.DraftController
	Financials    *controller.FinancialController
	Reports       *controller.ReportController
	Audit         *controller.AuditController
	Confirmations *controller.ConfirmationController
}

// NewControllers cria os controllers sobre os serviços informados
func NewControllers(svc *service.Services, jwtService *auth.JWTService, log logger.Logger) *Controllers {
	return &Controllers{
		Auth:          controller.NewAuthController(svc.Session, jwtService, log),
		Users:         controller.NewUserController(svc.Users, log),
		Company:       controller.NewCompanyController(svc.Company, log),
		Clients:       controller.NewCatalogController(svc.Clients, log),
		Suppliers:     controller.NewCatalogController(svc.Suppliers, log),
		Products:      controller.NewCatalogController(svc.Products, log),
		Inventory:     controller.NewCatalogController(svc.Inventory, log),
		Cashier:       controller.NewCashierController(svc.Cashier, log),
		Orders:        controller.NewOrderController(svc.Orders, log),
		Drafts:        controller.NewDraftController(svc.Drafts, log),
		Financials:    controller.NewFinancialController(svc.Ledger, log),
		Reports:       controller.NewReportController(svc.Reports, log),
		Audit:         controller.NewAuditController(svc.Audit, svc.Dashboard, log),
		Confirmations: controller.NewConfirmationController(svc.Confirmations, log),
	}
}

// Setup configura todas as rotas sob router. As rotas de empresa exigem
// token, empresa selecionada e mês liberado (exceto para o admin).
func Setup(router *gin.RouterGroup, svc *service.Services, jwtService *auth.JWTService, validator tenant.Validator, log logger.Logger) {
	c := NewControllers(svc, jwtService, log)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": Version,
		})
	})

	session := router.Group("")
	session.Use(auth.JWTAuthMiddleware(jwtService), controller.ActorMiddleware(svc.Session, log))

	company := session.Group("")
	company.Use(tenant.RequireCompany(validator), middleware.MonthlyLockMiddleware(svc.Company, access.RoleAdmin))

	SetupAuthRoutes(router, session, c.Auth, c.Users)
	SetupUserRoutes(company, c.Users)
	SetupCompanyRoutes(company, c.Company)
	SetupCatalogRoutes(company, "/clients", c.Clients)
	SetupCatalogRoutes(company, "/suppliers", c.Suppliers)
	SetupCatalogRoutes(company, "/products", c.Products)
	SetupCatalogRoutes(company, "/inventory", c.Inventory)
	SetupCashierRoutes(company, c.Cashier)
	SetupOrderRoutes(company, c.Orders, c.Drafts)
	SetupFinancialRoutes(company, c.Financials)
	SetupReportRoutes(company, c.Reports, c.Audit)
	SetupConfirmationRoutes(company, c.Confirmations)
}
