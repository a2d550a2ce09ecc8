package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

// Chaves gravadas no contexto do Gin
const (
	ContextUserID      = "user_id"
	ContextHomeCompany = "home_company"
	ContextUserLogin   = "user_login"
	ContextUserName    = "user_name"
	ContextUserRole    = "user_role"
)

// CurrentUser reúne os dados da sessão extraídos do token
type CurrentUser struct {
	ID          int
	HomeCompany string
	CompanyID   string
	Login       string
	Name        string
	Role        string
}

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextHomeCompany, claims.HomeCompany)
		c.Set(ContextUserLogin, claims.Login)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserRole, claims.Role)
		if claims.CompanyID != "" {
			c.Set(tenant.ContextKey, claims.CompanyID)
			c.Request = c.Request.WithContext(tenant.WithCompanyID(c.Request.Context(), claims.CompanyID))
		}

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextUserRole)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

// GetCurrentUser obtém as informações do usuário atual do contexto
func GetCurrentUser(c *gin.Context) CurrentUser {
	return CurrentUser{
		ID:          c.GetInt(ContextUserID),
		HomeCompany: c.GetString(ContextHomeCompany),
		CompanyID:   tenant.CompanyID(c),
		Login:       c.GetString(ContextUserLogin),
		Name:        c.GetString(ContextUserName),
		Role:        c.GetString(ContextUserRole),
	}
}
