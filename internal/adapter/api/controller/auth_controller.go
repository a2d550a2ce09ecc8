package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/tenant"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	sessions   *service.SessionService
	jwtService *auth.JWTService
	log        logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(sessions *service.SessionService, jwtService *auth.JWTService, log logger.Logger) *AuthController {
	return &AuthController{
		sessions:   sessions,
		jwtService: jwtService,
		log:        log,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Procura o usuário em todas as empresas e retorna um token JWT. Com uma única empresa cadastrada ela já vem selecionada.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	actor, err := c.sessions.Login(ctx.Request.Context(), request.User, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		respondError(ctx, c.log, err)
		return
	}

	c.respondSession(ctx, actor)
}

// SelectCompany troca a empresa da sessão
// @Summary Seleciona a empresa
// @Description Passa a sessão para a empresa informada e retorna um novo token
// @Tags auth
// @Accept json
// @Produce json
// @Param company body dto.SelectCompanyRequest true "CNPJ da empresa"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/company [post]
// @Security Bearer
func (c *AuthController) SelectCompany(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request dto.SelectCompanyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	selected, err := c.sessions.SelectCompany(ctx.Request.Context(), actor, request.CNPJ)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	c.respondSession(ctx, selected)
}

func (c *AuthController) respondSession(ctx *gin.Context, actor *service.Actor) {
	token, err := c.jwtService.GenerateToken(&actor.User, actor.HomeCompany, actor.CompanyID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	info, err := c.sessions.Info(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
		Session:     dto.ToSessionResponse(info),
	})
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Renova um token JWT existente, mesmo expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	token, err := c.jwtService.RefreshToken(request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}

// Me retorna a sessão do usuário autenticado
// @Summary Sessão atual
// @Description Retorna o usuário, a empresa selecionada e o bloqueio mensal
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
// @Security Bearer
func (c *AuthController) Me(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	info, err := c.sessions.Info(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(info))
}

// Logout registra a saída do usuário
// @Summary Encerra a sessão
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
// @Security Bearer
func (c *AuthController) Logout(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	c.sessions.Logout(ctx.Request.Context(), actor)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão encerrada", nil))
}

// Companies lista as empresas disponíveis para seleção
// @Summary Lista as empresas
// @Tags auth
// @Produce json
// @Success 200 {array} tenant.Company
// @Router /auth/companies [get]
func (c *AuthController) Companies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, tenant.Companies)
}
