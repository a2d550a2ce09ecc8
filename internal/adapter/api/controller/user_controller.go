package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/dto"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/access"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	users *service.UserService
	log   logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(users *service.UserService, log logger.Logger) *UserController {
	return &UserController{
		users: users,
		log:   log,
	}
}

// List lista os usuários da empresa selecionada
// @Summary Lista usuários
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [get]
// @Security Bearer
func (c *UserController) List(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}

	users, err := c.users.List(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Create cria um novo usuário
// @Summary Cria um novo usuário
// @Description Sem módulos explícitos o usuário recebe os módulos padrão do papel
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [post]
// @Security Bearer
func (c *UserController) Create(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.users.Create(ctx.Request.Context(), actor, service.UserInput{
		Name:     request.Name,
		Login:    request.Login,
		Password: request.Password,
		Role:     request.Role,
		Modules:  request.Modules,
	})
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(*u))
}

// UpdateModules substitui os módulos de um usuário
// @Summary Atualiza as permissões
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param modules body dto.UpdateModulesRequest true "Módulos concedidos"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id}/modules [put]
// @Security Bearer
func (c *UserController) UpdateModules(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var request dto.UpdateModulesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.users.UpdateModules(ctx.Request.Context(), actor, id, request.Modules)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(*u))
}

// Delete solicita a exclusão de um usuário
// @Summary Exclui um usuário
// @Description Retorna a confirmação pendente; a exclusão ocorre em POST /confirmations/{token}
// @Tags users
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 202 {object} confirm.Pending
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
// @Security Bearer
func (c *UserController) Delete(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pending, err := c.users.RequestDelete(ctx.Request.Context(), actor, id)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusAccepted, pending)
}

// ChangePassword altera a senha do usuário autenticado
// @Summary Altera a própria senha
// @Tags users
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Senha atual e nova senha"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/me/password [put]
// @Security Bearer
func (c *UserController) ChangePassword(ctx *gin.Context) {
	actor := currentActor(ctx)
	if actor == nil {
		return
	}
	var request dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	err := c.users.ChangePassword(ctx.Request.Context(), actor, service.PasswordChange{
		Current: request.CurrentPassword,
		New:     request.NewPassword,
		Confirm: request.ConfirmPassword,
	})
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Senha alterada com sucesso", nil))
}

// Modules lista o catálogo de módulos para o editor de permissões
// @Summary Catálogo de módulos
// @Tags users
// @Produce json
// @Success 200 {object} dto.ModuleCatalogResponse
// @Router /users/modules [get]
// @Security Bearer
func (c *UserController) Modules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ModuleCatalogResponse{
		Modules:    access.Catalog,
		Categories: access.Categories,
	})
}
