package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/services"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/utils"
)

type UsuarioController struct {
	usuarioService services.UsuarioServiceInterface
	logger         *zap.Logger
}

func NewUsuarioController(usuarioService services.UsuarioServiceInterface, logger *zap.Logger) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService, logger: logger}
}

func (c *UsuarioController) GetUsuarios(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	usuarios, total, err := c.usuarioService.GetUsuarios(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuarios, "OK", http.StatusOK, total)
}

func (c *UsuarioController) GetUsuario(ctx echo.Context) error {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Falta el ID de usuario."), c.logger)
	}

	usuario, err := c.usuarioService.FindUsuario(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "OK", http.StatusOK)
}

func (c *UsuarioController) UpdateRol(ctx echo.Context) error {
	var payload dto.UpdateRolDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}

	if strings.TrimSpace(payload.UserID) == "" || strings.TrimSpace(payload.NewRol) == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Faltan el ID de usuario o el nuevo rol."), c.logger)
	}

	mensaje, err := c.usuarioService.UpdateRol(ctx.Request().Context(), payload.UserID, payload.NewRol)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, mensaje, http.StatusOK)
}
