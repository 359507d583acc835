package controllers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/services"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Registro valida la presencia de los campos a mano: el frontend muestra estos
// mensajes tal cual, así que no pasan por el validador genérico.
func (c *AuthController) Registro(ctx echo.Context) error {
	var payload dto.RegistroDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}

	if strings.TrimSpace(payload.Email) == "" ||
		payload.Password == "" ||
		strings.TrimSpace(payload.NombreCompleto) == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Faltan campos requeridos."), c.logger)
	}

	if utf8.RuneCountInString(payload.Password) < 6 {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("La contraseña debe tener al menos 6 caracteres."), c.logger)
	}

	usuario, err := c.authService.Registrar(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "¡Registro exitoso! Ya puedes iniciar sesión.", http.StatusCreated)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, tokens, "Sesión iniciada.", http.StatusOK)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, err := c.authService.RefreshToken(ctx.Request().Context(), payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, tokens, "Tokens renovados.", http.StatusOK)
}

// Logout no mantiene lista negra: los tokens son sin estado y el cliente los
// descarta. El endpoint existe para que el frontend tenga a dónde apuntar.
func (c *AuthController) Logout(ctx echo.Context) error {
	if _, err := utils.GetUserIDFromCtx(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Sesión cerrada.", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	usuario, err := c.authService.GetMe(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "OK", http.StatusOK)
}
