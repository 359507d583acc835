package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/services"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/utils"
)

type UbicacionController struct {
	ubicacionService services.UbicacionServiceInterface
	logger           *zap.Logger
}

func NewUbicacionController(ubicacionService services.UbicacionServiceInterface, logger *zap.Logger) *UbicacionController {
	return &UbicacionController{ubicacionService: ubicacionService, logger: logger}
}

func parseUbicacionID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("El ID de sala no es válido.")
	}
	return id, nil
}

func (c *UbicacionController) GetUbicaciones(ctx echo.Context) error {
	ubicaciones, err := c.ubicacionService.GetUbicaciones(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ubicaciones, "OK", http.StatusOK)
}

func (c *UbicacionController) FindUbicacion(ctx echo.Context) error {
	id, err := parseUbicacionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ubicacion, err := c.ubicacionService.FindUbicacion(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ubicacion, "OK", http.StatusOK)
}

func (c *UbicacionController) CreateUbicacion(ctx echo.Context) error {
	var payload dto.CreateUbicacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ubicacion, err := c.ubicacionService.CreateUbicacion(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ubicacion, "Sala creada.", http.StatusCreated)
}

func (c *UbicacionController) UpdateUbicacion(ctx echo.Context) error {
	id, err := parseUbicacionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateUbicacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ubicacion, err := c.ubicacionService.UpdateUbicacion(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ubicacion, "Sala actualizada.", http.StatusOK)
}

func (c *UbicacionController) DeleteUbicacion(ctx echo.Context) error {
	id, err := parseUbicacionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.ubicacionService.DeleteUbicacion(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Sala eliminada.", http.StatusOK)
}
