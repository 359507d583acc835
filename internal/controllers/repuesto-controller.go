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

type RepuestoController struct {
	repuestoService services.RepuestoServiceInterface
	logger          *zap.Logger
}

func NewRepuestoController(repuestoService services.RepuestoServiceInterface, logger *zap.Logger) *RepuestoController {
	return &RepuestoController{repuestoService: repuestoService, logger: logger}
}

func (c *RepuestoController) GetRepuestos(ctx echo.Context) error {
	repuestos, err := c.repuestoService.GetRepuestos(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, repuestos, "OK", http.StatusOK)
}

func (c *RepuestoController) CreateRepuesto(ctx echo.Context) error {
	var payload dto.CreateRepuestoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	repuesto, err := c.repuestoService.CreateRepuesto(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, repuesto, "Repuesto creado.", http.StatusCreated)
}

func (c *RepuestoController) AjustarStock(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("El ID de repuesto no es válido."), c.logger)
	}

	var payload dto.AjustarStockDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	resultado, err := c.repuestoService.AjustarStock(ctx.Request().Context(), id, payload.Cantidad)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, resultado, "Stock actualizado.", http.StatusOK)
}
