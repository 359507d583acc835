package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/services"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/utils"
)

type EquipoController struct {
	equipoService services.EquipoServiceInterface
	logger        *zap.Logger
}

func NewEquipoController(equipoService services.EquipoServiceInterface, logger *zap.Logger) *EquipoController {
	return &EquipoController{equipoService: equipoService, logger: logger}
}

func (c *EquipoController) GetEquipos(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	equipos, total, err := c.equipoService.GetEquipos(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipos, "OK", http.StatusOK, total)
}

func (c *EquipoController) FindEquipo(ctx echo.Context) error {
	equipo, err := c.equipoService.FindEquipo(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipo, "OK", http.StatusOK)
}

func (c *EquipoController) CreateEquipo(ctx echo.Context) error {
	var payload dto.CreateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipo, err := c.equipoService.CreateEquipo(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipo, fmt.Sprintf("Equipo %s creado.", equipo.ID), http.StatusCreated)
}

func (c *EquipoController) DeleteEquipo(ctx echo.Context) error {
	if err := c.equipoService.DeleteEquipo(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Equipo eliminado.", http.StatusOK)
}

// GuardarEstados recibe el lote completo de la pantalla de gestión y responde
// cuántas filas cambiaron de verdad.
func (c *EquipoController) GuardarEstados(ctx echo.Context) error {
	var payload dto.CambiosEstadoEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cambios, err := c.equipoService.GuardarEstados(ctx.Request().Context(), payload.Cambios)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if cambios == 0 {
		return utils.SuccessResponse(ctx, map[string]int{"cambios": 0}, "No había cambios que guardar.", http.StatusOK)
	}
	return utils.SuccessResponse(ctx,
		map[string]int{"cambios": cambios},
		fmt.Sprintf("¡Guardado! Se actualizaron %d equipos.", cambios),
		http.StatusOK,
	)
}
