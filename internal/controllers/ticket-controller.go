package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/services"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/utils"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
	logger        *zap.Logger
}

func NewTicketController(ticketService services.TicketServiceInterface, logger *zap.Logger) *TicketController {
	return &TicketController{ticketService: ticketService, logger: logger}
}

func (c *TicketController) GetTickets(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	tickets, total, err := c.ticketService.GetTickets(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tickets, "OK", http.StatusOK, total)
}

func (c *TicketController) FindTicket(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("El ID del ticket debe ser numérico."), c.logger)
	}

	ticket, err := c.ticketService.FindTicket(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ticket, "OK", http.StatusOK)
}

// CrearReporte es el endpoint al que apunta el código QR pegado en cada
// equipo. Requiere sesión: el usuario autenticado queda como reportante.
func (c *TicketController) CrearReporte(ctx echo.Context) error {
	var payload dto.ReporteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}

	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	ticket, err := c.ticketService.CrearReporte(ctx.Request().Context(), payload, &userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, ticket, "Reporte recibido. El área de soporte fue notificada.", http.StatusCreated)
}

// GuardarCambios aplica el lote de la pantalla de triaje.
func (c *TicketController) GuardarCambios(ctx echo.Context) error {
	var payload dto.CambiosTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Cuerpo de la solicitud no válido."), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cambios, err := c.ticketService.GuardarCambios(ctx.Request().Context(), payload.Cambios)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if cambios == 0 {
		return utils.SuccessResponse(ctx, map[string]int{"cambios": 0}, "No había cambios que guardar.", http.StatusOK)
	}
	return utils.SuccessResponse(ctx,
		map[string]int{"cambios": cambios},
		fmt.Sprintf("¡Guardado! Se actualizaron %d tickets.", cambios),
		http.StatusOK,
	)
}

func (c *TicketController) ExportarTickets(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	contenido, err := c.ticketService.ExportarTickets(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	nombre := fmt.Sprintf("tickets_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nombre))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		contenido,
	)
}
