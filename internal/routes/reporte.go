package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/middleware"
)

// El QR del equipo lleva al formulario de reporte, pero reportar exige
// sesión: todo ticket queda ligado a quien lo levantó.
func runReporteRouter(api *echo.Group, ctrl *controllers.TicketController, authMW *middleware.AuthMiddleware) {
	api.POST("/reportes", ctrl.CrearReporte, authMW.Auth)
}
