package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/middleware"
)

func runTicketRouter(secureGroup *echo.Group, ctrl *controllers.TicketController, authMW *middleware.AuthMiddleware) {
	admin := secureGroup.Group("", authMW.RequireRol(constants.RolAdministrador))

	admin.GET("/reportes", ctrl.GetTickets)
	admin.GET("/reportes/:id", ctrl.FindTicket)
	admin.PUT("/reportes/cambios", ctrl.GuardarCambios)
	admin.GET("/reportes/export", ctrl.ExportarTickets)
}
