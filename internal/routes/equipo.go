package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/middleware"
)

func runEquipoRouter(secureGroup *echo.Group, ctrl *controllers.EquipoController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/equipos", ctrl.GetEquipos)
	secureGroup.GET("/equipos/:id", ctrl.FindEquipo)

	admin := secureGroup.Group("", authMW.RequireRol(constants.RolAdministrador))
	admin.POST("/equipos", ctrl.CreateEquipo)
	admin.DELETE("/equipos/:id", ctrl.DeleteEquipo)
	admin.PUT("/equipos/estados", ctrl.GuardarEstados)
}
