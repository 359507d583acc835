package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/middleware"
)

func runUbicacionRouter(secureGroup *echo.Group, ctrl *controllers.UbicacionController, authMW *middleware.AuthMiddleware) {
	// El listado lo usan también técnicos y coordinadores; la escritura es
	// solo de administradores.
	secureGroup.GET("/ubicaciones", ctrl.GetUbicaciones)
	secureGroup.GET("/ubicaciones/:id", ctrl.FindUbicacion)

	admin := secureGroup.Group("", authMW.RequireRol(constants.RolAdministrador))
	admin.POST("/ubicaciones", ctrl.CreateUbicacion)
	admin.PUT("/ubicaciones/:id", ctrl.UpdateUbicacion)
	admin.DELETE("/ubicaciones/:id", ctrl.DeleteUbicacion)
}
