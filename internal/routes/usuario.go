package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/middleware"
)

func runUsuarioRouter(secureGroup *echo.Group, ctrl *controllers.UsuarioController, authMW *middleware.AuthMiddleware) {
	admin := secureGroup.Group("", authMW.RequireRol(constants.RolAdministrador))

	admin.GET("/usuarios", ctrl.GetUsuarios)
	admin.GET("/usuarios/:id", ctrl.GetUsuario)
	admin.PUT("/usuarios/rol", ctrl.UpdateRol)
}
