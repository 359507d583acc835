package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/middleware"
)

func runRepuestoRouter(secureGroup *echo.Group, ctrl *controllers.RepuestoController, authMW *middleware.AuthMiddleware) {
	admin := secureGroup.Group("", authMW.RequireRol(constants.RolAdministrador))

	admin.GET("/repuestos", ctrl.GetRepuestos)
	admin.POST("/repuestos", ctrl.CreateRepuesto)
	admin.POST("/repuestos/:id/ajustar", ctrl.AjustarStock)
}
