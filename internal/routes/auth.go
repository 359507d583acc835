package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-ti/internal/controllers"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/registro", ctrl.Registro)
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.Refresh)

	secureGroup.GET("/auth/me", ctrl.Me)
	secureGroup.POST("/auth/logout", ctrl.Logout)
}
