package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/internal/controllers"
	"soporte-ti/internal/repositories"
	"soporte-ti/internal/services"
	"soporte-ti/pkg/config"
	"soporte-ti/pkg/middleware"
	"soporte-ti/pkg/service"
)

// InitRouter arma todo el grafo de dependencias y registra las rutas. El
// cableado es explícito a propósito: se lee de arriba hacia abajo qué usa qué.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	// --- Repositorios ---
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	txManager := repositories.NewTxManager(dbConn)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn, logger)
	ubicacionRepo := repositories.NewUbicacionRepository(dbConn, logger)
	equipoRepo := repositories.NewEquipoRepository(dbConn, logger)
	ticketRepo := repositories.NewTicketRepository(dbConn, logger)
	repuestoRepo := repositories.NewRepuestoRepository(dbConn, logger)

	// --- Servicios ---
	rolService := services.NewRolService(usuarioRepo, cacheRepo, cfg.Auth.RolCacheTTL, logger)
	authService := services.NewAuthService(usuarioRepo, jwtSvc, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, rolService, logger)
	ubicacionService := services.NewUbicacionService(ubicacionRepo, logger)
	equipoService := services.NewEquipoService(equipoRepo, ubicacionRepo, txManager, logger)
	ticketService := services.NewTicketService(ticketRepo, equipoRepo, txManager, logger)
	repuestoService := services.NewRepuestoService(repuestoRepo, logger)

	// --- Controladores ---
	authController := controllers.NewAuthController(authService, logger)
	usuarioController := controllers.NewUsuarioController(usuarioService, logger)
	ubicacionController := controllers.NewUbicacionController(ubicacionService, logger)
	equipoController := controllers.NewEquipoController(equipoService, logger)
	ticketController := controllers.NewTicketController(ticketService, logger)
	repuestoController := controllers.NewRepuestoController(repuestoService, logger)

	// --- Rutas ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, rolService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runReporteRouter(api, ticketController, authMW)
	runUsuarioRouter(secureGroup, usuarioController, authMW)
	runUbicacionRouter(secureGroup, ubicacionController, authMW)
	runEquipoRouter(secureGroup, equipoController, authMW)
	runTicketRouter(secureGroup, ticketController, authMW)
	runRepuestoRouter(secureGroup, repuestoController, authMW)

	logger.Info("rutas registradas")
}
