package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-ti/pkg/contextkeys"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/service"
	"soporte-ti/pkg/utils"
)

// RolProvider entrega el rol vigente de un usuario. La implementación
// real lo lee de la base con un cache en Redis.
type RolProvider interface {
	GetRolUsuario(ctx context.Context, userID string) (string, error)
}

type AuthMiddleware struct {
	jwtService  service.JWTService
	rolProvider RolProvider
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, rolProvider RolProvider, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		rolProvider: rolProvider,
		logger:      logger,
	}
}

// Auth valida el access token y deja el UserID en el contexto del request.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: encabezado Authorization vacío")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: formato de Authorization no válido")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token rechazado", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: intento de acceso con refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRol es el guard de autorización reutilizable: consulta el rol
// vigente del usuario autenticado y lo compara contra el rol exigido.
// Cualquier error de consulta cierra el acceso (fail closed).
func (m *AuthMiddleware) RequireRol(rol string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			userID, err := utils.GetUserIDFromCtx(ctx)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			rolActual, err := m.rolProvider.GetRolUsuario(ctx, userID)
			if err != nil {
				m.logger.Warn("RequireRol: no se pudo resolver el rol, acceso denegado",
					zap.String("userID", userID), zap.Error(err))
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusForbidden,
					"Acceso Denegado. No tienes los permisos necesarios.",
					err, nil,
				), m.logger)
			}

			if rolActual != rol {
				m.logger.Warn("RequireRol: rol insuficiente",
					zap.String("userID", userID),
					zap.String("rol", rolActual),
					zap.String("requerido", rol))
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusForbidden,
					"Acceso Denegado. No tienes los permisos necesarios.",
					apperrors.ErrForbidden, nil,
				), m.logger)
			}

			newCtx := context.WithValue(ctx, contextkeys.RolKey, rolActual)
			c.SetRequest(c.Request().WithContext(newCtx))

			return next(c)
		}
	}
}
