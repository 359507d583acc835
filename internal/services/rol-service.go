package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"soporte-ti/internal/repositories"
	"soporte-ti/pkg/constants"
)

const rolCacheKeyPrefix = "auth:rol:usuario:"

type RolServiceInterface interface {
	GetRolUsuario(ctx context.Context, userID string) (string, error)
	InvalidateRol(ctx context.Context, userID string) error
}

// RolService resuelve el rol vigente de un usuario. Cada request protegida lo
// consulta, así que el valor se cachea en Redis con un TTL corto: un cambio de
// rol surte efecto como mucho al expirar la entrada, o de inmediato si quien
// cambió el rol invalidó la clave.
type RolService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	cache       repositories.CacheRepositoryInterface
	ttl         time.Duration
	logger      *zap.Logger
}

func NewRolService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) RolServiceInterface {
	return &RolService{
		usuarioRepo: usuarioRepo,
		cache:       cache,
		ttl:         ttl,
		logger:      logger,
	}
}

func rolCacheKey(userID string) string {
	return fmt.Sprintf("%s%s", rolCacheKeyPrefix, userID)
}

func (s *RolService) GetRolUsuario(ctx context.Context, userID string) (string, error) {
	if cached, err := s.cache.Get(ctx, rolCacheKey(userID)); err == nil && constants.Contiene(constants.RolesPermitidos, cached) {
		return cached, nil
	}

	usuario, err := s.usuarioRepo.FindUsuario(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, rolCacheKey(userID), usuario.Rol, s.ttl); err != nil {
		s.logger.Warn("no se pudo cachear el rol", zap.String("usuario_id", userID), zap.Error(err))
	}
	return usuario.Rol, nil
}

func (s *RolService) InvalidateRol(ctx context.Context, userID string) error {
	return s.cache.Del(ctx, rolCacheKey(userID))
}
