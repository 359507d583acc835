package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"soporte-ti/internal/entities"
	"soporte-ti/internal/repositories"
	"soporte-ti/pkg/constants"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
)

type UsuarioServiceInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error)
	FindUsuario(ctx context.Context, userID string) (*entities.Usuario, error)
	UpdateRol(ctx context.Context, userID string, newRol string) (string, error)
}

type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	rolService  RolServiceInterface
	logger      *zap.Logger
}

func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	rolService RolServiceInterface,
	logger *zap.Logger,
) UsuarioServiceInterface {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		rolService:  rolService,
		logger:      logger,
	}
}

func (s *UsuarioService) GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error) {
	return s.usuarioRepo.GetUsuarios(ctx, filter)
}

func (s *UsuarioService) FindUsuario(ctx context.Context, userID string) (*entities.Usuario, error) {
	return s.usuarioRepo.FindUsuario(ctx, userID)
}

// UpdateRol cambia el rol de otro usuario y devuelve el mensaje de éxito que
// muestra el panel. Invalida el rol cacheado para que el cambio rija en la
// siguiente request del afectado.
func (s *UsuarioService) UpdateRol(ctx context.Context, userID string, newRol string) (string, error) {
	if !constants.Contiene(constants.RolesPermitidos, newRol) {
		return "", apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("El rol '%s' no es un rol válido.", newRol),
			apperrors.ErrBadRequest, nil,
		)
	}

	if err := s.usuarioRepo.UpdateRol(ctx, userID, newRol); err != nil {
		return "", err
	}

	if err := s.rolService.InvalidateRol(ctx, userID); err != nil {
		s.logger.Warn("no se pudo invalidar el rol cacheado", zap.String("usuario_id", userID), zap.Error(err))
	}

	s.logger.Info("rol actualizado", zap.String("usuario_id", userID), zap.String("rol", newRol))
	return fmt.Sprintf("Rol de usuario actualizado a %s", newRol), nil
}
