package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	"soporte-ti/internal/repositories"
	apperrors "soporte-ti/pkg/errors"
)

type UbicacionServiceInterface interface {
	GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error)
	FindUbicacion(ctx context.Context, id int64) (*entities.Ubicacion, error)
	CreateUbicacion(ctx context.Context, payload dto.CreateUbicacionDTO) (*entities.Ubicacion, error)
	UpdateUbicacion(ctx context.Context, id int64, payload dto.UpdateUbicacionDTO) (*entities.Ubicacion, error)
	DeleteUbicacion(ctx context.Context, id int64) error
}

type UbicacionService struct {
	ubicacionRepo repositories.UbicacionRepositoryInterface
	logger        *zap.Logger
}

func NewUbicacionService(ubicacionRepo repositories.UbicacionRepositoryInterface, logger *zap.Logger) UbicacionServiceInterface {
	return &UbicacionService{ubicacionRepo: ubicacionRepo, logger: logger}
}

func (s *UbicacionService) GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error) {
	return s.ubicacionRepo.GetUbicaciones(ctx)
}

func (s *UbicacionService) FindUbicacion(ctx context.Context, id int64) (*entities.Ubicacion, error) {
	return s.ubicacionRepo.FindUbicacion(ctx, id)
}

func (s *UbicacionService) CreateUbicacion(ctx context.Context, payload dto.CreateUbicacionDTO) (*entities.Ubicacion, error) {
	ubicacion := entities.Ubicacion{
		ID:          payload.ID,
		Piso:        strings.TrimSpace(payload.Piso),
		TipoSala:    strings.ToUpper(strings.TrimSpace(payload.TipoSala)),
		Descripcion: payload.Descripcion,
	}

	if err := s.ubicacionRepo.CreateUbicacion(ctx, ubicacion); err != nil {
		return nil, err
	}
	return &ubicacion, nil
}

func (s *UbicacionService) UpdateUbicacion(ctx context.Context, id int64, payload dto.UpdateUbicacionDTO) (*entities.Ubicacion, error) {
	if payload.TipoSala != nil {
		normalizado := strings.ToUpper(strings.TrimSpace(*payload.TipoSala))
		payload.TipoSala = &normalizado
	}
	return s.ubicacionRepo.UpdateUbicacion(ctx, id, payload)
}

// DeleteUbicacion rechaza el borrado si la sala todavía tiene equipos: los IDs
// de equipo llevan la sala codificada y quedarían huérfanos.
func (s *UbicacionService) DeleteUbicacion(ctx context.Context, id int64) error {
	total, err := s.ubicacionRepo.CountEquiposEnUbicacion(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("La sala %d tiene %d equipos asignados y no puede eliminarse.", id, total),
			apperrors.ErrBadRequest, nil,
		)
	}
	return s.ubicacionRepo.DeleteUbicacion(ctx, id)
}
