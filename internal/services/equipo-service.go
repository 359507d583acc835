package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	"soporte-ti/internal/repositories"
	"soporte-ti/pkg/constants"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
	"soporte-ti/pkg/utils"
)

type EquipoServiceInterface interface {
	GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error)
	FindEquipo(ctx context.Context, id string) (*entities.Equipo, error)
	CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (*entities.Equipo, error)
	DeleteEquipo(ctx context.Context, id string) error
	GuardarEstados(ctx context.Context, editados map[string]string) (int, error)
}

type EquipoService struct {
	equipoRepo    repositories.EquipoRepositoryInterface
	ubicacionRepo repositories.UbicacionRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewEquipoService(
	equipoRepo repositories.EquipoRepositoryInterface,
	ubicacionRepo repositories.UbicacionRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipoServiceInterface {
	return &EquipoService{
		equipoRepo:    equipoRepo,
		ubicacionRepo: ubicacionRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *EquipoService) GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error) {
	return s.equipoRepo.GetEquipos(ctx, filter)
}

func (s *EquipoService) FindEquipo(ctx context.Context, id string) (*entities.Equipo, error) {
	return s.equipoRepo.FindEquipo(ctx, utils.NormalizarIDEquipo(id))
}

// CreateEquipo genera el ID a partir de la sala y el número de equipo. La sala
// tiene que existir antes: el tipo de sala sale de su registro, no del cliente.
func (s *EquipoService) CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (*entities.Equipo, error) {
	ubicacion, err := s.ubicacionRepo.FindUbicacion(ctx, payload.UbicacionID)
	if err != nil {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("La sala %d no existe.", payload.UbicacionID),
			err, nil,
		)
	}

	id, err := utils.GenerarIDEquipo(ubicacion.TipoSala, ubicacion.ID, payload.NumeroEquipo)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	equipo := &entities.Equipo{
		ID:          id,
		TipoEquipo:  strings.TrimSpace(payload.TipoEquipo),
		Marca:       strings.TrimSpace(payload.Marca),
		Modelo:      strings.TrimSpace(payload.Modelo),
		NumeroSerie: strings.TrimSpace(payload.NumeroSerie),
		Estado:      payload.Estado,
		UbicacionID: ubicacion.ID,
	}

	if err := s.equipoRepo.CreateEquipo(ctx, equipo); err != nil {
		return nil, err
	}

	equipo.Ubicacion = ubicacion
	return equipo, nil
}

func (s *EquipoService) DeleteEquipo(ctx context.Context, id string) error {
	return s.equipoRepo.DeleteEquipo(ctx, utils.NormalizarIDEquipo(id))
}

// GuardarEstados aplica el lote "editar y guardar" de la pantalla de equipos:
// compara los estados editados contra los vigentes y persiste solo las filas
// que cambiaron, todas en una transacción. Devuelve cuántas filas se tocaron.
func (s *EquipoService) GuardarEstados(ctx context.Context, editados map[string]string) (int, error) {
	normalizados := make(map[string]string, len(editados))
	for id, estado := range editados {
		if !constants.Contiene(constants.EstadosEquipoPermitidos, estado) {
			return 0, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("El estado '%s' no es un estado de equipo válido.", estado),
				apperrors.ErrBadRequest, nil,
			)
		}
		normalizados[utils.NormalizarIDEquipo(id)] = estado
	}

	master, err := s.equipoRepo.GetEstados(ctx)
	if err != nil {
		return 0, err
	}

	cambios := utils.DiffCambios(master, normalizados)
	if len(cambios) == 0 {
		return 0, nil
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for _, c := range cambios {
			if err := s.equipoRepo.UpdateEstadoTx(ctx, tx, c.ID, c.Valor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("estados de equipos guardados", zap.Int("cambios", len(cambios)))
	return len(cambios), nil
}
