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

type RepuestoServiceInterface interface {
	GetRepuestos(ctx context.Context) ([]entities.Repuesto, error)
	CreateRepuesto(ctx context.Context, payload dto.CreateRepuestoDTO) (*entities.Repuesto, error)
	AjustarStock(ctx context.Context, id int64, cantidad int) (*dto.StockResultadoDTO, error)
}

type RepuestoService struct {
	repuestoRepo repositories.RepuestoRepositoryInterface
	logger       *zap.Logger
}

func NewRepuestoService(repuestoRepo repositories.RepuestoRepositoryInterface, logger *zap.Logger) RepuestoServiceInterface {
	return &RepuestoService{repuestoRepo: repuestoRepo, logger: logger}
}

func (s *RepuestoService) GetRepuestos(ctx context.Context) ([]entities.Repuesto, error) {
	return s.repuestoRepo.GetRepuestos(ctx)
}

func (s *RepuestoService) CreateRepuesto(ctx context.Context, payload dto.CreateRepuestoDTO) (*entities.Repuesto, error) {
	repuesto := &entities.Repuesto{
		Nombre:        strings.TrimSpace(payload.Nombre),
		Descripcion:   payload.Descripcion,
		SKU:           strings.ToUpper(strings.TrimSpace(payload.SKU)),
		CantidadStock: payload.CantidadStock,
		StockMinimo:   payload.StockMinimo,
	}

	if err := s.repuestoRepo.CreateRepuesto(ctx, repuesto); err != nil {
		return nil, err
	}
	return repuesto, nil
}

// AjustarStock aplica un delta con signo. Si el resultado quedaría negativo no
// se toca la fila: el chequeo previo corta el caso común y la condición del
// UPDATE cubre la carrera con otro ajuste concurrente.
func (s *RepuestoService) AjustarStock(ctx context.Context, id int64, cantidad int) (*dto.StockResultadoDTO, error) {
	repuesto, err := s.repuestoRepo.FindRepuesto(ctx, id)
	if err != nil {
		return nil, err
	}

	if repuesto.CantidadStock+cantidad < 0 {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("Stock insuficiente: quedan %d unidades de '%s'.", repuesto.CantidadStock, repuesto.Nombre),
			apperrors.ErrStockInsuficiente, nil,
		)
	}

	nuevoStock, err := s.repuestoRepo.AjustarStock(ctx, id, cantidad)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock ajustado",
		zap.Int64("repuesto_id", id),
		zap.Int("cantidad", cantidad),
		zap.Int("stock", nuevoStock),
	)
	return &dto.StockResultadoDTO{ID: id, CantidadStock: nuevoStock}, nil
}
