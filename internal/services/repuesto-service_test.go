package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	apperrors "soporte-ti/pkg/errors"
)

type repuestoRepoFake struct {
	repuestos      map[int64]*entities.Repuesto
	ajustesHechos  int
	ultimoAjusteID int64
}

func (f *repuestoRepoFake) GetRepuestos(_ context.Context) ([]entities.Repuesto, error) {
	var lista []entities.Repuesto
	for _, r := range f.repuestos {
		lista = append(lista, *r)
	}
	return lista, nil
}

func (f *repuestoRepoFake) FindRepuesto(_ context.Context, id int64) (*entities.Repuesto, error) {
	if r, ok := f.repuestos[id]; ok {
		copia := *r
		return &copia, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *repuestoRepoFake) CreateRepuesto(_ context.Context, repuesto *entities.Repuesto) error {
	repuesto.ID = int64(len(f.repuestos) + 1)
	f.repuestos[repuesto.ID] = repuesto
	return nil
}

func (f *repuestoRepoFake) AjustarStock(_ context.Context, id int64, cantidad int) (int, error) {
	f.ajustesHechos++
	f.ultimoAjusteID = id
	r, ok := f.repuestos[id]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	if r.CantidadStock+cantidad < 0 {
		return 0, apperrors.ErrStockInsuficiente
	}
	r.CantidadStock += cantidad
	return r.CantidadStock, nil
}

func nuevoRepuestoServiceDePrueba(stock int) (*repuestoRepoFake, RepuestoServiceInterface) {
	repo := &repuestoRepoFake{repuestos: map[int64]*entities.Repuesto{
		7: {ID: 7, Nombre: "Memoria RAM DDR4 8GB", SKU: "RAM-DDR4-8G", CantidadStock: stock, StockMinimo: 2},
	}}
	return repo, NewRepuestoService(repo, zap.NewNop())
}

func TestAjustarStockRechazaSaldoNegativoSinTocarLaBase(t *testing.T) {
	repo, svc := nuevoRepuestoServiceDePrueba(1)

	_, err := svc.AjustarStock(context.Background(), 7, -2)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// El guard corta antes de llegar al repositorio.
	assert.Equal(t, 0, repo.ajustesHechos)
	assert.Equal(t, 1, repo.repuestos[7].CantidadStock)
}

func TestAjustarStockDescuentaYDevuelveElSaldo(t *testing.T) {
	repo, svc := nuevoRepuestoServiceDePrueba(5)

	resultado, err := svc.AjustarStock(context.Background(), 7, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resultado.ID)
	assert.Equal(t, 2, resultado.CantidadStock)
	assert.Equal(t, 1, repo.ajustesHechos)
}

func TestAjustarStockRepuestoInexistente(t *testing.T) {
	_, svc := nuevoRepuestoServiceDePrueba(5)

	_, err := svc.AjustarStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateRepuestoNormalizaElSKU(t *testing.T) {
	repo, svc := nuevoRepuestoServiceDePrueba(0)

	creado, err := svc.CreateRepuesto(context.Background(), dto.CreateRepuestoDTO{
		Nombre:        "  Disco SSD 480GB ",
		SKU:           " ssd-480 ",
		CantidadStock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Disco SSD 480GB", creado.Nombre)
	assert.Equal(t, "SSD-480", creado.SKU)
	assert.Contains(t, repo.repuestos, creado.ID)
}
