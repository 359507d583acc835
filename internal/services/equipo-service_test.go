package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
	"soporte-ti/pkg/utils"
)

// txManagerFake ejecuta el cuerpo sin base real; la transacción es nil porque
// los repositorios falsos la ignoran.
type txManagerFake struct {
	transacciones int
}

func (f *txManagerFake) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	f.transacciones++
	return fn(nil)
}

type equipoRepoFake struct {
	equipos        map[string]*entities.Equipo
	actualizados   []string
	fallarUpdateEn string
}

func (f *equipoRepoFake) GetEquipos(_ context.Context, _ types.Filter) ([]entities.Equipo, uint64, error) {
	var lista []entities.Equipo
	for _, e := range f.equipos {
		lista = append(lista, *e)
	}
	return lista, uint64(len(lista)), nil
}

func (f *equipoRepoFake) FindEquipo(_ context.Context, id string) (*entities.Equipo, error) {
	if e, ok := f.equipos[id]; ok {
		copia := *e
		return &copia, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *equipoRepoFake) CreateEquipo(_ context.Context, equipo *entities.Equipo) error {
	f.equipos[equipo.ID] = equipo
	return nil
}

func (f *equipoRepoFake) DeleteEquipo(_ context.Context, id string) error {
	if _, ok := f.equipos[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.equipos, id)
	return nil
}

func (f *equipoRepoFake) GetEstados(_ context.Context) (map[string]string, error) {
	estados := make(map[string]string, len(f.equipos))
	for id, e := range f.equipos {
		estados[id] = e.Estado
	}
	return estados, nil
}

func (f *equipoRepoFake) UpdateEstadoTx(_ context.Context, _ pgx.Tx, id string, estado string) error {
	if id == f.fallarUpdateEn {
		return assert.AnError
	}
	f.actualizados = append(f.actualizados, id)
	f.equipos[id].Estado = estado
	return nil
}

type ubicacionRepoFake struct {
	ubicaciones map[int64]*entities.Ubicacion
	conEquipos  map[int64]int64
}

func (f *ubicacionRepoFake) GetUbicaciones(_ context.Context) ([]entities.Ubicacion, error) {
	var lista []entities.Ubicacion
	for _, u := range f.ubicaciones {
		lista = append(lista, *u)
	}
	return lista, nil
}

func (f *ubicacionRepoFake) FindUbicacion(_ context.Context, id int64) (*entities.Ubicacion, error) {
	if u, ok := f.ubicaciones[id]; ok {
		copia := *u
		return &copia, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *ubicacionRepoFake) CreateUbicacion(_ context.Context, u entities.Ubicacion) error {
	f.ubicaciones[u.ID] = &u
	return nil
}

func (f *ubicacionRepoFake) UpdateUbicacion(_ context.Context, id int64, payload dto.UpdateUbicacionDTO) (*entities.Ubicacion, error) {
	u, ok := f.ubicaciones[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Piso != nil {
		u.Piso = *payload.Piso
	}
	if payload.TipoSala != nil {
		u.TipoSala = *payload.TipoSala
	}
	copia := *u
	return &copia, nil
}

func (f *ubicacionRepoFake) DeleteUbicacion(_ context.Context, id int64) error {
	delete(f.ubicaciones, id)
	return nil
}

func (f *ubicacionRepoFake) CountEquiposEnUbicacion(_ context.Context, id int64) (int64, error) {
	return f.conEquipos[id], nil
}

func nuevoEquipoServiceDePrueba() (*equipoRepoFake, *ubicacionRepoFake, *txManagerFake, EquipoServiceInterface) {
	equipoRepo := &equipoRepoFake{equipos: map[string]*entities.Equipo{
		"LAB40801": {ID: "LAB40801", Estado: "Activo", UbicacionID: 408},
		"LAB40805": {ID: "LAB40805", Estado: "Activo", UbicacionID: 408},
		"LAB40832": {ID: "LAB40832", Estado: "En reparación", UbicacionID: 408},
	}}
	ubicacionRepo := &ubicacionRepoFake{
		ubicaciones: map[int64]*entities.Ubicacion{
			408: {ID: 408, Piso: "4", TipoSala: "LAB", Descripcion: utils.ToPtr("Laboratorio 408")},
		},
		conEquipos: map[int64]int64{408: 3},
	}
	txManager := &txManagerFake{}
	svc := NewEquipoService(equipoRepo, ubicacionRepo, txManager, zap.NewNop())
	return equipoRepo, ubicacionRepo, txManager, svc
}

func TestCreateEquipoGeneraElID(t *testing.T) {
	equipoRepo, _, _, svc := nuevoEquipoServiceDePrueba()

	equipo, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{
		UbicacionID:  408,
		NumeroEquipo: "7",
		TipoEquipo:   "PC de escritorio",
		Marca:        "HP",
		Modelo:       "ProDesk 400 G9",
		NumeroSerie:  "SN-HP-408-007",
		Estado:       "Activo",
	})
	require.NoError(t, err)
	assert.Equal(t, "LAB40807", equipo.ID)
	assert.Contains(t, equipoRepo.equipos, "LAB40807")
	require.NotNil(t, equipo.Ubicacion)
	assert.Equal(t, "LAB", equipo.Ubicacion.TipoSala)
}

func TestCreateEquipoSalaInexistente(t *testing.T) {
	_, _, _, svc := nuevoEquipoServiceDePrueba()

	_, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{
		UbicacionID:  999,
		NumeroEquipo: "1",
		TipoEquipo:   "PC",
		Marca:        "HP",
		Modelo:       "X",
		NumeroSerie:  "SN-X",
		Estado:       "Activo",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Message, "no existe")
}

func TestGuardarEstadosAplicaSoloLasDiferencias(t *testing.T) {
	equipoRepo, _, txManager, svc := nuevoEquipoServiceDePrueba()

	cambios, err := svc.GuardarEstados(context.Background(), map[string]string{
		"LAB40801": "Activo",        // sin cambio
		"LAB40805": "En reparación", // cambia
		"lab40832": "Activo",        // cambia, con ID sin normalizar
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cambios)
	assert.ElementsMatch(t, []string{"LAB40805", "LAB40832"}, equipoRepo.actualizados)
	assert.Equal(t, 1, txManager.transacciones)
	assert.Equal(t, "En reparación", equipoRepo.equipos["LAB40805"].Estado)
	assert.Equal(t, "Activo", equipoRepo.equipos["LAB40832"].Estado)
}

func TestGuardarEstadosSinCambiosNoAbreTransaccion(t *testing.T) {
	_, _, txManager, svc := nuevoEquipoServiceDePrueba()

	cambios, err := svc.GuardarEstados(context.Background(), map[string]string{
		"LAB40801": "Activo",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cambios)
	assert.Equal(t, 0, txManager.transacciones)
}

func TestGuardarEstadosRechazaEstadoInvalido(t *testing.T) {
	_, _, txManager, svc := nuevoEquipoServiceDePrueba()

	_, err := svc.GuardarEstados(context.Background(), map[string]string{
		"LAB40801": "Quemado",
	})
	require.Error(t, err)
	assert.Equal(t, 0, txManager.transacciones)
}

func TestDeleteUbicacionConEquiposFalla(t *testing.T) {
	_, ubicacionRepo, _, _ := nuevoEquipoServiceDePrueba()
	svc := NewUbicacionService(ubicacionRepo, zap.NewNop())

	err := svc.DeleteUbicacion(context.Background(), 408)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Message, "equipos asignados")
	assert.Contains(t, ubicacionRepo.ubicaciones, int64(408))
}
