package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-ti/internal/entities"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
)

type usuarioRepoFake struct {
	usuarios map[string]*entities.Usuario
}

func (f *usuarioRepoFake) GetUsuarios(_ context.Context, _ types.Filter) ([]entities.Usuario, uint64, error) {
	var lista []entities.Usuario
	for _, u := range f.usuarios {
		lista = append(lista, *u)
	}
	return lista, uint64(len(lista)), nil
}

func (f *usuarioRepoFake) FindUsuario(_ context.Context, id string) (*entities.Usuario, error) {
	if u, ok := f.usuarios[id]; ok {
		copia := *u
		return &copia, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *usuarioRepoFake) FindUsuarioByEmail(_ context.Context, email string) (*entities.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *usuarioRepoFake) CreateUsuario(_ context.Context, usuario *entities.Usuario) error {
	f.usuarios[usuario.ID] = usuario
	return nil
}

func (f *usuarioRepoFake) UpdateRol(_ context.Context, id string, rol string) error {
	u, ok := f.usuarios[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Rol = rol
	return nil
}

type cacheFake struct {
	valores   map[string]string
	borradas  []string
	guardadas []string
}

func (f *cacheFake) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.valores == nil {
		f.valores = map[string]string{}
	}
	f.valores[key] = value.(string)
	f.guardadas = append(f.guardadas, key)
	return nil
}

func (f *cacheFake) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.valores[key]; ok {
		return v, nil
	}
	return "", assert.AnError
}

func (f *cacheFake) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.valores, k)
		f.borradas = append(f.borradas, k)
	}
	return nil
}

func nuevoUsuarioServiceDePrueba() (*usuarioRepoFake, *cacheFake, UsuarioServiceInterface, RolServiceInterface) {
	repo := &usuarioRepoFake{usuarios: map[string]*entities.Usuario{
		"u-1": {ID: "u-1", NombreCompleto: "Ana Soto", Email: "ana@instituto.edu", Rol: "alumno"},
	}}
	cache := &cacheFake{}
	rolSvc := NewRolService(repo, cache, time.Minute, zap.NewNop())
	usuarioSvc := NewUsuarioService(repo, rolSvc, zap.NewNop())
	return repo, cache, usuarioSvc, rolSvc
}

func TestUpdateRolCambiaElRolEInvalidaElCache(t *testing.T) {
	repo, cache, usuarioSvc, rolSvc := nuevoUsuarioServiceDePrueba()

	// Calienta el cache primero.
	rol, err := rolSvc.GetRolUsuario(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alumno", rol)

	mensaje, err := usuarioSvc.UpdateRol(context.Background(), "u-1", "tecnico")
	require.NoError(t, err)
	assert.Equal(t, "Rol de usuario actualizado a tecnico", mensaje)
	assert.Equal(t, "tecnico", repo.usuarios["u-1"].Rol)
	assert.NotEmpty(t, cache.borradas)

	rol, err = rolSvc.GetRolUsuario(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "tecnico", rol)
}

func TestUpdateRolRechazaRolDesconocido(t *testing.T) {
	repo, _, usuarioSvc, _ := nuevoUsuarioServiceDePrueba()

	_, err := usuarioSvc.UpdateRol(context.Background(), "u-1", "superusuario")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Message, "no es un rol válido")
	assert.Equal(t, "alumno", repo.usuarios["u-1"].Rol)
}

func TestUpdateRolUsuarioInexistente(t *testing.T) {
	_, _, usuarioSvc, _ := nuevoUsuarioServiceDePrueba()

	_, err := usuarioSvc.UpdateRol(context.Background(), "no-existe", "tecnico")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetRolUsuarioUsaElCache(t *testing.T) {
	repo, cache, _, rolSvc := nuevoUsuarioServiceDePrueba()

	_, err := rolSvc.GetRolUsuario(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, cache.guardadas, 1)

	// El cambio directo en la base no se ve hasta invalidar o expirar.
	repo.usuarios["u-1"].Rol = "coordinador"
	rol, err := rolSvc.GetRolUsuario(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alumno", rol)
}
