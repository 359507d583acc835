package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-ti/pkg/service"
	"soporte-ti/pkg/utils"
)

type rolProviderFake struct {
	roles map[string]string
}

func (f *rolProviderFake) GetRolUsuario(_ context.Context, userID string) (string, error) {
	if rol, ok := f.roles[userID]; ok {
		return rol, nil
	}
	return "", assert.AnError
}

func setupAuthTest(t *testing.T) (*echo.Echo, *AuthMiddleware, service.JWTService) {
	t.Helper()

	e := echo.New()
	jwtSvc := service.NewJWTService("clave-de-prueba", time.Minute, time.Hour)
	provider := &rolProviderFake{roles: map[string]string{
		"admin-1":  "administrador",
		"alumno-1": "alumno",
	}}
	mw := NewAuthMiddleware(jwtSvc, provider, zap.NewNop())

	return e, mw, jwtSvc
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func contenidoProtegido(c echo.Context) error {
	return utils.SuccessResponse(c, "contenido", "OK", http.StatusOK)
}

func TestAuthSinToken(t *testing.T) {
	e, mw, _ := setupAuthTest(t)

	rec := doRequest(e, mw.Auth(contenidoProtegido), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRechazaRefreshToken(t *testing.T) {
	e, mw, jwtSvc := setupAuthTest(t)

	_, refresh, err := jwtSvc.GenerateTokens("admin-1", "administrador")
	require.NoError(t, err)

	rec := doRequest(e, mw.Auth(contenidoProtegido), refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolSinRolSuficiente(t *testing.T) {
	e, mw, jwtSvc := setupAuthTest(t)

	access, _, err := jwtSvc.GenerateTokens("alumno-1", "alumno")
	require.NoError(t, err)

	handler := mw.Auth(mw.RequireRol("administrador")(contenidoProtegido))
	rec := doRequest(e, handler, access)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acceso Denegado")
}

func TestRequireRolConAdministrador(t *testing.T) {
	e, mw, jwtSvc := setupAuthTest(t)

	access, _, err := jwtSvc.GenerateTokens("admin-1", "administrador")
	require.NoError(t, err)

	handler := mw.Auth(mw.RequireRol("administrador")(contenidoProtegido))
	rec := doRequest(e, handler, access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contenido")
}

func TestAuthConTokenDejaElUsuarioEnElContexto(t *testing.T) {
	e, mw, jwtSvc := setupAuthTest(t)

	access, _, err := jwtSvc.GenerateTokens("alumno-1", "alumno")
	require.NoError(t, err)

	var userID string
	handler := mw.Auth(func(c echo.Context) error {
		userID, _ = utils.GetUserIDFromCtx(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	rec := doRequest(e, handler, access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alumno-1", userID)
}

func TestRequireRolFalloDelProveedorCierraElAcceso(t *testing.T) {
	e, mw, jwtSvc := setupAuthTest(t)

	access, _, err := jwtSvc.GenerateTokens("desconocido", "administrador")
	require.NoError(t, err)

	handler := mw.Auth(mw.RequireRol("administrador")(contenidoProtegido))
	rec := doRequest(e, handler, access)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
