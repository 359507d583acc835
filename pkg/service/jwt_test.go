package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Minute, time.Hour)

	access, refresh, err := svc.GenerateTokens("usuario-1", "administrador")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "usuario-1", claims.UserID)
	assert.Equal(t, "administrador", claims.Rol)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateTokenRechazaOtraClave(t *testing.T) {
	emisor := NewJWTService("clave-a", time.Minute, time.Hour)
	receptor := NewJWTService("clave-b", time.Minute, time.Hour)

	access, _, err := emisor.GenerateTokens("usuario-1", "alumno")
	require.NoError(t, err)

	_, err = receptor.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenExpirado(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", -time.Minute, time.Hour)

	access, _, err := svc.GenerateTokens("usuario-1", "alumno")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenBasura(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Minute, time.Hour)

	_, err := svc.ValidateToken("no-es-un-token")
	assert.Error(t, err)
}
