package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarIDEquipo(t *testing.T) {
	id, err := GenerarIDEquipo("LAB", 408, "5")
	require.NoError(t, err)
	assert.Equal(t, "LAB40805", id)

	id, err = GenerarIDEquipo("lab", 408, "32")
	require.NoError(t, err)
	assert.Equal(t, "LAB40832", id)

	// Recorta espacios y rellena el número a dos dígitos.
	id, err = GenerarIDEquipo(" lab ", 408, " 7 ")
	require.NoError(t, err)
	assert.Equal(t, "LAB40807", id)
}

func TestGenerarIDEquipoInvalido(t *testing.T) {
	_, err := GenerarIDEquipo("", 408, "5")
	assert.Error(t, err)

	_, err = GenerarIDEquipo("LAB", 408, "  ")
	assert.Error(t, err)
}

func TestParsearIDEquipo(t *testing.T) {
	partes, err := ParsearIDEquipo("lab40805")
	require.NoError(t, err)
	assert.Equal(t, "LAB", partes.TipoSala)
	assert.Equal(t, "408", partes.UbicacionID)
	assert.Equal(t, "05", partes.NumeroEquipo)

	_, err = ParsearIDEquipo("LAB408")
	assert.Error(t, err)
}

func TestNormalizarIDEquipo(t *testing.T) {
	assert.Equal(t, "LAB40805", NormalizarIDEquipo("  lab40805 "))
}
