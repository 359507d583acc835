package utils

import (
	"fmt"
	"strings"

	apperrors "soporte-ti/pkg/errors"
)

// El ID de equipo es un código de 8 caracteres: tipo de sala (3 letras) +
// id de la sala (3 dígitos) + número de equipo (2 dígitos), p.ej. "LAB40805".
const LargoIDEquipo = 8

// GenerarIDEquipo arma el código a partir de la sala seleccionada y el número
// de equipo ingresado por el técnico. El número se rellena a dos dígitos y el
// resultado se devuelve en mayúsculas.
func GenerarIDEquipo(tipoSala string, ubicacionID int64, numeroEquipo string) (string, error) {
	tipoSala = strings.TrimSpace(tipoSala)
	numeroEquipo = strings.TrimSpace(numeroEquipo)
	if tipoSala == "" || numeroEquipo == "" {
		return "", apperrors.NewInvalidInputError("faltan datos para generar el ID (revisa la sala y el número)")
	}

	if len(numeroEquipo) < 2 {
		numeroEquipo = strings.Repeat("0", 2-len(numeroEquipo)) + numeroEquipo
	}

	return strings.ToUpper(fmt.Sprintf("%s%d%s", tipoSala, ubicacionID, numeroEquipo)), nil
}

// ParteIDEquipo es el resultado de descomponer un código por offsets fijos.
type ParteIDEquipo struct {
	TipoSala     string
	UbicacionID  string
	NumeroEquipo string
}

func ParsearIDEquipo(id string) (ParteIDEquipo, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) != LargoIDEquipo {
		return ParteIDEquipo{}, apperrors.NewInvalidInputError("el ID de equipo %q no tiene %d caracteres", id, LargoIDEquipo)
	}
	return ParteIDEquipo{
		TipoSala:     id[0:3],
		UbicacionID:  id[3:6],
		NumeroEquipo: id[6:8],
	}, nil
}

// NormalizarIDEquipo limpia el parámetro tal como llega por la URL.
func NormalizarIDEquipo(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
