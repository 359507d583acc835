// Archivo: pkg/customvalidator/validator.go
package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"soporte-ti/pkg/constants"
)

// RegisterCustomValidations registra las reglas propias del dominio en el
// validador compartido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("estado_equipo", esEstadoEquipoPermitido); err != nil {
		return err
	}
	if err := v.RegisterValidation("estado_ticket", esEstadoTicketPermitido); err != nil {
		return err
	}
	if err := v.RegisterValidation("prioridad", esPrioridadPermitida); err != nil {
		return err
	}
	return nil
}

func esEstadoEquipoPermitido(fl validator.FieldLevel) bool {
	return constants.Contiene(constants.EstadosEquipoPermitidos, fl.Field().String())
}

func esEstadoTicketPermitido(fl validator.FieldLevel) bool {
	return constants.Contiene(constants.EstadosTicketPermitidos, fl.Field().String())
}

func esPrioridadPermitida(fl validator.FieldLevel) bool {
	return constants.Contiene(constants.PrioridadesPermitidas, fl.Field().String())
}
