package constants

// Roles permitidos en la tabla usuarios. Cualquier otro valor es rechazado
// por la validación y por el CHECK de la base.
const (
	RolAdministrador = "administrador"
	RolTecnico       = "tecnico"
	RolCoordinador   = "coordinador"
	RolAlumno        = "alumno"
)

var RolesPermitidos = []string{RolAdministrador, RolTecnico, RolCoordinador, RolAlumno}

// Estados de un equipo.
const (
	EquipoActivo       = "Activo"
	EquipoEnReparacion = "En reparación"
	EquipoDadoDeBaja   = "Dado de baja"
)

var EstadosEquipoPermitidos = []string{EquipoActivo, EquipoEnReparacion, EquipoDadoDeBaja}

// Estados de un ticket de reparación. No hay grafo de transiciones: cualquier
// estado puede seguir a cualquier otro.
const (
	TicketAbierto           = "Abierto"
	TicketEnDiagnostico     = "En diagnóstico"
	TicketEsperandoRepuesto = "Esperando repuesto"
	TicketResuelto          = "Resuelto"
	TicketCerrado           = "Cerrado"
)

var EstadosTicketPermitidos = []string{
	TicketAbierto, TicketEnDiagnostico, TicketEsperandoRepuesto, TicketResuelto, TicketCerrado,
}

// Prioridades de un ticket.
const (
	PrioridadBaja    = "Baja"
	PrioridadMedia   = "Media"
	PrioridadAlta    = "Alta"
	PrioridadUrgente = "Urgente"
)

var PrioridadesPermitidas = []string{PrioridadBaja, PrioridadMedia, PrioridadAlta, PrioridadUrgente}

func Contiene(lista []string, valor string) bool {
	for _, v := range lista {
		if v == valor {
			return true
		}
	}
	return false
}
