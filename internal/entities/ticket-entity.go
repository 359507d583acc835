package entities

import "time"

// TicketReparacion es un reporte de incidencia sobre un equipo. El estado y
// la prioridad no tienen grafo de transiciones: cualquier valor permitido
// puede seguir a cualquier otro.
type TicketReparacion struct {
	ID                  int64      `json:"id"`
	EquipoID            string     `json:"equipo_id"`
	UsuarioReportaID    *string    `json:"usuario_reporta_id,omitempty"`
	TituloProblema      string     `json:"titulo_problema"`
	DescripcionProblema *string    `json:"descripcion_problema,omitempty"`
	Estado              string     `json:"estado"`
	Prioridad           string     `json:"prioridad"`
	CreatedAt           time.Time  `json:"created_at"`
	FechaCierre         *time.Time `json:"fecha_cierre,omitempty"`
}
