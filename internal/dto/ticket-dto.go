package dto

// ReporteDTO es el cuerpo crudo del endpoint público de reportes. Conserva
// los nombres de campo del formulario original; ningún campo individual es
// obligatorio aquí — si la fila no es válida la rechaza la base y el error se
// devuelve tal cual.
type ReporteDTO struct {
	PcID        string  `json:"pcId"`
	TipoProblem string  `json:"tipoProblema"`
	Descripcion *string `json:"descripcion"`
	Fecha       *string `json:"fecha"`
	Estado      *string `json:"estado"`
}

// CambioTicketDTO son los campos editables de un ticket en la pantalla de
// triaje. Ambos son opcionales; solo se actualiza lo que difiere del valor
// maestro.
type CambioTicketDTO struct {
	Estado    *string `json:"estado,omitempty" validate:"omitempty,estado_ticket"`
	Prioridad *string `json:"prioridad,omitempty" validate:"omitempty,prioridad"`
}

type CambiosTicketDTO struct {
	Cambios map[int64]CambioTicketDTO `json:"cambios" validate:"required"`
}
