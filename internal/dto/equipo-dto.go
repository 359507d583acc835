package dto

// CreateEquipoDTO crea un equipo nuevo. El ID no viene del cliente: se genera
// con la sala y el número de equipo.
type CreateEquipoDTO struct {
	UbicacionID  int64  `json:"ubicacion_id" validate:"required,gt=0"`
	NumeroEquipo string `json:"numero_equipo" validate:"required,max=2"`
	TipoEquipo   string `json:"tipo_equipo" validate:"required"`
	Marca        string `json:"marca" validate:"required"`
	Modelo       string `json:"modelo" validate:"required"`
	NumeroSerie  string `json:"numero_serie" validate:"required"`
	Estado       string `json:"estado" validate:"required,estado_equipo"`
}

// CambiosEstadoEquipoDTO es el lote "editar y guardar" de la pantalla de
// gestión de equipos: mapa de ID de equipo a estado editado.
type CambiosEstadoEquipoDTO struct {
	Cambios map[string]string `json:"cambios" validate:"required"`
}
