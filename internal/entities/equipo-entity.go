package entities

import "time"

// Equipo es una máquina etiquetada con el código de 8 caracteres
// (p.ej. "LAB40805"). El ID es inmutable una vez generado.
type Equipo struct {
	ID          string    `json:"id"`
	TipoEquipo  string    `json:"tipo_equipo"`
	Marca       string    `json:"marca"`
	Modelo      string    `json:"modelo"`
	NumeroSerie string    `json:"numero_serie"`
	Estado      string    `json:"estado"`
	UbicacionID int64     `json:"ubicacion_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Datos de la sala cuando el listado hace join.
	Ubicacion *Ubicacion `json:"ubicacion,omitempty" db:"-"`
}
