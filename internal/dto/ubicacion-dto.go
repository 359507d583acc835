package dto

type CreateUbicacionDTO struct {
	// El ID lo asigna la institución (número de sala), no es un serial.
	ID          int64   `json:"id" validate:"required,gt=0"`
	Piso        string  `json:"piso" validate:"required"`
	TipoSala    string  `json:"tipo_sala" validate:"required,min=2,max=3"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type UpdateUbicacionDTO struct {
	Piso        *string `json:"piso,omitempty" validate:"omitempty,min=1"`
	TipoSala    *string `json:"tipo_sala,omitempty" validate:"omitempty,min=2,max=3"`
	Descripcion *string `json:"descripcion,omitempty"`
}
