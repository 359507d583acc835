package entities

type Ubicacion struct {
	ID          int64   `json:"id"`
	Piso        string  `json:"piso"`
	TipoSala    string  `json:"tipo_sala"`
	Descripcion *string `json:"descripcion,omitempty"`
}
