package dto

type UsuarioDTO struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Rol            string `json:"rol"`
	CreatedAt      string `json:"created_at"`
}

// UpdateRolDTO es el cuerpo del endpoint elevado que cambia el rol de otro
// usuario. La presencia de ambos campos se verifica a mano en el controlador
// para conservar el mensaje exacto.
type UpdateRolDTO struct {
	UserID string `json:"userId"`
	NewRol string `json:"newRol"`
}
