package entities

import "time"

// Usuario es el perfil almacenado en la tabla usuarios. La contraseña vive
// solo como hash y nunca se serializa.
type Usuario struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Rol            string    `json:"rol"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
