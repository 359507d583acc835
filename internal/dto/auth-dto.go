package dto

// RegistroDTO llega desde el formulario de registro. Los tres campos son
// obligatorios; la presencia se verifica a mano en el controlador para
// devolver los mensajes exactos que espera el frontend.
type RegistroDTO struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	NombreCompleto string `json:"nombre_completo"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokensDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
