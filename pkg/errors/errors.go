package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT y tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token no válido")
	ErrInvalidToken         = fmt.Errorf("token no válido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")
	ErrTokenIsNotRefresh    = fmt.Errorf("el token no es un refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("el token no es un access token")

	// Autorización
	ErrEmptyAuthHeader    = fmt.Errorf("falta el encabezado de autorización")
	ErrInvalidAuthHeader  = fmt.Errorf("formato del encabezado de autorización no válido")
	ErrInvalidCredentials = fmt.Errorf("credenciales no válidas")
	ErrUnauthorized       = fmt.Errorf("no autenticado")
	ErrForbidden          = fmt.Errorf("acceso denegado")

	// Contexto
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID no encontrado en el contexto de la solicitud")

	// Generales
	ErrNotFound          = fmt.Errorf("registro no encontrado")
	ErrBadRequest        = fmt.Errorf("solicitud no válida")
	ErrStockInsuficiente = fmt.Errorf("el stock no puede quedar por debajo de cero")
)

// HttpError agrupa el código HTTP, el mensaje para el usuario y la causa
// interna (solo para logs).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
