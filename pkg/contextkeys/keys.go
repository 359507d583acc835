package contextkeys

type contextKey string

const (
	UserIDKey contextKey = "UserID"
	RolKey    contextKey = "Rol"
)
