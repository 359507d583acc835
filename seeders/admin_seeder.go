package seeders

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"soporte-ti/pkg/constants"
	"soporte-ti/pkg/utils"
)

// seedAdministrador crea el primer administrador. Las credenciales salen del
// entorno para no dejar contraseñas en el código.
func seedAdministrador(ctx context.Context, db *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL o ADMIN_PASSWORD no definidos; se omite el administrador")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO usuarios (id, nombre_completo, email, password_hash, rol)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, uuid.NewString(), "Administrador de Soporte", email, hash, constants.RolAdministrador)
	return err
}
