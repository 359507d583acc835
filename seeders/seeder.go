package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedBase carga salas, equipos y repuestos de ejemplo.
func SeedBase(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Cargando datos base...")

	if err := seedUbicaciones(ctx, db); err != nil {
		log.Fatalf("error cargando salas: %v", err)
	}
	if err := seedEquipos(ctx, db); err != nil {
		log.Fatalf("error cargando equipos: %v", err)
	}
	if err := seedRepuestos(ctx, db); err != nil {
		log.Fatalf("error cargando repuestos: %v", err)
	}

	log.Println("✔ Datos base cargados.")
}

// SeedAdmin crea el usuario administrador inicial si no existe.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Creando administrador inicial...")

	if err := seedAdministrador(ctx, db); err != nil {
		log.Fatalf("error creando administrador: %v", err)
	}

	log.Println("✔ Administrador listo.")
}
