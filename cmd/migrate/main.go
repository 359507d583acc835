package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"soporte-ti/pkg/config"
)

func main() {
	command := flag.String("command", "up", "comando de goose: up, down, status, reset")
	dir := flag.String("dir", "migrations", "directorio de migraciones")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo abrir la conexión: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("no se pudo fijar el dialecto: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	case "reset":
		err = goose.Reset(db, *dir)
	default:
		log.Fatalf("comando desconocido: %s", *command)
	}
	if err != nil {
		log.Fatalf("la migración falló: %v", err)
	}

	log.Printf("migraciones: comando '%s' aplicado", *command)
}
