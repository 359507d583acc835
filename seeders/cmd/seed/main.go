package main

import (
	"context"
	"flag"
	"log"

	"soporte-ti/pkg/config"
	"soporte-ti/pkg/database/postgresql"
	"soporte-ti/seeders"
)

func main() {
	runBase := flag.Bool("base", false, "Cargar salas, equipos y repuestos de ejemplo")
	runAdmin := flag.Bool("admin", false, "Crear el administrador inicial (ADMIN_EMAIL / ADMIN_PASSWORD)")
	runAll := flag.Bool("all", false, "Ejecutar todos los seeders")
	flag.Parse()

	if !*runBase && !*runAdmin && !*runAll {
		log.Println("Ningún seeder seleccionado.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base: %v", err)
	}
	defer dbPool.Close()

	if *runBase || *runAll {
		seeders.SeedBase(dbPool)
	}
	if *runAdmin || *runAll {
		seeders.SeedAdmin(dbPool)
	}
}
