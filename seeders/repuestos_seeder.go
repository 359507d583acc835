package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repuestoInicial struct {
	Nombre        string
	SKU           string
	CantidadStock int
	StockMinimo   int
}

var repuestosIniciales = []repuestoInicial{
	{"Memoria RAM DDR4 8GB", "RAM-DDR4-8G", 12, 4},
	{"Disco SSD 480GB", "SSD-480", 8, 2},
	{"Fuente ATX 500W", "PSU-500", 5, 2},
	{"Teclado USB", "KB-USB", 20, 5},
	{"Lámpara de proyector Epson", "LAMP-EP-X49", 2, 1},
}

func seedRepuestos(ctx context.Context, db *pgxpool.Pool) error {
	for _, r := range repuestosIniciales {
		_, err := db.Exec(ctx, `
			INSERT INTO repuestos (nombre, sku, cantidad_stock, stock_minimo)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (sku) DO NOTHING
		`, r.Nombre, r.SKU, r.CantidadStock, r.StockMinimo)
		if err != nil {
			return err
		}
	}
	return nil
}
