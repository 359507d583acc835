package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"soporte-ti/internal/entities"
	"soporte-ti/pkg/utils"
)

var ubicacionesIniciales = []entities.Ubicacion{
	{ID: 408, Piso: "4", TipoSala: "LAB", Descripcion: utils.ToPtr("Laboratorio de cómputo 408")},
	{ID: 409, Piso: "4", TipoSala: "LAB", Descripcion: utils.ToPtr("Laboratorio de cómputo 409")},
	{ID: 201, Piso: "2", TipoSala: "AUL", Descripcion: utils.ToPtr("Aula teórica 201")},
	{ID: 101, Piso: "1", TipoSala: "OFI", Descripcion: utils.ToPtr("Oficina de coordinación")},
}

func seedUbicaciones(ctx context.Context, db *pgxpool.Pool) error {
	for _, u := range ubicacionesIniciales {
		_, err := db.Exec(ctx, `
			INSERT INTO ubicaciones (id, piso, tipo_sala, descripcion)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, u.ID, u.Piso, u.TipoSala, u.Descripcion)
		if err != nil {
			return err
		}
	}
	return nil
}
