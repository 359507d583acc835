package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"soporte-ti/pkg/constants"
)

type equipoInicial struct {
	ID          string
	TipoEquipo  string
	Marca       string
	Modelo      string
	NumeroSerie string
	Estado      string
	UbicacionID int64
}

var equiposIniciales = []equipoInicial{
	{"LAB40801", "PC de escritorio", "HP", "ProDesk 400 G9", "SN-HP-408-001", constants.EquipoActivo, 408},
	{"LAB40802", "PC de escritorio", "HP", "ProDesk 400 G9", "SN-HP-408-002", constants.EquipoActivo, 408},
	{"LAB40805", "PC de escritorio", "HP", "ProDesk 400 G9", "SN-HP-408-005", constants.EquipoActivo, 408},
	{"LAB40901", "PC de escritorio", "Dell", "OptiPlex 7010", "SN-DL-409-001", constants.EquipoActivo, 409},
	{"AUL20101", "Proyector", "Epson", "PowerLite X49", "SN-EP-201-001", constants.EquipoActivo, 201},
	{"OFI10101", "Impresora", "Brother", "HL-L2370DW", "SN-BR-101-001", constants.EquipoEnReparacion, 101},
}

func seedEquipos(ctx context.Context, db *pgxpool.Pool) error {
	for _, e := range equiposIniciales {
		_, err := db.Exec(ctx, `
			INSERT INTO equipos (id, tipo_equipo, marca, modelo, numero_serie, estado, ubicacion_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, e.ID, e.TipoEquipo, e.Marca, e.Modelo, e.NumeroSerie, e.Estado, e.UbicacionID)
		if err != nil {
			return err
		}
	}
	return nil
}
