package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"soporte-ti/internal/entities"
	"soporte-ti/internal/infrastructure/bd"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
)

const equipoTable = "equipos"
const equipoSelectFields = "e.id, e.tipo_equipo, e.marca, e.modelo, e.numero_serie, e.estado, e.ubicacion_id, e.created_at, e.updated_at"

var equipoFieldMap = map[string]string{
	"estado":       "e.estado",
	"tipo_equipo":  "e.tipo_equipo",
	"ubicacion_id": "e.ubicacion_id",
	"id":           "e.id",
	"created_at":   "e.created_at",
}

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error)
	FindEquipo(ctx context.Context, id string) (*entities.Equipo, error)
	CreateEquipo(ctx context.Context, equipo *entities.Equipo) error
	DeleteEquipo(ctx context.Context, id string) error
	GetEstados(ctx context.Context) (map[string]string, error)
	UpdateEstadoTx(ctx context.Context, tx pgx.Tx, id string, estado string) error
}

type EquipoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipoRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipoRepositoryInterface {
	return &EquipoRepository{storage: storage, logger: logger}
}

func scanEquipo(row pgx.Row) (*entities.Equipo, error) {
	var e entities.Equipo
	var u entities.Ubicacion

	err := row.Scan(
		&e.ID, &e.TipoEquipo, &e.Marca, &e.Modelo, &e.NumeroSerie, &e.Estado,
		&e.UbicacionID, &e.CreatedAt, &e.UpdatedAt,
		&u.ID, &u.Piso, &u.TipoSala,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al escanear equipo: %w", err)
	}

	if u.ID > 0 {
		e.Ubicacion = &u
	}
	return &e, nil
}

func (r *EquipoRepository) GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.id": pat},
				sq.ILike{"e.numero_serie": pat},
				sq.ILike{"e.modelo": pat},
			})
		}
		return b
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := applySearch(psql.Select("COUNT(e.id)").From(equipoTable + " AS e"))
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, equipoFieldMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipo{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"e.id", "e.tipo_equipo", "e.marca", "e.modelo", "e.numero_serie", "e.estado",
		"e.ubicacion_id", "e.created_at", "e.updated_at",
		"COALESCE(u.id, 0)", "COALESCE(u.piso, '')", "COALESCE(u.tipo_sala, '')",
	).From(equipoTable + " AS e").LeftJoin("ubicaciones u ON e.ubicacion_id = u.id"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.id ASC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, equipoFieldMap)

	sqlStr, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipos := make([]entities.Equipo, 0)
	for rows.Next() {
		e, err := scanEquipo(rows)
		if err != nil {
			return nil, 0, err
		}
		equipos = append(equipos, *e)
	}
	return equipos, total, rows.Err()
}

func (r *EquipoRepository) FindEquipo(ctx context.Context, id string) (*entities.Equipo, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(u.id, 0), COALESCE(u.piso, ''), COALESCE(u.tipo_sala, '')
		FROM %s e
			LEFT JOIN ubicaciones u ON e.ubicacion_id = u.id
		WHERE e.id = $1
	`, equipoSelectFields, equipoTable)

	return scanEquipo(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipoRepository) CreateEquipo(ctx context.Context, equipo *entities.Equipo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, tipo_equipo, marca, modelo, numero_serie, estado, ubicacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, equipoTable)

	err := r.storage.QueryRow(ctx, query,
		equipo.ID, equipo.TipoEquipo, equipo.Marca, equipo.Modelo,
		equipo.NumeroSerie, equipo.Estado, equipo.UbicacionID,
	).Scan(&equipo.CreatedAt, &equipo.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("El ID de equipo '%s' o el N° de Serie ya existen.", equipo.ID), err, nil)
		}
		return err
	}
	return nil
}

func (r *EquipoRepository) DeleteEquipo(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipoTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetEstados devuelve la "lista maestra" id → estado para el diff del lote.
func (r *EquipoRepository) GetEstados(ctx context.Context) (map[string]string, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, estado FROM %s", equipoTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estados := make(map[string]string)
	for rows.Next() {
		var id, estado string
		if err := rows.Scan(&id, &estado); err != nil {
			return nil, err
		}
		estados[id] = estado
	}
	return estados, rows.Err()
}

func (r *EquipoRepository) UpdateEstadoTx(ctx context.Context, tx pgx.Tx, id string, estado string) error {
	query := fmt.Sprintf("UPDATE %s SET estado = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", equipoTable)

	result, err := tx.Exec(ctx, query, estado, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
