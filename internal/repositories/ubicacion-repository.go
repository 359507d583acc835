package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	apperrors "soporte-ti/pkg/errors"
)

const ubicacionTable = "ubicaciones"

type UbicacionRepositoryInterface interface {
	GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error)
	FindUbicacion(ctx context.Context, id int64) (*entities.Ubicacion, error)
	CreateUbicacion(ctx context.Context, u entities.Ubicacion) error
	UpdateUbicacion(ctx context.Context, id int64, payload dto.UpdateUbicacionDTO) (*entities.Ubicacion, error)
	DeleteUbicacion(ctx context.Context, id int64) error
	CountEquiposEnUbicacion(ctx context.Context, id int64) (int64, error)
}

type UbicacionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUbicacionRepository(storage *pgxpool.Pool, logger *zap.Logger) UbicacionRepositoryInterface {
	return &UbicacionRepository{storage: storage, logger: logger}
}

func scanUbicacion(row pgx.Row) (*entities.Ubicacion, error) {
	var u entities.Ubicacion
	var descripcion sql.NullString

	err := row.Scan(&u.ID, &u.Piso, &u.TipoSala, &descripcion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al escanear ubicación: %w", err)
	}

	if descripcion.Valid {
		u.Descripcion = &descripcion.String
	}
	return &u, nil
}

func (r *UbicacionRepository) GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error) {
	query := fmt.Sprintf("SELECT id, piso, tipo_sala, descripcion FROM %s ORDER BY id", ubicacionTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ubicaciones := make([]entities.Ubicacion, 0)
	for rows.Next() {
		u, err := scanUbicacion(rows)
		if err != nil {
			return nil, err
		}
		ubicaciones = append(ubicaciones, *u)
	}
	return ubicaciones, rows.Err()
}

func (r *UbicacionRepository) FindUbicacion(ctx context.Context, id int64) (*entities.Ubicacion, error) {
	query := fmt.Sprintf("SELECT id, piso, tipo_sala, descripcion FROM %s WHERE id = $1", ubicacionTable)
	return scanUbicacion(r.storage.QueryRow(ctx, query, id))
}

func (r *UbicacionRepository) CreateUbicacion(ctx context.Context, u entities.Ubicacion) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, piso, tipo_sala, descripcion)
		VALUES ($1, $2, $3, $4)
	`, ubicacionTable)

	_, err := r.storage.Exec(ctx, query, u.ID, u.Piso, u.TipoSala, u.Descripcion)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("La sala %d ya existe.", u.ID), err, nil)
		}
		return err
	}
	return nil
}

func (r *UbicacionRepository) UpdateUbicacion(ctx context.Context, id int64, payload dto.UpdateUbicacionDTO) (*entities.Ubicacion, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET piso = COALESCE($1, piso),
		    tipo_sala = COALESCE($2, tipo_sala),
		    descripcion = COALESCE($3, descripcion)
		WHERE id = $4
		RETURNING id, piso, tipo_sala, descripcion
	`, ubicacionTable)

	return scanUbicacion(r.storage.QueryRow(ctx, query,
		payload.Piso, payload.TipoSala, payload.Descripcion, id))
}

func (r *UbicacionRepository) DeleteUbicacion(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", ubicacionTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UbicacionRepository) CountEquiposEnUbicacion(ctx context.Context, id int64) (int64, error) {
	var total int64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM equipos WHERE ubicacion_id = $1", id).Scan(&total)
	return total, err
}
