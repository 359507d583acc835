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

	"soporte-ti/internal/entities"
	apperrors "soporte-ti/pkg/errors"
)

const repuestoTable = "repuestos"
const repuestoSelectFields = "id, nombre, descripcion, sku, cantidad_stock, stock_minimo, created_at"

type RepuestoRepositoryInterface interface {
	GetRepuestos(ctx context.Context) ([]entities.Repuesto, error)
	FindRepuesto(ctx context.Context, id int64) (*entities.Repuesto, error)
	CreateRepuesto(ctx context.Context, repuesto *entities.Repuesto) error
	AjustarStock(ctx context.Context, id int64, cantidad int) (int, error)
}

type RepuestoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRepuestoRepository(storage *pgxpool.Pool, logger *zap.Logger) RepuestoRepositoryInterface {
	return &RepuestoRepository{storage: storage, logger: logger}
}

func scanRepuesto(row pgx.Row) (*entities.Repuesto, error) {
	var r entities.Repuesto
	var descripcion sql.NullString

	err := row.Scan(&r.ID, &r.Nombre, &descripcion, &r.SKU, &r.CantidadStock, &r.StockMinimo, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al escanear repuesto: %w", err)
	}
	if descripcion.Valid {
		r.Descripcion = &descripcion.String
	}
	return &r, nil
}

func (r *RepuestoRepository) GetRepuestos(ctx context.Context) ([]entities.Repuesto, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY nombre ASC", repuestoSelectFields, repuestoTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repuestos := make([]entities.Repuesto, 0)
	for rows.Next() {
		rep, err := scanRepuesto(rows)
		if err != nil {
			return nil, err
		}
		repuestos = append(repuestos, *rep)
	}
	return repuestos, rows.Err()
}

func (r *RepuestoRepository) FindRepuesto(ctx context.Context, id int64) (*entities.Repuesto, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", repuestoSelectFields, repuestoTable)
	return scanRepuesto(r.storage.QueryRow(ctx, query, id))
}

func (r *RepuestoRepository) CreateRepuesto(ctx context.Context, repuesto *entities.Repuesto) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (nombre, descripcion, sku, cantidad_stock, stock_minimo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, repuestoTable)

	err := r.storage.QueryRow(ctx, query,
		repuesto.Nombre, repuesto.Descripcion, repuesto.SKU,
		repuesto.CantidadStock, repuesto.StockMinimo,
	).Scan(&repuesto.ID, &repuesto.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("El SKU '%s' ya existe.", repuesto.SKU),
			err, nil,
		)
	}
	return err
}

// AjustarStock aplica el delta en el servidor y devuelve el stock resultante.
// La condición cantidad_stock + $2 >= 0 evita dejar stock negativo aun con
// ajustes concurrentes.
func (r *RepuestoRepository) AjustarStock(ctx context.Context, id int64, cantidad int) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET cantidad_stock = cantidad_stock + $2
		WHERE id = $1 AND cantidad_stock + $2 >= 0
		RETURNING cantidad_stock
	`, repuestoTable)

	var nuevoStock int
	err := r.storage.QueryRow(ctx, query, id, cantidad).Scan(&nuevoStock)
	if errors.Is(err, pgx.ErrNoRows) {
		// O el repuesto no existe, o el ajuste dejaría stock negativo.
		if _, findErr := r.FindRepuesto(ctx, id); findErr != nil {
			return 0, findErr
		}
		return 0, apperrors.ErrStockInsuficiente
	}
	if err != nil {
		return 0, err
	}
	return nuevoStock, nil
}
