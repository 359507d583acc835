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

const usuarioTable = "usuarios"
const usuarioSelectFields = "u.id, u.nombre_completo, u.email, u.password_hash, u.rol, u.created_at, u.updated_at"

var usuarioFieldMap = map[string]string{
	"rol":        "u.rol",
	"email":      "u.email",
	"created_at": "u.created_at",
}

type UsuarioRepositoryInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error)
	FindUsuario(ctx context.Context, id string) (*entities.Usuario, error)
	FindUsuarioByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	CreateUsuario(ctx context.Context, usuario *entities.Usuario) error
	UpdateRol(ctx context.Context, id string, rol string) error
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUsuarioRepository(storage *pgxpool.Pool, logger *zap.Logger) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage, logger: logger}
}

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	err := row.Scan(
		&u.ID, &u.NombreCompleto, &u.Email, &u.PasswordHash, &u.Rol,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error al escanear usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepository) GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"u.nombre_completo": pat},
				sq.ILike{"u.email": pat},
			})
		}
		return b
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := applySearch(psql.Select("COUNT(u.id)").From(usuarioTable + " AS u"))
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, usuarioFieldMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Usuario{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"u.id", "u.nombre_completo", "u.email", "u.password_hash", "u.rol",
		"u.created_at", "u.updated_at",
	).From(usuarioTable + " AS u"))
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("u.nombre_completo ASC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, usuarioFieldMap)

	sqlStr, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	usuarios := make([]entities.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, 0, err
		}
		usuarios = append(usuarios, *u)
	}

	return usuarios, total, rows.Err()
}

func (r *UsuarioRepository) FindUsuario(ctx context.Context, id string) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s u WHERE u.id = $1", usuarioSelectFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, id))
}

func (r *UsuarioRepository) FindUsuarioByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s u WHERE lower(u.email) = lower($1)", usuarioSelectFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, email))
}

func (r *UsuarioRepository) CreateUsuario(ctx context.Context, usuario *entities.Usuario) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre_completo, email, password_hash, rol)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, usuarioTable)

	err := r.storage.QueryRow(ctx, query,
		usuario.ID, usuario.NombreCompleto, usuario.Email, usuario.PasswordHash, usuario.Rol,
	).Scan(&usuario.CreatedAt, &usuario.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewHttpError(http.StatusBadRequest, "El correo ya está registrado.", err, nil)
		}
		return err
	}
	return nil
}

func (r *UsuarioRepository) UpdateRol(ctx context.Context, id string, rol string) error {
	query := fmt.Sprintf("UPDATE %s SET rol = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", usuarioTable)

	result, err := r.storage.Exec(ctx, query, rol, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
