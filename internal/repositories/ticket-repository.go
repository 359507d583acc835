package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"soporte-ti/internal/entities"
	"soporte-ti/internal/infrastructure/bd"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
)

const ticketTable = "tickets_reparacion"
const ticketSelectFields = "t.id, t.equipo_id, t.usuario_reporta_id, t.titulo_problema, t.descripcion_problema, t.estado, t.prioridad, t.created_at, t.fecha_cierre"

var ticketFieldMap = map[string]string{
	"estado":    "t.estado",
	"prioridad": "t.prioridad",
	"equipo_id": "t.equipo_id",
}

// EstadoPrioridad es la fila maestra contra la que se calcula el diff del
// guardado por lotes.
type EstadoPrioridad struct {
	Estado    string
	Prioridad string
}

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context, filter types.Filter) ([]entities.TicketReparacion, uint64, error)
	FindTicket(ctx context.Context, id int64) (*entities.TicketReparacion, error)
	CreateTicket(ctx context.Context, ticket *entities.TicketReparacion) error
	GetEstadosPrioridades(ctx context.Context) (map[int64]EstadoPrioridad, error)
	UpdateTicketTx(ctx context.Context, tx pgx.Tx, id int64, estado, prioridad *string, fechaCierre *time.Time, limpiarCierre bool) error
}

type TicketRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTicketRepository(storage *pgxpool.Pool, logger *zap.Logger) TicketRepositoryInterface {
	return &TicketRepository{storage: storage, logger: logger}
}

func scanTicket(row pgx.Row) (*entities.TicketReparacion, error) {
	var t entities.TicketReparacion
	var usuarioReporta, descripcion sql.NullString
	var fechaCierre sql.NullTime

	err := row.Scan(
		&t.ID, &t.EquipoID, &usuarioReporta, &t.TituloProblema, &descripcion,
		&t.Estado, &t.Prioridad, &t.CreatedAt, &fechaCierre,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al escanear ticket: %w", err)
	}

	if usuarioReporta.Valid {
		t.UsuarioReportaID = &usuarioReporta.String
	}
	if descripcion.Valid {
		t.DescripcionProblema = &descripcion.String
	}
	if fechaCierre.Valid {
		t.FechaCierre = &fechaCierre.Time
	}
	return &t, nil
}

func (r *TicketRepository) GetTickets(ctx context.Context, filter types.Filter) ([]entities.TicketReparacion, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"t.equipo_id": pat},
				sq.ILike{"t.titulo_problema": pat},
				sq.ILike{"t.descripcion_problema": pat},
			})
		}
		return b
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := applySearch(psql.Select("COUNT(t.id)").From(ticketTable + " AS t"))
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, ticketFieldMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.TicketReparacion{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"t.id", "t.equipo_id", "t.usuario_reporta_id", "t.titulo_problema",
		"t.descripcion_problema", "t.estado", "t.prioridad", "t.created_at", "t.fecha_cierre",
	).From(ticketTable + " AS t"))

	// Los más recientes primero, como en la pantalla de triaje.
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("t.created_at DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, ticketFieldMap)

	sqlStr, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := make([]entities.TicketReparacion, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, total, rows.Err()
}

func (r *TicketRepository) FindTicket(ctx context.Context, id int64) (*entities.TicketReparacion, error) {
	query := fmt.Sprintf("SELECT %s FROM %s t WHERE t.id = $1", ticketSelectFields, ticketTable)
	return scanTicket(r.storage.QueryRow(ctx, query, id))
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *entities.TicketReparacion) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (equipo_id, usuario_reporta_id, titulo_problema, descripcion_problema, estado, prioridad, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, ticketTable)

	return r.storage.QueryRow(ctx, query,
		ticket.EquipoID, ticket.UsuarioReportaID, ticket.TituloProblema,
		ticket.DescripcionProblema, ticket.Estado, ticket.Prioridad, ticket.CreatedAt,
	).Scan(&ticket.ID)
}

func (r *TicketRepository) GetEstadosPrioridades(ctx context.Context) (map[int64]EstadoPrioridad, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, estado, prioridad FROM %s", ticketTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	master := make(map[int64]EstadoPrioridad)
	for rows.Next() {
		var id int64
		var ep EstadoPrioridad
		if err := rows.Scan(&id, &ep.Estado, &ep.Prioridad); err != nil {
			return nil, err
		}
		master[id] = ep
	}
	return master, rows.Err()
}

// UpdateTicketTx actualiza solo los campos provistos. limpiarCierre pone
// fecha_cierre en NULL cuando el ticket sale de "Cerrado".
func (r *TicketRepository) UpdateTicketTx(ctx context.Context, tx pgx.Tx, id int64, estado, prioridad *string, fechaCierre *time.Time, limpiarCierre bool) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET estado = COALESCE($1, estado),
		    prioridad = COALESCE($2, prioridad),
		    fecha_cierre = CASE WHEN $3 THEN NULL ELSE COALESCE($4, fecha_cierre) END
		WHERE id = $5
	`, ticketTable)

	result, err := tx.Exec(ctx, query, estado, prioridad, limpiarCierre, fechaCierre, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
