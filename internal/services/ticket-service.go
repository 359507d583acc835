package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	"soporte-ti/internal/repositories"
	"soporte-ti/pkg/constants"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
	"soporte-ti/pkg/utils"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, filter types.Filter) ([]entities.TicketReparacion, uint64, error)
	FindTicket(ctx context.Context, id int64) (*entities.TicketReparacion, error)
	CrearReporte(ctx context.Context, payload dto.ReporteDTO, usuarioReportaID *string) (*entities.TicketReparacion, error)
	GuardarCambios(ctx context.Context, cambios map[int64]dto.CambioTicketDTO) (int, error)
	ExportarTickets(ctx context.Context, filter types.Filter) ([]byte, error)
}

type TicketService struct {
	ticketRepo repositories.TicketRepositoryInterface
	equipoRepo repositories.EquipoRepositoryInterface
	txManager  repositories.TxManagerInterface
	logger     *zap.Logger
}

func NewTicketService(
	ticketRepo repositories.TicketRepositoryInterface,
	equipoRepo repositories.EquipoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) TicketServiceInterface {
	return &TicketService{
		ticketRepo: ticketRepo,
		equipoRepo: equipoRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *TicketService) GetTickets(ctx context.Context, filter types.Filter) ([]entities.TicketReparacion, uint64, error) {
	return s.ticketRepo.GetTickets(ctx, filter)
}

func (s *TicketService) FindTicket(ctx context.Context, id int64) (*entities.TicketReparacion, error) {
	return s.ticketRepo.FindTicket(ctx, id)
}

// CrearReporte registra la incidencia que llega del formulario con el equipo
// embebido en la URL. El estado entra siempre como "Abierto" y la fecha la
// pone el servidor; lo que mande el cliente en esos campos se ignora.
func (s *TicketService) CrearReporte(ctx context.Context, payload dto.ReporteDTO, usuarioReportaID *string) (*entities.TicketReparacion, error) {
	equipoID := utils.NormalizarIDEquipo(payload.PcID)

	if _, err := s.equipoRepo.FindEquipo(ctx, equipoID); err != nil {
		return nil, err
	}

	ticket := &entities.TicketReparacion{
		EquipoID:            equipoID,
		UsuarioReportaID:    usuarioReportaID,
		TituloProblema:      strings.TrimSpace(payload.TipoProblem),
		DescripcionProblema: payload.Descripcion,
		Estado:              constants.TicketAbierto,
		Prioridad:           constants.PrioridadMedia,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) {
			return nil, err
		}
		// La base rechazó la fila: el mensaje viaja tal cual al cliente.
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, err.Error(), err, nil)
	}

	s.logger.Info("reporte creado",
		zap.Int64("ticket_id", ticket.ID),
		zap.String("equipo_id", ticket.EquipoID),
	)
	return ticket, nil
}

// GuardarCambios aplica el lote de la pantalla de triaje. Compara lo editado
// contra las filas vigentes, persiste solo lo que difiere y estampa o limpia
// fecha_cierre cuando el ticket entra o sale de "Cerrado". Todo o nada: una
// sola transacción.
func (s *TicketService) GuardarCambios(ctx context.Context, cambios map[int64]dto.CambioTicketDTO) (int, error) {
	for _, c := range cambios {
		if c.Estado != nil && !constants.Contiene(constants.EstadosTicketPermitidos, *c.Estado) {
			return 0, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("El estado '%s' no es un estado de ticket válido.", *c.Estado),
				apperrors.ErrBadRequest, nil,
			)
		}
		if c.Prioridad != nil && !constants.Contiene(constants.PrioridadesPermitidas, *c.Prioridad) {
			return 0, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("La prioridad '%s' no es una prioridad válida.", *c.Prioridad),
				apperrors.ErrBadRequest, nil,
			)
		}
	}

	master, err := s.ticketRepo.GetEstadosPrioridades(ctx)
	if err != nil {
		return 0, err
	}

	type cambioFila struct {
		id            int64
		estado        *string
		prioridad     *string
		fechaCierre   *time.Time
		limpiarCierre bool
	}

	ahora := time.Now().UTC()
	filas := make([]cambioFila, 0, len(cambios))
	for id, editado := range cambios {
		vigente, ok := master[id]
		if !ok {
			continue
		}

		fila := cambioFila{id: id}
		if editado.Estado != nil && *editado.Estado != vigente.Estado {
			fila.estado = editado.Estado
			if *editado.Estado == constants.TicketCerrado {
				fila.fechaCierre = &ahora
			} else if vigente.Estado == constants.TicketCerrado {
				fila.limpiarCierre = true
			}
		}
		if editado.Prioridad != nil && *editado.Prioridad != vigente.Prioridad {
			fila.prioridad = editado.Prioridad
		}
		if fila.estado != nil || fila.prioridad != nil {
			filas = append(filas, fila)
		}
	}

	if len(filas) == 0 {
		return 0, nil
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for _, f := range filas {
			if err := s.ticketRepo.UpdateTicketTx(ctx, tx, f.id, f.estado, f.prioridad, f.fechaCierre, f.limpiarCierre); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("cambios de tickets guardados", zap.Int("cambios", len(filas)))
	return len(filas), nil
}

// ExportarTickets arma el listado en xlsx para el informe del área.
func (s *TicketService) ExportarTickets(ctx context.Context, filter types.Filter) ([]byte, error) {
	filter.WithPagination = false

	tickets, _, err := s.ticketRepo.GetTickets(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Tickets"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Equipo", "Problema", "Descripción", "Estado", "Prioridad", "Creado", "Cierre"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for fila, t := range tickets {
		valores := []interface{}{
			t.ID,
			t.EquipoID,
			t.TituloProblema,
			utils.SafeDeref(t.DescripcionProblema),
			t.Estado,
			t.Prioridad,
			t.CreatedAt.Format("2006-01-02 15:04"),
			"",
		}
		if t.FechaCierre != nil {
			valores[7] = t.FechaCierre.Format("2006-01-02 15:04")
		}
		for col, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
