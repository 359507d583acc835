package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	"soporte-ti/pkg/contextkeys"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/types"
)

// postJSONConUsuario arma el request como lo dejaría el middleware de auth:
// con el UserID ya puesto en el contexto.
func postJSONConUsuario(handler echo.HandlerFunc, path, body, userID string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.UserIDKey, userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

type ticketServiceFake struct {
	fallarCreacion   bool
	ultimoReporte    dto.ReporteDTO
	ultimoReportante *string
}

func (f *ticketServiceFake) GetTickets(_ context.Context, _ types.Filter) ([]entities.TicketReparacion, uint64, error) {
	return []entities.TicketReparacion{}, 0, nil
}

func (f *ticketServiceFake) FindTicket(_ context.Context, id int64) (*entities.TicketReparacion, error) {
	return &entities.TicketReparacion{ID: id}, nil
}

func (f *ticketServiceFake) CrearReporte(_ context.Context, payload dto.ReporteDTO, usuarioReportaID *string) (*entities.TicketReparacion, error) {
	if f.fallarCreacion {
		causa := errors.New("insert or update on table \"tickets_reparacion\" violates foreign key constraint")
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, causa.Error(), causa, nil)
	}
	f.ultimoReporte = payload
	f.ultimoReportante = usuarioReportaID
	return &entities.TicketReparacion{
		ID:                  42,
		EquipoID:            payload.PcID,
		UsuarioReportaID:    usuarioReportaID,
		TituloProblema:      payload.TipoProblem,
		DescripcionProblema: payload.Descripcion,
		Estado:              "Abierto",
		Prioridad:           "Media",
	}, nil
}

func (f *ticketServiceFake) GuardarCambios(_ context.Context, cambios map[int64]dto.CambioTicketDTO) (int, error) {
	return len(cambios), nil
}

func (f *ticketServiceFake) ExportarTickets(_ context.Context, _ types.Filter) ([]byte, error) {
	return []byte{0x50, 0x4b}, nil
}

func TestCrearReporteSinDescripcionResponde201(t *testing.T) {
	svc := &ticketServiceFake{}
	ctrl := NewTicketController(svc, zap.NewNop())

	rec := postJSONConUsuario(ctrl.CrearReporte, "/api/reportes",
		`{"pcId":"LAB40805","tipoProblema":"No enciende"}`, "u-1")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reporte recibido")
	assert.Equal(t, "LAB40805", svc.ultimoReporte.PcID)
	assert.Nil(t, svc.ultimoReporte.Descripcion)
	if assert.NotNil(t, svc.ultimoReportante) {
		assert.Equal(t, "u-1", *svc.ultimoReportante)
	}
}

func TestCrearReporteSinSesionResponde401(t *testing.T) {
	svc := &ticketServiceFake{}
	ctrl := NewTicketController(svc, zap.NewNop())

	rec := postJSON(ctrl.CrearReporte, "/api/reportes",
		`{"pcId":"LAB40805","tipoProblema":"No enciende"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.ultimoReportante)
}

func TestCrearReporteConFalloDeBaseResponde500ConElMensaje(t *testing.T) {
	svc := &ticketServiceFake{fallarCreacion: true}
	ctrl := NewTicketController(svc, zap.NewNop())

	rec := postJSONConUsuario(ctrl.CrearReporte, "/api/reportes",
		`{"pcId":"","tipoProblema":""}`, "u-1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "violates foreign key constraint")
}
