package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/httpresp"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/models"
	"github.com/navalhadeouro/booking-api/internal/timezone"
	ucappointment "github.com/navalhadeouro/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentCreator interface {
	Execute(ctx context.Context, in ucappointment.CreateAppointmentInput) (*models.Appointment, error)
}

type AppointmentCanceller interface {
	Execute(ctx context.Context, appointmentID string, adminID string) (*models.Appointment, error)
}

type AppointmentLister interface {
	Execute(ctx context.Context, minimal bool) ([]models.Appointment, error)
}

type AvailabilityProvider interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error)
}

type AppointmentHandler struct {
	createUC AppointmentCreator
	cancelUC AppointmentCanceller
	listUC   AppointmentLister
	availUC  AvailabilityProvider

	tz string
}

func NewAppointmentHandler(
	createUC AppointmentCreator,
	cancelUC AppointmentCanceller,
	listUC AppointmentLister,
	availUC AvailabilityProvider,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		availUC:  availUC,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Date       string `json:"date" binding:"required"` // ISO instant
	ServiceID  string `json:"serviceId" binding:"required"`
	BarberID   string `json:"barberId" binding:"required"`
}

// ======================================================
// CREATE (public booking)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Data inválida.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucappointment.CreateAppointmentInput{
			ClientName: req.ClientName,
			Phone:      req.Phone,
			ServiceID:  req.ServiceID,
			BarberID:   req.BarberID,
			StartAt:    start.In(timezone.Location(h.tz)),
		},
	)

	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	minimal := c.Query("minimal") == "true"

	aps, err := h.listUC.Execute(c.Request.Context(), minimal)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// CANCEL (soft delete)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, adminID)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	barberID := c.Query("barberId")
	serviceID := c.Query("serviceId")

	if dateStr == "" || barberID == "" || serviceID == "" {
		httperr.BadRequest(c, "invalid_payload", "Data, barbeiro e serviço obrigatórios.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Data inválida.")
		return
	}

	slots, err := h.availUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  barberID,
			ServiceID: serviceID,
			Date:      date,
			Now:       timezone.NowIn(h.tz),
		},
	)

	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_payload"):
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
	case httperr.IsBusiness(err, "service_unavailable"):
		httperr.BadRequest(c, "service_unavailable", "Serviço indisponível.")
	case httperr.IsBusiness(err, "barber_unavailable"):
		httperr.BadRequest(c, "barber_unavailable", "Barbeiro indisponível.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Conflito de horário.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
	default:
		httperr.Internal(c, "unexpected_error", "Erro inesperado.")
	}
}
