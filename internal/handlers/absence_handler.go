package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhadeouro/booking-api/internal/audit"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/httpresp"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/models"
)

type AbsenceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAbsenceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AbsenceHandler {
	return &AbsenceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateAbsenceRequest struct {
	BarberID string `json:"barberId" binding:"required"`
	StartAt  string `json:"startAt" binding:"required"` // ISO instant
	EndAt    string `json:"endAt" binding:"required"`   // ISO instant
}

// --------- Handlers ---------

func (h *AbsenceHandler) List(c *gin.Context) {
	absences := []models.BarberAbsence{}
	if err := h.db.Order("start_at ASC").Find(&absences).Error; err != nil {
		httperr.Internal(c, "failed_to_list_absences", "Erro ao listar ausências.")
		return
	}

	httpresp.OK(c, absences)
}

func (h *AbsenceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Data inicial inválida.")
		return
	}

	end, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Data final inválida.")
		return
	}

	if !start.Before(end) {
		httperr.BadRequest(c, "invalid_payload", "Período inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.Where("id = ?", req.BarberID).First(&barber).Error; err != nil {
		httperr.BadRequest(c, "barber_unavailable", "Barbeiro indisponível.")
		return
	}

	// overlapping absences for the same barber are allowed
	absence := models.BarberAbsence{
		BarberID: barber.ID,
		StartAt:  start,
		EndAt:    end,
	}

	if err := h.db.Create(&absence).Error; err != nil {
		httperr.Internal(c, "failed_to_create_absence", "Erro ao criar ausência.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "absence_created",
		Entity:   "absence",
		EntityID: &absence.ID,
	})

	httpresp.Created(c, absence)
}

func (h *AbsenceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var absence models.BarberAbsence
	if err := h.db.Where("id = ?", id).First(&absence).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "absence_not_found", "Ausência não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_absence", "Erro ao buscar ausência.")
		return
	}

	if err := h.db.Delete(&absence).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_absence", "Erro ao remover ausência.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "absence_deleted",
		Entity:   "absence",
		EntityID: &absence.ID,
	})

	httpresp.OK(c, gin.H{"success": true})
}
