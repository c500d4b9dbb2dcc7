package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhadeouro/booking-api/internal/audit"
	"github.com/navalhadeouro/booking-api/internal/cache"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/httpresp"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/models"
)

const barbersCacheKey = "barbers:all"

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewBarberHandler(db *gorm.DB, dispatcher *audit.Dispatcher, c *cache.Cache) *BarberHandler {
	return &BarberHandler{db: db, audit: dispatcher, cache: c}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	cached := []models.Barber{}
	if h.cache.GetJSON(c.Request.Context(), barbersCacheKey, &cached) {
		httpresp.OK(c, cached)
		return
	}

	// pre-allocated so an empty table serializes as [], not null
	barbers := []models.Barber{}
	if err := h.db.Order("created_at DESC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), barbersCacheKey, barbers)

	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	specialties := make([]string, 0, len(req.Specialties))
	for _, s := range req.Specialties {
		if s = strings.TrimSpace(s); s != "" {
			specialties = append(specialties, s)
		}
	}

	barber := models.Barber{
		Name:        req.Name,
		Specialties: specialties,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), barbersCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

// Delete refuses to remove a barber who is still referenced by any
// appointment, cancelled ones included, since those rows are retained
// as booking history. Absences go away with the barber in the same
// transaction.
func (h *BarberHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Where("id = ?", id).First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Appointment{}).
		Where("barber_id = ?", barber.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	if count > 0 {
		httperr.Conflict(c, "barber_has_appointments", "Barbeiro possui agendamentos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barber.ID).
			Delete(&models.BarberAbsence{}).Error; err != nil {
			return err
		}
		return tx.Delete(&barber).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), barbersCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, gin.H{"success": true})
}
