package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhadeouro/booking-api/internal/audit"
	"github.com/navalhadeouro/booking-api/internal/cache"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/httpresp"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/models"
)

const servicesCacheKey = "services:active"

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher, c *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher, cache: c}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Duration    *int     `json:"duration" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	includeAll := c.Query("all") == "true"

	if !includeAll {
		cached := []models.Service{}
		if h.cache.GetJSON(c.Request.Context(), servicesCacheKey, &cached) {
			httpresp.OK(c, cached)
			return
		}
	}

	q := h.db
	if !includeAll {
		q = q.Where("is_active = true")
	}

	services := []models.Service{}
	if err := q.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	if !includeAll {
		h.cache.SetJSON(c.Request.Context(), servicesCacheKey, services)
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		DurationMin: *req.Duration,
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.Where("id = ?", id).First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, service)
}

// Delete removes the service and every appointment booked against it
// in a single transaction; partial deletes must never survive.
func (h *ServiceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.Where("id = ?", id).First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ?", service.ID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, service)
}
