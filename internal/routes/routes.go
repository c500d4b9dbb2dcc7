package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhadeouro/booking-api/internal/audit"
	"github.com/navalhadeouro/booking-api/internal/cache"
	"github.com/navalhadeouro/booking-api/internal/config"
	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/handlers"
	infraRepo "github.com/navalhadeouro/booking-api/internal/infra/repository"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/timezone"
	ucAppointment "github.com/navalhadeouro/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	listingCache := cache.New(cfg.RedisURL)

	hours := domain.BusinessHours{
		OpenMinutes:  cfg.OpenMinutes,
		CloseMinutes: cfg.CloseMinutes,
	}

	// ======================================================
	// APPOINTMENT USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
		func() time.Time { return timezone.NowIn(cfg.Timezone) },
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		scheduleRepo,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		scheduleRepo,
		hours,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, listingCache)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher, listingCache)
	absenceHandler := handlers.NewAbsenceHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		getAvailabilityUC,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/absences", absenceHandler.List)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/availability", appointmentHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/barbers", barberHandler.Create)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)

			secured.POST("/absences", absenceHandler.Create)
			secured.DELETE("/absences/:id", absenceHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
