package schedule

import (
	"context"
	"time"

	"github.com/navalhadeouro/booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListActiveAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListAppointmentsOverlapping(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAbsencesOverlapping(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) ([]models.BarberAbsence, error)
}
