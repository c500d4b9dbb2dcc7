package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment re-checks the slot and inserts in one transaction.
// Overlapping active rows for the barber are locked first, so of two
// concurrent writers for the same slot exactly one commits; the other
// gets slot_conflict. The exclusion constraint on the table catches
// anything that slips past the lock.
func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND is_active = true AND start_at < ? AND end_at > ?",
				ap.BarberID, ap.EndAt, ap.StartAt,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListActiveAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	// pre-allocated so an empty result serializes as [], not null
	aps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsOverlapping(
	ctx context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_at", "end_at").
		Where(
			"barber_id = ? AND is_active = true AND start_at < ? AND end_at > ?",
			barberID, end, start,
		).
		Order("start_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *ScheduleGormRepository) ListAbsencesOverlapping(
	ctx context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) ([]models.BarberAbsence, error) {

	var absences []models.BarberAbsence
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_at < ? AND end_at > ?",
			barberID, end, start,
		).
		Order("start_at ASC").
		Find(&absences).Error; err != nil {
		return nil, err
	}

	return absences, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
