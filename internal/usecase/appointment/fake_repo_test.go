package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/models"
)

// fakeRepo is an in-memory schedule.Repository for usecase tests.
type fakeRepo struct {
	services map[string]models.Service
	barbers  map[string]models.Barber

	appointments []models.Appointment
	absences     []models.BarberAbsence

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[string]models.Service{},
		barbers:  map[string]models.Barber{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return &s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return &b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if ap.ID == "" {
		ap.ID = "ap-fake"
	}
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListActiveAppointments(_ context.Context) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.IsActive {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsOverlapping(
	_ context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.IsActive &&
			domain.Overlaps(ap.StartAt, ap.EndAt, start, end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAbsencesOverlapping(
	_ context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) ([]models.BarberAbsence, error) {

	out := []models.BarberAbsence{}
	for _, ab := range f.absences {
		if ab.BarberID == barberID &&
			domain.Overlaps(ab.StartAt, ab.EndAt, start, end) {
			out = append(out, ab)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// nopSink discards audit events.
type nopSink struct{}

func (nopSink) Log(*string, string, string, *string, any) error { return nil }
