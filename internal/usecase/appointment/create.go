package appointment

import (
	"context"
	"time"

	"github.com/navalhadeouro/booking-api/internal/audit"
	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/models"
	"github.com/navalhadeouro/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName string
	Phone      string

	ServiceID string
	BarberID  string

	StartAt time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.Phone == "" ||
		in.ServiceID == "" || in.BarberID == "" || in.StartAt.IsZero() {
		return nil, httperr.ErrBusiness("invalid_payload")
	}

	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_payload")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	// duration snapshot: the interval is fixed here and never recomputed
	end := in.StartAt.Add(time.Duration(service.DurationMin) * time.Minute)

	ap := &models.Appointment{
		ClientName: in.ClientName,
		Phone:      in.Phone,
		BarberID:   in.BarberID,
		ServiceID:  service.ID,
		StartAt:    in.StartAt,
		EndAt:      end,
		IsActive:   true,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"start": in.StartAt, "end": end},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
