package appointment

import (
	"context"
	"time"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
}

func NewGetAvailability(
	repo domain.Repository,
	hours domain.BusinessHours,
) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if in.BarberID == "" || in.ServiceID == "" || in.Date.IsZero() {
		return nil, httperr.ErrBusiness("invalid_payload")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	candidates := domain.GenerateSlots(
		uc.hours.OpenMinutes,
		uc.hours.CloseMinutes,
		service.DurationMin,
	)

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsOverlapping(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	absences, err := uc.repo.ListAbsencesOverlapping(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	for _, label := range candidates {
		minutes, err := domain.ToMinutes(label)
		if err != nil {
			continue
		}

		slotStart := dayStart.Add(time.Duration(minutes) * time.Minute)
		slotEnd := slotStart.Add(slotDuration)

		// same-day booking never reaches into the past
		if slotStart.Before(in.Now) {
			continue
		}

		// a slot must fit entirely inside the day
		if slotEnd.After(dayEnd) {
			continue
		}

		conflict := false
		for _, ap := range appointments {
			if domain.Overlaps(slotStart, slotEnd, ap.StartAt, ap.EndAt) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		for _, ab := range absences {
			if domain.Overlaps(slotStart, slotEnd, ab.StartAt, ab.EndAt) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: label,
			End:   domain.ToLabel(minutes + service.DurationMin),
		})
	}

	return slots, nil
}
