package appointment

import (
	"context"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns active appointments, newest booking first. Minimal
// mode serves public views: it leaks nothing, always an empty list.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	minimal bool,
) ([]models.Appointment, error) {

	if minimal {
		return []models.Appointment{}, nil
	}

	return uc.repo.ListActiveAppointments(ctx)
}
