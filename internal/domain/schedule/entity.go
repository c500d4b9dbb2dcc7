package schedule

import (
	"time"

	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel soft-deletes an appointment: the row stays, flagged inactive
// and stamped. An already cancelled appointment cannot be cancelled
// again.
func Cancel(ap *models.Appointment, now time.Time) error {
	if !ap.IsActive {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.IsActive = false
	ap.CancelledAt = &now
	return nil
}
