package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navalhadeouro/booking-api/internal/domain/schedule"
	"github.com/navalhadeouro/booking-api/internal/httperr"
	"github.com/navalhadeouro/booking-api/internal/middleware"
	"github.com/navalhadeouro/booking-api/internal/models"
	ucappointment "github.com/navalhadeouro/booking-api/internal/usecase/appointment"
)

type fakeCreator struct {
	fn func(ctx context.Context, in ucappointment.CreateAppointmentInput) (*models.Appointment, error)
}

func (f *fakeCreator) Execute(ctx context.Context, in ucappointment.CreateAppointmentInput) (*models.Appointment, error) {
	return f.fn(ctx, in)
}

type fakeCanceller struct {
	fn func(ctx context.Context, appointmentID, adminID string) (*models.Appointment, error)
}

func (f *fakeCanceller) Execute(ctx context.Context, appointmentID, adminID string) (*models.Appointment, error) {
	return f.fn(ctx, appointmentID, adminID)
}

type fakeLister struct {
	fn func(ctx context.Context, minimal bool) ([]models.Appointment, error)
}

func (f *fakeLister) Execute(ctx context.Context, minimal bool) ([]models.Appointment, error) {
	return f.fn(ctx, minimal)
}

type fakeAvailability struct {
	fn func(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error)
}

func (f *fakeAvailability) Execute(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error) {
	return f.fn(ctx, in)
}

func newTestRouter(h *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/api/appointments", h.Create)
	r.GET("/api/appointments", h.List)
	r.GET("/api/availability", h.Availability)

	// admin routes with a stubbed session
	r.DELETE("/api/appointments/:id", func(c *gin.Context) {
		c.Set(middleware.ContextAdminID, "admin-1")
		h.Cancel(c)
	})

	return r
}

func TestCreateAppointmentHandler(t *testing.T) {
	var got ucappointment.CreateAppointmentInput
	h := NewAppointmentHandler(
		&fakeCreator{fn: func(_ context.Context, in ucappointment.CreateAppointmentInput) (*models.Appointment, error) {
			got = in
			return &models.Appointment{ID: "ap-1", ClientName: in.ClientName, IsActive: true}, nil
		}},
		nil, nil, nil,
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	body := `{
		"clientName": "Maria",
		"phone": "+55 11 91234-5678",
		"date": "2025-03-10T13:00:00Z",
		"serviceId": "svc-1",
		"barberId": "barber-1"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Maria", got.ClientName)
	assert.Equal(t, "svc-1", got.ServiceID)
	assert.True(t, got.StartAt.Equal(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)))
}

func TestCreateAppointmentHandlerInvalidBody(t *testing.T) {
	h := NewAppointmentHandler(
		&fakeCreator{fn: func(_ context.Context, _ ucappointment.CreateAppointmentInput) (*models.Appointment, error) {
			t.Fatal("usecase must not run on invalid payload")
			return nil, nil
		}},
		nil, nil, nil,
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"clientName": "Maria"}`},
		{"bad date", `{"clientName":"Maria","phone":"11912345678","date":"tomorrow","serviceId":"s","barberId":"b"}`},
		{"not json", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateAppointmentHandlerSlotConflict(t *testing.T) {
	h := NewAppointmentHandler(
		&fakeCreator{fn: func(_ context.Context, _ ucappointment.CreateAppointmentInput) (*models.Appointment, error) {
			return nil, httperr.ErrBusiness("slot_conflict")
		}},
		nil, nil, nil,
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	body := `{"clientName":"Maria","phone":"11912345678","date":"2025-03-10T13:00:00Z","serviceId":"s","barberId":"b"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "slot_conflict", resp.Code)
}

func TestListAppointmentsHandlerMinimal(t *testing.T) {
	h := NewAppointmentHandler(
		nil, nil,
		&fakeLister{fn: func(_ context.Context, minimal bool) ([]models.Appointment, error) {
			require.True(t, minimal)
			return []models.Appointment{}, nil
		}},
		nil,
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments?minimal=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCancelAppointmentHandler(t *testing.T) {
	h := NewAppointmentHandler(
		nil,
		&fakeCanceller{fn: func(_ context.Context, appointmentID, adminID string) (*models.Appointment, error) {
			assert.Equal(t, "ap-1", appointmentID)
			assert.Equal(t, "admin-1", adminID)
			return &models.Appointment{ID: appointmentID, IsActive: false}, nil
		}},
		nil, nil,
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/ap-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAvailabilityHandler(t *testing.T) {
	h := NewAppointmentHandler(
		nil, nil, nil,
		&fakeAvailability{fn: func(_ context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			assert.Equal(t, "barber-1", in.BarberID)
			assert.Equal(t, "svc-1", in.ServiceID)
			assert.False(t, in.Now.IsZero())
			return []domain.TimeSlot{{Start: "08:00", End: "08:30"}}, nil
		}},
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-03-10&barberId=barber-1&serviceId=svc-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"08:00"`)
}

func TestAvailabilityHandlerMissingParams(t *testing.T) {
	h := NewAppointmentHandler(nil, nil, nil,
		&fakeAvailability{fn: func(_ context.Context, _ domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			t.Fatal("usecase must not run without params")
			return nil, nil
		}},
		"America/Sao_Paulo",
	)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-03-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
