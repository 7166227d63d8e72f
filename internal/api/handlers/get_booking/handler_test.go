package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings/models"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetTourBooking(_ context.Context, id int64, _ domain.Actor) (*models.TourBookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.TourBookingResponse{ID: id, Status: string(domain.TourBookingActive)}, nil
}

func (f *fakeService) GetAccommodationBooking(_ context.Context, id int64, _ domain.Actor) (*models.AccommodationBookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AccommodationBookingResponse{ID: id}, nil
}

func newRouter(h *Handler, withActor bool) *mux.Router {
	router := mux.NewRouter()
	if withActor {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := middleware.WithActor(r.Context(), domain.Actor{UserID: 3})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
	}
	router.HandleFunc("/tour-bookings/{bookingId}", h.HandleTour).Methods(http.MethodGet)
	router.HandleFunc("/accommodation-bookings/{bookingId}", h.HandleAccommodation).Methods(http.MethodGet)
	return router
}

func TestGetBooking(t *testing.T) {
	router := newRouter(NewHandler(&fakeService{}, logger.NewNop()), true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tour-bookings/9", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":9`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accommodation-bookings/4", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":4`)
}

func TestGetBookingErrors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		err       error
		withActor bool
		status    int
	}{
		{"bad id", "/tour-bookings/zero", nil, true, http.StatusBadRequest},
		{"no actor", "/tour-bookings/1", nil, false, http.StatusUnauthorized},
		{"not found", "/tour-bookings/1", bookings.ErrBookingNotFound, true, http.StatusNotFound},
		{"foreign booking", "/accommodation-bookings/1", bookings.ErrAccessDenied, true, http.StatusForbidden},
		{"internal", "/accommodation-bookings/1", bookings.ErrInternal, true, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.withActor)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
