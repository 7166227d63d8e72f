package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
)

type fakeParser struct{}

func (fakeParser) Parse(token string) (domain.Actor, error) {
	if token == "good" {
		return domain.Actor{UserID: 9, Role: domain.RoleAdmin}, nil
	}
	return domain.Actor{}, errors.New("bad token")
}

func actorEcho(t *testing.T, expected domain.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		assert.Equal(t, expected, actor)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestHeaderAuth(t *testing.T) {
	h := Auth(HeaderIdentity(), logger.NewNop())(actorEcho(t, domain.Actor{UserID: 3, Role: domain.RoleEmployee}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderUserID, "3")
	r.Header.Set(HeaderUserRole, "employee")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, id := range []string{"", "abc", "0"} {
		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(HeaderUserID, id)
		w = httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, id)
	}
}

func TestSessionAuth(t *testing.T) {
	expected := domain.Actor{UserID: 9, Role: domain.RoleAdmin}
	h := Auth(SessionIdentity(fakeParser{}, "session"), logger.NewNop())(actorEcho(t, expected))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "good"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer good")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer forged")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// заголовки шлюза в режиме сессии игнорируются
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderUserID, "9")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/tour-bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tour-bookings/5", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tour-bookings/{bookingId}", "404")))
}
