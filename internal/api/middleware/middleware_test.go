package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	var seen string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetSessionID(r.Context())
		require.True(t, ok)
		seen = id
	}))

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, existing)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, existing, seen)
	assert.Equal(t, existing, rec.Header().Get(SessionHeader))

	for _, header := range []string{"", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(SessionHeader, header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.NotEqual(t, header, seen)
		assert.Equal(t, seen, rec.Header().Get(SessionHeader))
	}
}

type observation struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	observed []observation
}

func (f *fakeRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/orders/{orderNumber}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/ORD-1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/ORD-2", nil))

	require.Len(t, recorder.observed, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/orders/{orderNumber}", status: http.StatusNotFound}, recorder.observed[0])
	assert.Equal(t, recorder.observed[0], recorder.observed[1])
}
