package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/pkg/logger"
	"github.com/m04kA/DMar-BookingService/pkg/reqctx"
	"github.com/m04kA/DMar-BookingService/pkg/types"
)

type recordedCall struct {
	endpoint string
	outcome  string
}

type fakeRecorder struct {
	calls []recordedCall
}

func (r *fakeRecorder) ObserveBackendRequest(endpoint, outcome string, _ time.Duration) {
	r.calls = append(r.calls, recordedCall{endpoint: endpoint, outcome: outcome})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := &fakeRecorder{}
	return NewClient(srv.URL+"/api/v1", 2*time.Second, "X-Session-ID", logger.NewNop(), rec), rec
}

func TestClient_GetPackages(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/packages", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("available"))
		assert.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = io.WriteString(w, `[{
			"id": 7,
			"name": "Island Escape",
			"dates": "March 1-5",
			"start_date": "2030-03-01T00:00:00.000000Z",
			"end_date": "2030-03-05",
			"activities": "[\"Snorkeling\",\"Sunset cruise\"]",
			"price": "500.50",
			"spots_available": 3,
			"is_women_only": true,
			"accommodation": {"name": "Coral Resort", "type": "Beachfront", "features": "[\"Pool\"]"}
		}]`)
	})

	available := true
	ctx := reqctx.WithSessionID(context.Background(), "sess-1")
	packages, err := client.GetPackages(ctx, PackageFilter{Available: &available})
	require.NoError(t, err)
	require.Len(t, packages, 1)

	pkg := packages[0]
	assert.Equal(t, int64(7), pkg.ID)
	assert.Equal(t, 500.50, pkg.Price)
	assert.Equal(t, []string{"Snorkeling", "Sunset cruise"}, pkg.Activities)
	assert.Equal(t, types.NewDate(2030, time.March, 1), pkg.StartDate)
	assert.Equal(t, types.NewDate(2030, time.March, 5), pkg.EndDate)
	assert.True(t, pkg.WomenOnly)
	assert.True(t, pkg.Available())
	require.NotNil(t, pkg.Accommodation)
	assert.Equal(t, []string{"Pool"}, pkg.Accommodation.Features)

	assert.Equal(t, []recordedCall{{endpoint: "packages", outcome: outcomeSuccess}}, rec.calls)
}

func TestClient_GetHotelsAndResorts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/hotels":
			assert.Equal(t, "es", r.URL.Query().Get("locale"))
			_, _ = io.WriteString(w, `{"data": [{"id": 1, "name": "Casa", "features": ["Wifi"], "price_per_night": "120"}]}`)
		case "/api/v1/resorts":
			_, _ = io.WriteString(w, `[{"id": 1, "name": "Coral", "features": null, "price_per_night": 250}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	hotels, err := client.GetHotels(context.Background(), AccommodationFilter{Locale: "es"})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, domain.CategoryHotel, hotels[0].Category)
	assert.Equal(t, 120.0, hotels[0].PricePerNight)
	assert.Equal(t, []string{"Wifi"}, hotels[0].Features)

	resorts, err := client.GetResorts(context.Background(), AccommodationFilter{})
	require.NoError(t, err)
	require.Len(t, resorts, 1)
	assert.Equal(t, domain.CategoryResort, resorts[0].Category)
	assert.Equal(t, 250.0, resorts[0].PricePerNight)
	assert.Empty(t, resorts[0].Features)

	assert.NotEqual(t, hotels[0].Key(), resorts[0].Key())
}

func TestClient_GetServices_RateSelection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": 1, "name": "Transfer", "price": "40.00"},
			{"id": 2, "name": "Guide", "price_per_day": "20.00"},
			{"id": 3, "name": "Both", "price": "15", "price_per_day": "5"},
			{"id": 4, "name": "Free"}
		]`)
	})

	services, err := client.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 4)

	assert.Equal(t, domain.FlatRate(40), services[0].Rate)
	assert.Equal(t, domain.PerDayRate(20), services[1].Rate)
	assert.Equal(t, domain.PerDayRate(5), services[2].Rate)
	assert.Equal(t, domain.FlatRate(0), services[3].Rate)
}

func TestClient_InvalidPriceIsRejectedAtBoundary(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id": 1, "name": "Snorkel", "price": "fifty"}]`)
	})

	_, err := client.GetActivities(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_NonFiniteOrNegativePriceIsRejected(t *testing.T) {
	bodies := map[string]string{
		"nan":      `[{"id": 1, "name": "Snorkel", "price": "NaN"}]`,
		"infinity": `[{"id": 1, "name": "Snorkel", "price": "+Inf"}]`,
		"negative": `[{"id": 1, "name": "Snorkel", "price": -50}]`,
		"overflow": `[{"id": 1, "name": "Snorkel", "price": 1e400}]`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			})

			_, err := client.GetActivities(context.Background())
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_ReadErrors(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/services/unknown":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	_, err := client.GetServiceContent(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetActivities(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, outcomeError, rec.calls[1].outcome)
}

func TestClient_GetServiceContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/services/diving", r.URL.Path)
		_, _ = io.WriteString(w, `{"title": "Diving"}`)
	})

	content, err := client.GetServiceContent(context.Background(), "diving")
	require.NoError(t, err)
	assert.Equal(t, "diving", content.Slug)
	assert.JSONEq(t, `{"title": "Diving"}`, string(content.Payload))
}

func TestClient_GetTranslations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "wrapped",
			body: `{"translations": {"nav.home": "Inicio"}}`,
			want: map[string]string{"nav.home": "Inicio"},
		},
		{
			name: "flat",
			body: `{"nav.home": "Start"}`,
			want: map[string]string{"nav.home": "Start"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := client.GetTranslations(context.Background(), "es")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_CreateBooking_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "package", payload["booking_type"])
		assert.Equal(t, 1500.0, payload["total_price"])
		assert.Equal(t, "Ana", payload["customer_name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message": "Booking created", "order": {"order_number": "ORD-42"}}`)
	})

	result, err := client.CreateBooking(context.Background(), PackageBookingRequest{
		PackageID:   7,
		PackageName: "Island Escape",
		Guests:      3,
		TotalPrice:  1500,
		CustomerFields: CustomerFields{
			CustomerName:  "Ana",
			CustomerEmail: "ana@example.com",
			CustomerPhone: "+1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-42", result.OrderNumber)
	assert.Equal(t, "Booking created", result.Message)
}

func TestClient_CreateBooking_OrderNumberVariants(t *testing.T) {
	bodies := map[string]string{
		`{"order_number": "A1"}`:   "A1",
		`{"booking_number": "B2"}`: "B2",
		`{"bookingNumber": "C3"}`:  "C3",
		`{"order_number": 1001}`:   "1001",
		`{"success": true}`:        "",
	}

	for body, want := range bodies {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		result, err := client.CreateBooking(context.Background(), CustomBookingRequest{})
		require.NoError(t, err, body)
		assert.Equal(t, want, result.OrderNumber, body)
	}
}

func TestClient_CreateBooking_Rejected(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"slot unavailable"}`)
	})

	_, err := client.CreateBooking(context.Background(), CustomBookingRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.NotErrorIs(t, err, ErrConnectivity)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusInternalServerError, rejected.StatusCode)
	assert.Equal(t, "slot unavailable", rejected.Message)

	assert.Equal(t, []recordedCall{{endpoint: "bookings", outcome: outcomeError}}, rec.calls)
}

func TestClient_CreateBooking_RejectedWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := client.CreateBooking(context.Background(), CustomBookingRequest{})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Empty(t, rejected.Message)
}

func TestClient_CreateBooking_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"order": `)
	})

	_, err := client.CreateBooking(context.Background(), CustomBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestClient_CreateBooking_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	rec := &fakeRecorder{}
	client := NewClient(srv.URL, 50*time.Millisecond, "X-Session-ID", logger.NewNop(), rec)

	_, err := client.CreateBooking(context.Background(), CustomBookingRequest{})
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Equal(t, []recordedCall{{endpoint: "bookings", outcome: outcomeConnectivity}}, rec.calls)
}

func TestClient_CreateBooking_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, "X-Session-ID", logger.NewNop(), nil)

	_, err := client.CreateBooking(context.Background(), CustomBookingRequest{})
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestClient_GetOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/orders/ORD-42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{
			"id": 5,
			"order_number": "ORD-42",
			"customer_name": "Ana",
			"total_amount": "1500.00",
			"status": "pending",
			"created_at": "2030-01-02T10:00:00.000000Z",
			"items": [{"item_type": "package", "item_name": "Island Escape", "quantity": 1, "guest_count": 3, "unit_price": "500.00", "subtotal": "1500.00"}]
		}`)
	})

	order, err := client.GetOrder(context.Background(), "ORD-42")
	require.NoError(t, err)
	assert.Equal(t, "ORD-42", order.OrderNumber)
	assert.Equal(t, 1500.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 500.0, order.Items[0].UnitPrice)
	assert.Equal(t, 2030, order.CreatedAt.Year())

	_, err = client.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRequest_TypeIsAlwaysSet(t *testing.T) {
	raw, err := json.Marshal(CustomBookingRequest{
		CheckInDate:  "2030-01-01",
		CheckOutDate: "2030-01-05",
		Activities:   []int64{1},
		Services:     []int64{},
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "custom", got["booking_type"])
	assert.Equal(t, "2030-01-01", got["check_in_date"])
	assert.NotContains(t, got, "package_name")

	raw, err = json.Marshal(PackageBookingRequest{PackageName: "Island Escape"})
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "package", got["booking_type"])
	assert.NotContains(t, got, "check_in_date")
}
