package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/pkg/logger"
)

const sessionID = "session-1"

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) List(ctx context.Context, sessionID string) ([]domain.HistoryRecord, error) {
	args := m.Called(ctx, sessionID)
	records, _ := args.Get(0).([]domain.HistoryRecord)
	return records, args.Error(1)
}

type mockOrders struct {
	mock.Mock
}

func (m *mockOrders) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	args := m.Called(ctx, orderNumber)
	order, _ := args.Get(0).(*domain.Order)
	return order, args.Error(1)
}

type staticNormalizer struct{}

func (staticNormalizer) Normalize(lang string) string {
	if lang == "es" || lang == "de" {
		return lang
	}
	return "en"
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: []domain.Package{
			{ID: 7, Name: "Island Escape", Price: 500, SpotsAvailable: 4},
			{ID: 8, Name: "Sold Out", Price: 900, SpotsAvailable: 0},
		},
		Accommodations: []domain.Accommodation{
			{ID: 1, Category: domain.CategoryHotel, Name: "Casa Azul", PricePerNight: 100},
			{ID: 1, Category: domain.CategoryResort, Name: "Palm Resort", PricePerNight: 250},
		},
		Activities: []domain.Activity{{ID: 3, Name: "Diving", Price: 80}},
		Services:   []domain.Service{{ID: 5, Name: "Transfer", Rate: domain.FlatRate(40)}},
	}
}

type fixture struct {
	service  *Service
	registry *sessions.Registry
	history  *mockHistory
	orders   *mockOrders
}

func newFixture(t *testing.T, started bool) *fixture {
	t.Helper()

	f := &fixture{
		registry: sessions.NewRegistry("en"),
		history:  &mockHistory{},
		orders:   &mockOrders{},
	}
	f.service = NewService(f.registry, f.history, f.orders, staticNormalizer{}, logger.NewNop())

	if started {
		session := f.registry.GetOrCreate(sessionID)
		clock := fixedClock{now: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
		require.NoError(t, session.StartWizard(session.BeginLoad(), testCatalog(), clock))
	}
	return f
}

func TestService_RequiresStartedFlow(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.service.View(sessionID)
	assert.ErrorIs(t, err, ErrNotStarted)

	f.registry.GetOrCreate(sessionID)
	_, err = f.service.SelectMode(sessionID, &models.SelectModeRequest{Mode: "package"})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestService_PackageFlow(t *testing.T) {
	f := newFixture(t, true)

	view, err := f.service.SelectMode(sessionID, &models.SelectModeRequest{Mode: " Package "})
	require.NoError(t, err)
	assert.Equal(t, "package", view.Mode)
	assert.Nil(t, view.Total)

	view, err = f.service.Next(sessionID)
	assert.ErrorIs(t, err, ErrTransitionRefused)
	require.NotNil(t, view)
	assert.Equal(t, "selecting_type", view.State)

	_, err = f.service.ChoosePackage(sessionID, &models.ChoosePackageRequest{PackageID: 8})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = f.service.ChoosePackage(sessionID, &models.ChoosePackageRequest{PackageID: 99})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.ChoosePackage(sessionID, &models.ChoosePackageRequest{PackageID: 7})
	require.NoError(t, err)

	view, err = f.service.SetGuests(sessionID, &models.SetGuestsRequest{Guests: 3})
	require.NoError(t, err)
	require.NotNil(t, view.Total)
	assert.Equal(t, 1500.0, view.Total.Total)
	assert.True(t, view.CanContinue)

	view, err = f.service.Next(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "details_entry", view.State)

	view, err = f.service.SetCustomer(sessionID, &models.CustomerRequest{Name: "Ana", Email: "ana@example.com", Phone: "+34"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Customer.Name)

	view, err = f.service.Back(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "selecting_type", view.State)
	assert.Equal(t, "Ana", view.Customer.Name)
}

func TestService_CustomFlow(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.service.SelectMode(sessionID, &models.SelectModeRequest{Mode: "custom"})
	require.NoError(t, err)

	_, err = f.service.SetDates(sessionID, &models.SetDatesRequest{CheckIn: "01/03/2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.service.SetDates(sessionID, &models.SetDatesRequest{CheckIn: "2025-03-05", CheckOut: "2025-03-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	view, err := f.service.SetDates(sessionID, &models.SetDatesRequest{CheckIn: "2025-03-01"})
	require.NoError(t, err)
	assert.False(t, view.CanContinue)

	view, err = f.service.SetDates(sessionID, &models.SetDatesRequest{CheckIn: "2025-03-01", CheckOut: "2025-03-05"})
	require.NoError(t, err)
	assert.True(t, view.CanContinue)
	assert.Equal(t, 4, view.Custom.Nights)

	view, err = f.service.Next(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "accommodation", view.Step)

	_, err = f.service.ChooseAccommodation(sessionID, &models.ChooseAccommodationRequest{Category: "villa", ID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	view, err = f.service.ChooseAccommodation(sessionID, &models.ChooseAccommodationRequest{Category: "Hotel", ID: 1})
	require.NoError(t, err)
	require.NotNil(t, view.Total)
	assert.Equal(t, 800.0, view.Total.Total)

	_, err = f.service.ToggleActivity(sessionID, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	view, err = f.service.ToggleActivity(sessionID, 3)
	require.NoError(t, err)
	assert.Equal(t, 960.0, view.Total.Total)

	view, err = f.service.ToggleService(sessionID, 5)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, view.Total.Total)

	view, err = f.service.ToggleService(sessionID, 5)
	require.NoError(t, err)
	assert.Equal(t, 960.0, view.Total.Total)

	_, err = f.service.ChoosePackage(sessionID, &models.ChoosePackageRequest{PackageID: 7})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_InvalidInputs(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.service.SelectMode(sessionID, &models.SelectModeRequest{Mode: "cruise"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.service.SetGuests(sessionID, &models.SetGuestsRequest{Guests: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Language(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, "en", f.service.Language(sessionID))
	assert.Equal(t, "es", f.service.SetLanguage(sessionID, "es"))
	assert.Equal(t, "es", f.service.Language(sessionID))
	assert.Equal(t, "en", f.service.SetLanguage(sessionID, "fr"))
}

func TestService_History(t *testing.T) {
	f := newFixture(t, false)

	records := []domain.HistoryRecord{
		{
			Reference:  "ORD-1",
			Details:    domain.PackageDetails{PackageID: 7, PackageName: "Island Escape"},
			Guests:     2,
			TotalPrice: 1000,
			Status:     domain.HistoryStatusConfirmed,
		},
	}
	f.history.On("List", mock.Anything, sessionID).Return(records, nil).Once()

	resp, err := f.service.History(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "local", resp.Source)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "package", resp.Bookings[0].BookingType)

	f.history.On("List", mock.Anything, sessionID).Return(nil, errors.New("disk full")).Once()
	_, err = f.service.History(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrInternal)

	f.history.AssertExpectations(t)
}

func TestService_Order(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{name: "not found", clientErr: backend.ErrNotFound, wantErr: ErrNotFound},
		{name: "connectivity", clientErr: backend.ErrConnectivity, wantErr: ErrBackendUnavailable},
		{name: "invalid response", clientErr: backend.ErrInvalidResponse, wantErr: ErrBackendUnavailable},
		{name: "unexpected", clientErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.orders.On("GetOrder", mock.Anything, "ORD-1").Return(nil, tt.clientErr)

			_, err := f.service.Order(context.Background(), "ORD-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, false)
		f.orders.On("GetOrder", mock.Anything, "ORD-1").
			Return(&domain.Order{OrderNumber: "ORD-1", TotalAmount: 1500, Status: "pending"}, nil)

		resp, err := f.service.Order(context.Background(), " ORD-1 ")
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", resp.OrderNumber)
		assert.Equal(t, 1500.0, resp.TotalAmount)
	})

	t.Run("empty number", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.service.Order(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
		f.orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})
}
