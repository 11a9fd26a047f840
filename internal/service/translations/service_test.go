package translations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/DMar-BookingService/pkg/logger"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetTranslations(ctx context.Context, locale string) (map[string]string, error) {
	args := m.Called(ctx, locale)
	table, _ := args.Get(0).(map[string]string)
	return table, args.Error(1)
}

func TestService_Normalize(t *testing.T) {
	s := NewService(&mockSource{}, "en", []string{"en", "es", "de"}, logger.NewNop())

	assert.Equal(t, "es", s.Normalize("es"))
	assert.Equal(t, "es", s.Normalize("ES-mx"))
	assert.Equal(t, "de", s.Normalize(" de_AT "))
	assert.Equal(t, "en", s.Normalize("fr"))
	assert.Equal(t, "en", s.Normalize(""))

	assert.True(t, s.IsSupported("DE"))
	assert.False(t, s.IsSupported("fr"))
}

func TestService_Load(t *testing.T) {
	source := &mockSource{}
	source.On("GetTranslations", mock.Anything, "es").
		Return(map[string]string{"nav.home": "Inicio", "empty": ""}, nil).Once()

	s := NewService(source, "en", []string{"en", "es"}, logger.NewNop())
	tr := s.Load(context.Background(), "es")

	assert.Equal(t, "es", tr.Language())
	assert.Equal(t, "Inicio", tr.T("nav.home"))
	assert.Equal(t, "nav.missing", tr.T("nav.missing"))
	assert.Equal(t, "empty", tr.T("empty"))
	source.AssertExpectations(t)
}

func TestService_LoadFailureFallsBackToKeys(t *testing.T) {
	source := &mockSource{}
	source.On("GetTranslations", mock.Anything, "en").Return(nil, errors.New("boom")).Once()

	s := NewService(source, "en", []string{"en"}, logger.NewNop())
	tr := s.Load(context.Background(), "fr")

	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "booking.title", tr.T("booking.title"))
	assert.Empty(t, tr.Table())
	source.AssertExpectations(t)
}
