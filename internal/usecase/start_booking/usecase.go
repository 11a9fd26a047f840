package start_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
	"github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
)

// UseCase use case для запуска нового сценария бронирования в сессии
type UseCase struct {
	loader       CatalogLoader
	sessions     SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader CatalogLoader, sessions SessionStore, logger Logger) *UseCase {
	return &UseCase{
		loader:       loader,
		sessions:     sessions,
		timeProvider: &wizard.RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute загружает каталог и запускает новый мастер, отбрасывая предыдущий выбор.
// Если за время загрузки в сессии начался другой сценарий, результат отбрасывается.
// Пока текущее бронирование отправляется, новый сценарий не запускается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", ErrInvalidInput)
	}

	session := uc.sessions.GetOrCreate(req.SessionID)
	lang := req.Language
	if lang == "" {
		lang = session.Language()
	}

	uc.logger.Info("StartBooking: session=%s, language=%s", req.SessionID, lang)

	if session.Submitting() {
		uc.logger.Warn("StartBooking: submission in progress for session=%s", req.SessionID)
		return nil, ErrSubmissionInProgress
	}

	token := session.BeginLoad()

	catalog, err := uc.loader.Execute(ctx, &load_catalog.Request{Language: lang})
	if err != nil {
		uc.logger.Warn("StartBooking: catalog load failed for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	if err := session.StartWizard(token, catalog, uc.timeProvider); err != nil {
		switch {
		case errors.Is(err, sessions.ErrStaleLoad):
			uc.logger.Warn("StartBooking: stale catalog dropped for session=%s", req.SessionID)
			return nil, ErrSuperseded
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			uc.logger.Warn("StartBooking: submission in progress for session=%s", req.SessionID)
			return nil, ErrSubmissionInProgress
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	var view *models.WizardView
	if err := session.Do(func(w *wizard.Wizard) error {
		view = models.FromWizard(w)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Catalog: catalog, Wizard: view}, nil
}
