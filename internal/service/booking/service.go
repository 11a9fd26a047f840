package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
	"github.com/m04kA/DMar-BookingService/pkg/types"
)

// Service сервис сценария бронирования: действия пользователя над мастером сессии
type Service struct {
	sessions  SessionStore
	history   HistoryRepository
	orders    OrderClient
	languages LanguageNormalizer
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирования
func NewService(
	sessions SessionStore,
	history HistoryRepository,
	orders OrderClient,
	languages LanguageNormalizer,
	logger Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		history:   history,
		orders:    orders,
		languages: languages,
		logger:    logger,
	}
}

// View возвращает текущее состояние мастера (включая подтверждение после отправки)
func (s *Service) View(sessionID string) (*models.WizardView, error) {
	return s.apply(sessionID, "View", func(w *wizard.Wizard) error { return nil })
}

// SelectMode выбирает тип бронирования
func (s *Service) SelectMode(sessionID string, req *models.SelectModeRequest) (*models.WizardView, error) {
	mode := domain.BookingMode(strings.ToLower(strings.TrimSpace(req.Mode)))
	return s.apply(sessionID, "SelectMode", func(w *wizard.Wizard) error {
		return w.SelectMode(mode)
	})
}

// ChoosePackage выбирает пакет
func (s *Service) ChoosePackage(sessionID string, req *models.ChoosePackageRequest) (*models.WizardView, error) {
	return s.apply(sessionID, "ChoosePackage", func(w *wizard.Wizard) error {
		return w.ChoosePackage(req.PackageID)
	})
}

// SetDates задает даты custom бронирования
func (s *Service) SetDates(sessionID string, req *models.SetDatesRequest) (*models.WizardView, error) {
	dates, err := parseDates(req)
	if err != nil {
		s.logger.Warn("SetDates: invalid dates for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.apply(sessionID, "SetDates", func(w *wizard.Wizard) error {
		return w.SetDates(dates)
	})
}

// ChooseAccommodation выбирает отель или курорт
func (s *Service) ChooseAccommodation(sessionID string, req *models.ChooseAccommodationRequest) (*models.WizardView, error) {
	category := domain.AccommodationCategory(strings.ToLower(req.Category))
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown accommodation category %q", ErrInvalidInput, req.Category)
	}

	key := domain.AccommodationKey{Category: category, ID: req.ID}
	return s.apply(sessionID, "ChooseAccommodation", func(w *wizard.Wizard) error {
		return w.ChooseAccommodation(key)
	})
}

// ToggleActivity выбирает или снимает выбор активности
func (s *Service) ToggleActivity(sessionID string, activityID int64) (*models.WizardView, error) {
	return s.apply(sessionID, "ToggleActivity", func(w *wizard.Wizard) error {
		_, err := w.ToggleActivity(activityID)
		return err
	})
}

// ToggleService выбирает или снимает выбор услуги
func (s *Service) ToggleService(sessionID string, serviceID int64) (*models.WizardView, error) {
	return s.apply(sessionID, "ToggleService", func(w *wizard.Wizard) error {
		_, err := w.ToggleService(serviceID)
		return err
	})
}

// SetGuests задает количество гостей
func (s *Service) SetGuests(sessionID string, req *models.SetGuestsRequest) (*models.WizardView, error) {
	return s.apply(sessionID, "SetGuests", func(w *wizard.Wizard) error {
		return w.SetGuests(req.Guests)
	})
}

// SetCustomer сохраняет контактные данные клиента
func (s *Service) SetCustomer(sessionID string, req *models.CustomerRequest) (*models.WizardView, error) {
	details := req.ToDomain()
	return s.apply(sessionID, "SetCustomer", func(w *wizard.Wizard) error {
		return w.SetCustomer(details)
	})
}

// Next переходит на следующий шаг.
// При невыполненном условии возвращает ErrTransitionRefused вместе с неизменным представлением.
func (s *Service) Next(sessionID string) (*models.WizardView, error) {
	return s.apply(sessionID, "Next", func(w *wizard.Wizard) error {
		return w.Next()
	})
}

// Back возвращается на предыдущий шаг
func (s *Service) Back(sessionID string) (*models.WizardView, error) {
	return s.apply(sessionID, "Back", func(w *wizard.Wizard) error {
		return w.Back()
	})
}

// SetLanguage меняет язык сессии. Неподдерживаемый язык заменяется языком по умолчанию.
func (s *Service) SetLanguage(sessionID, lang string) string {
	normalized := s.languages.Normalize(lang)
	s.sessions.GetOrCreate(sessionID).SetLanguage(normalized)
	s.logger.Info("SetLanguage: session=%s, requested=%s, applied=%s", sessionID, lang, normalized)
	return normalized
}

// Language возвращает язык сессии
func (s *Service) Language(sessionID string) string {
	return s.sessions.GetOrCreate(sessionID).Language()
}

// History возвращает локальную историю бронирований сессии
func (s *Service) History(ctx context.Context, sessionID string) (*models.HistoryResponse, error) {
	records, err := s.history.List(ctx, sessionID)
	if err != nil {
		s.logger.Error("History: failed to list history for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHistory(records), nil
}

// Order получает заказ из бэкенда по номеру
func (s *Service) Order(ctx context.Context, orderNumber string) (*models.OrderResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, fmt.Errorf("%w: empty order number", ErrInvalidInput)
	}

	order, err := s.orders.GetOrder(ctx, orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrNotFound):
			s.logger.Warn("Order: order=%s not found", orderNumber)
			return nil, ErrNotFound
		case errors.Is(err, backend.ErrConnectivity), errors.Is(err, backend.ErrInvalidResponse):
			s.logger.Error("Order: backend unavailable for order=%s: %v", orderNumber, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			s.logger.Error("Order: failed to fetch order=%s: %v", orderNumber, err)
			return nil, fmt.Errorf("%w: Order - client error: %v", ErrInternal, err)
		}
	}

	return models.FromDomainOrder(order), nil
}

// apply выполняет действие над мастером под блокировкой сессии и возвращает представление.
// Представление возвращается и при отказе, чтобы клиент мог показать неизменное состояние.
func (s *Service) apply(sessionID, op string, fn func(w *wizard.Wizard) error) (*models.WizardView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrNotStarted
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}

	var (
		view   *models.WizardView
		actErr error
	)
	err = session.Do(func(w *wizard.Wizard) error {
		actErr = fn(w)
		view = models.FromWizard(w)
		return nil
	})
	if err != nil {
		if errors.Is(err, sessions.ErrNoWizard) {
			return nil, ErrNotStarted
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}

	if actErr != nil {
		s.logger.Warn("%s: refused for session=%s: %v", op, sessionID, actErr)
		return view, mapWizardError(actErr)
	}
	return view, nil
}

// mapWizardError переводит ошибки мастера в ошибки сервиса
func mapWizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrTransitionRefused):
		return fmt.Errorf("%w: %v", ErrTransitionRefused, err)
	case errors.Is(err, wizard.ErrUnknownItem):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, wizard.ErrPackageUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, wizard.ErrInvalidMode),
		errors.Is(err, wizard.ErrInvalidDates),
		errors.Is(err, wizard.ErrInvalidGuests),
		errors.Is(err, wizard.ErrCustomerDetails):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, wizard.ErrInvalidState),
		errors.Is(err, wizard.ErrModeNotSelected),
		errors.Is(err, wizard.ErrWrongMode),
		errors.Is(err, wizard.ErrSubmissionInProgress):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// parseDates разбирает даты; дата выезда может отсутствовать
func parseDates(req *models.SetDatesRequest) (domain.DateRange, error) {
	var dates domain.DateRange

	if req.CheckIn == "" {
		return dates, fmt.Errorf("check-in date is required")
	}
	start, err := types.ParseDate(req.CheckIn)
	if err != nil {
		return dates, err
	}
	dates.Start = start

	if req.CheckOut != "" {
		end, err := types.ParseDate(req.CheckOut)
		if err != nil {
			return dates, err
		}
		dates.End = end
	}
	return dates, nil
}
