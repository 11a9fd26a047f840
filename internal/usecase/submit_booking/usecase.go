package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	"github.com/m04kA/DMar-BookingService/internal/service/pricing"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
)

// Исходы отправки для метрик
const (
	outcomeConfirmed = "confirmed"
)

// UseCase use case для отправки бронирования в бэкенд
type UseCase struct {
	sessions     SessionStore
	client       BookingClient
	history      HistoryRepository
	metrics      Metrics
	timeProvider TimeProvider
	newReference func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	sessions SessionStore,
	client BookingClient,
	history HistoryRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		client:       client,
		history:      history,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newReference: localReference,
		logger:       logger,
	}
}

// Execute отправляет текущий выбор сессии одним запросом, без автоматических повторов.
//
// Ошибка возвращается только если отправку нельзя начать (сценарий не запущен,
// отправка уже идет, не заполнены контакты). Неуспех самого запроса переводит
// мастер в submission_failed и возвращается в Response.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	session, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrNotStarted
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 1. Захватываем блокировку отправки
	var sel domain.Selection
	err = session.Do(func(w *wizard.Wizard) error {
		var beginErr error
		sel, beginErr = w.BeginSubmit()
		return beginErr
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: session=%s cannot submit: %v", req.SessionID, err)
		return nil, mapBeginError(err)
	}

	uc.logger.Info("SubmitBooking: session=%s, booking_type=%s, guests=%d", req.SessionID, sel.Mode, sel.Guests)

	// 2. Считаем стоимость и собираем запрос
	total, err := pricing.Total(sel)
	if err != nil {
		uc.logger.Error("SubmitBooking: session=%s pricing failed: %v", req.SessionID, err)
		return uc.fail(session, sel.Mode, domain.SubmissionFailure{
			Kind:    domain.FailureInternal,
			Message: MessageInternal,
			Detail:  err.Error(),
		})
	}

	payload, err := buildRequest(sel, total)
	if err != nil {
		uc.logger.Error("SubmitBooking: session=%s payload build failed: %v", req.SessionID, err)
		return uc.fail(session, sel.Mode, domain.SubmissionFailure{
			Kind:    domain.FailureInternal,
			Message: MessageInternal,
			Detail:  err.Error(),
		})
	}

	// 3. Один запрос в бэкенд (вне блокировки сессии)
	result, err := uc.client.CreateBooking(ctx, payload)
	if err != nil {
		failure := classifyFailure(err)
		uc.logger.Warn("SubmitBooking: session=%s failed, kind=%s: %v", req.SessionID, failure.Kind, err)
		return uc.fail(session, sel.Mode, failure)
	}

	// 4. Подтверждаем
	var view *models.WizardView
	if err := session.Do(func(w *wizard.Wizard) error {
		if err := w.Confirm(result.OrderNumber); err != nil {
			return err
		}
		view = models.FromWizard(w)
		return nil
	}); err != nil {
		uc.logger.Error("SubmitBooking: session=%s failed to confirm: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: confirm: %v", ErrInternal, err)
	}
	uc.record(string(sel.Mode), outcomeConfirmed)

	reference := result.OrderNumber
	if reference == "" {
		reference = uc.newReference()
	}
	uc.logger.Info("SubmitBooking: session=%s confirmed, reference=%s", req.SessionID, reference)

	// 5. Локальная история: ошибка записи не влияет на результат
	uc.appendHistory(ctx, req.SessionID, domain.HistoryRecord{
		Reference:   reference,
		OrderNumber: result.OrderNumber,
		Details:     buildDetails(sel, total),
		Guests:      sel.Guests,
		TotalPrice:  total.Total,
		Customer:    sel.Customer,
		Status:      domain.HistoryStatusConfirmed,
		CreatedAt:   uc.timeProvider.Now().UTC(),
	})

	return &Response{Wizard: view, Reference: reference}, nil
}

// fail переводит мастер в submission_failed
func (uc *UseCase) fail(session *sessions.Session, mode domain.BookingMode, failure domain.SubmissionFailure) (*Response, error) {
	var view *models.WizardView
	if err := session.Do(func(w *wizard.Wizard) error {
		if err := w.Fail(failure); err != nil {
			return err
		}
		view = models.FromWizard(w)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: fail: %v", ErrInternal, err)
	}

	uc.record(string(mode), string(failure.Kind))
	return &Response{Wizard: view}, nil
}

func (uc *UseCase) appendHistory(ctx context.Context, sessionID string, record domain.HistoryRecord) {
	if err := uc.history.Append(ctx, sessionID, record); err != nil {
		uc.logger.Warn("SubmitBooking: session=%s failed to save local history, reference=%s: %v",
			sessionID, record.Reference, err)
		if uc.metrics != nil {
			uc.metrics.RecordHistoryWriteFailure()
		}
	}
}

func (uc *UseCase) record(bookingType, outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordSubmission(bookingType, outcome)
	}
}

// classifyFailure различает отказ бэкенда, сетевую ошибку и нарушение контракта ответа
func classifyFailure(err error) domain.SubmissionFailure {
	var rejected *backend.RejectedError
	switch {
	case errors.As(err, &rejected):
		msg := rejected.Message
		if msg == "" {
			msg = MessageRejected
		}
		return domain.SubmissionFailure{Kind: domain.FailureRejected, Message: msg}
	case errors.Is(err, backend.ErrConnectivity):
		return domain.SubmissionFailure{Kind: domain.FailureConnectivity, Message: MessageConnectivity, Detail: err.Error()}
	case errors.Is(err, backend.ErrInvalidResponse):
		return domain.SubmissionFailure{Kind: domain.FailureInvalidResponse, Message: MessageInvalidResponse, Detail: err.Error()}
	default:
		return domain.SubmissionFailure{Kind: domain.FailureInternal, Message: MessageInternal, Detail: err.Error()}
	}
}

func mapBeginError(err error) error {
	switch {
	case errors.Is(err, sessions.ErrNoWizard):
		return ErrNotStarted
	case errors.Is(err, wizard.ErrSubmissionInProgress):
		return ErrSubmissionInProgress
	case errors.Is(err, wizard.ErrCustomerDetails):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, wizard.ErrInvalidState):
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// localReference генерирует ссылку, когда бэкенд не вернул номер заказа
func localReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.ReferencePrefix + "-" + id[:10]
}
