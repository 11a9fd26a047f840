package wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/pricing"
	"github.com/m04kA/DMar-BookingService/pkg/types"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Wizard конечный автомат одного бронирования.
// Переходы выполняются только явными действиями пользователя.
// Не потокобезопасен: владелец (сессия) сериализует вызовы.
type Wizard struct {
	catalog   *domain.Catalog
	clock     TimeProvider
	state     State
	step      Step
	selection domain.Selection

	orderNumber string
	failure     *domain.SubmissionFailure
}

// New создает мастер с пустым выбором поверх загруженного каталога
func New(catalog *domain.Catalog, clock TimeProvider) *Wizard {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Wizard{
		catalog: catalog,
		clock:   clock,
		state:   StateSelectingType,
		step:    StepDates,
		selection: domain.Selection{
			Guests: domain.DefaultGuests,
		},
	}
}

// State возвращает текущее состояние
func (w *Wizard) State() State { return w.state }

// Step возвращает текущий под-шаг custom режима
func (w *Wizard) Step() Step { return w.step }

// Catalog возвращает каталог, на котором построен мастер
func (w *Wizard) Catalog() *domain.Catalog { return w.catalog }

// OrderNumber возвращает номер заказа после подтверждения (может быть пустым)
func (w *Wizard) OrderNumber() string { return w.orderNumber }

// Failure возвращает ошибку последней отправки
func (w *Wizard) Failure() *domain.SubmissionFailure { return w.failure }

// Snapshot возвращает копию текущего выбора
func (w *Wizard) Snapshot() domain.Selection { return w.selection.Clone() }

// SelectMode выбирает пакет или custom бронирование.
// Смена режима очищает выбор другого режима.
func (w *Wizard) SelectMode(mode domain.BookingMode) error {
	if w.state != StateSelectingType {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if w.selection.Mode == mode {
		return nil
	}

	w.selection.Mode = mode
	switch mode {
	case domain.ModePackage:
		w.selection.Custom = nil
		w.selection.Package = &domain.PackageSelection{}
	case domain.ModeCustom:
		w.selection.Package = nil
		w.selection.Custom = &domain.CustomSelection{}
		w.step = StepDates
	}
	return nil
}

// ChoosePackage выбирает пакет по ID (только доступный)
func (w *Wizard) ChoosePackage(id int64) error {
	if err := w.requireSelecting(domain.ModePackage); err != nil {
		return err
	}

	pkg, ok := w.catalog.FindPackage(id)
	if !ok {
		return fmt.Errorf("%w: package id=%d", ErrUnknownItem, id)
	}
	if !pkg.Available() {
		return fmt.Errorf("%w: package id=%d", ErrPackageUnavailable, id)
	}

	w.selection.Package.Package = pkg
	return nil
}

// SetDates задает диапазон дат custom бронирования.
// Неполный диапазон допускается (пользователь выбрал только дату заезда),
// но продолжить с шага дат можно только с валидным диапазоном.
func (w *Wizard) SetDates(dates domain.DateRange) error {
	if err := w.requireSelecting(domain.ModeCustom); err != nil {
		return err
	}
	if !dates.Start.IsZero() && !dates.End.IsZero() {
		if err := dates.Validate(w.today()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDates, err)
		}
	}

	w.selection.Custom.Dates = &dates
	return nil
}

// ChooseAccommodation выбирает единственное проживание
func (w *Wizard) ChooseAccommodation(key domain.AccommodationKey) error {
	if err := w.requireSelecting(domain.ModeCustom); err != nil {
		return err
	}

	acc, ok := w.catalog.FindAccommodation(key)
	if !ok {
		return fmt.Errorf("%w: %s id=%d", ErrUnknownItem, key.Category, key.ID)
	}

	w.selection.Custom.Accommodation = acc
	return nil
}

// ToggleActivity выбирает или снимает выбор активности. Возвращает итоговое состояние выбора.
func (w *Wizard) ToggleActivity(id int64) (bool, error) {
	if err := w.requireSelecting(domain.ModeCustom); err != nil {
		return false, err
	}

	activity, ok := w.catalog.FindActivity(id)
	if !ok {
		return false, fmt.Errorf("%w: activity id=%d", ErrUnknownItem, id)
	}
	return w.selection.Custom.ToggleActivity(*activity), nil
}

// ToggleService выбирает или снимает выбор услуги. Возвращает итоговое состояние выбора.
func (w *Wizard) ToggleService(id int64) (bool, error) {
	if err := w.requireSelecting(domain.ModeCustom); err != nil {
		return false, err
	}

	service, ok := w.catalog.FindService(id)
	if !ok {
		return false, fmt.Errorf("%w: service id=%d", ErrUnknownItem, id)
	}
	return w.selection.Custom.ToggleService(*service), nil
}

// SetGuests задает количество гостей
func (w *Wizard) SetGuests(guests int) error {
	if !w.state.isEditable() {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	if guests < domain.MinGuests || guests > domain.MaxGuests {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidGuests, domain.MinGuests, domain.MaxGuests)
	}
	w.selection.Guests = guests
	return nil
}

// SetCustomer сохраняет контактные данные. Полнота проверяется при отправке.
func (w *Wizard) SetCustomer(details domain.CustomerDetails) error {
	if !w.state.isEditable() {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	w.selection.Customer = details
	return nil
}

// CanContinue возвращает true, если условие выхода с текущего шага выполнено
func (w *Wizard) CanContinue() bool {
	return w.checkExit() == nil
}

// Next переходит на следующий шаг, если условие выхода выполнено
func (w *Wizard) Next() error {
	if err := w.checkExit(); err != nil {
		return err
	}

	if w.selection.Mode == domain.ModeCustom && w.step < StepServices {
		w.step++
		return nil
	}

	w.state = StateDetailsEntry
	return nil
}

// Back возвращается на предыдущий шаг. Выбор на последующих шагах сохраняется.
func (w *Wizard) Back() error {
	switch w.state {
	case StateSelectingType:
		if w.selection.Mode == domain.ModeCustom && w.step > StepDates {
			w.step--
		}
		return nil

	case StateDetailsEntry, StateSubmissionFailed:
		w.state = StateSelectingType
		w.failure = nil
		if w.selection.Mode == domain.ModeCustom {
			w.step = StepServices
		}
		return nil

	case StateSubmitting:
		return ErrSubmissionInProgress

	default:
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
}

// Total возвращает текущую стоимость, если она вычислима
func (w *Wizard) Total() (pricing.Breakdown, bool) {
	if !w.priceable() {
		return pricing.Breakdown{}, false
	}
	b, err := pricing.Total(w.selection)
	if err != nil {
		return pricing.Breakdown{}, false
	}
	return b, true
}

// BeginSubmit захватывает блокировку отправки и возвращает снимок выбора.
// Повторный вызов во время отправки возвращает ErrSubmissionInProgress.
func (w *Wizard) BeginSubmit() (domain.Selection, error) {
	switch w.state {
	case StateSubmitting:
		return domain.Selection{}, ErrSubmissionInProgress
	case StateDetailsEntry, StateSubmissionFailed:
	default:
		return domain.Selection{}, fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}

	if err := w.selection.Customer.Validate(); err != nil {
		return domain.Selection{}, fmt.Errorf("%w: %v", ErrCustomerDetails, err)
	}
	if !w.priceable() {
		return domain.Selection{}, fmt.Errorf("%w: selection is incomplete", ErrInvalidState)
	}

	w.state = StateSubmitting
	w.failure = nil
	return w.selection.Clone(), nil
}

// Confirm завершает отправку успехом
func (w *Wizard) Confirm(orderNumber string) error {
	if w.state != StateSubmitting {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	w.state = StateConfirmed
	w.orderNumber = orderNumber
	return nil
}

// Fail завершает отправку ошибкой; пользователь может исправить данные и отправить снова
func (w *Wizard) Fail(failure domain.SubmissionFailure) error {
	if w.state != StateSubmitting {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	w.state = StateSubmissionFailed
	w.failure = &failure
	return nil
}

// checkExit проверяет условие выхода с текущего шага
func (w *Wizard) checkExit() error {
	if w.state != StateSelectingType {
		return fmt.Errorf("%w: %s", ErrTransitionRefused, w.state)
	}

	switch w.selection.Mode {
	case domain.ModePackage:
		pkg := w.selection.Package.Package
		if pkg == nil {
			return fmt.Errorf("%w: no package chosen", ErrTransitionRefused)
		}
		if !pkg.Available() {
			return fmt.Errorf("%w: package is not available", ErrTransitionRefused)
		}
		return nil

	case domain.ModeCustom:
		// Условия проверяются для текущего и всех пройденных шагов:
		// даты можно изменить и после перехода к следующим шагам.
		custom := w.selection.Custom
		if custom.Dates == nil {
			return fmt.Errorf("%w: dates not chosen", ErrTransitionRefused)
		}
		if err := custom.Dates.Validate(w.today()); err != nil {
			return fmt.Errorf("%w: %v", ErrTransitionRefused, err)
		}
		if w.step >= StepAccommodation && custom.Accommodation == nil {
			return fmt.Errorf("%w: no accommodation chosen", ErrTransitionRefused)
		}
		// активности и услуги опциональны
		return nil

	default:
		return fmt.Errorf("%w: %v", ErrTransitionRefused, ErrModeNotSelected)
	}
}

// priceable возвращает true, если стоимость можно посчитать без ошибки
func (w *Wizard) priceable() bool {
	switch w.selection.Mode {
	case domain.ModePackage:
		return w.selection.Package.Package != nil
	case domain.ModeCustom:
		custom := w.selection.Custom
		if custom.Accommodation == nil || custom.Dates == nil {
			return false
		}
		_, err := pricing.Nights(*custom.Dates)
		return err == nil
	default:
		return false
	}
}

func (w *Wizard) requireSelecting(mode domain.BookingMode) error {
	if w.state != StateSelectingType {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	if w.selection.Mode == "" {
		return ErrModeNotSelected
	}
	if w.selection.Mode != mode {
		return fmt.Errorf("%w: current mode is %s", ErrWrongMode, w.selection.Mode)
	}
	return nil
}

func (w *Wizard) today() types.Date {
	return types.DateOf(w.clock.Now())
}
