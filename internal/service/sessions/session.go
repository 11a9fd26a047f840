package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
)

var (
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrNoWizard в сессии не запущен мастер бронирования
	ErrNoWizard = errors.New("sessions: booking flow not started")

	// ErrStaleLoad после загрузки каталога в сессии началась более новая загрузка
	ErrStaleLoad = errors.New("sessions: catalog load superseded")

	// ErrSubmissionInProgress текущее бронирование отправляется, заменить мастер нельзя
	ErrSubmissionInProgress = errors.New("sessions: submission in progress")
)

// Session контекст одного посетителя: язык интерфейса и текущий мастер бронирования.
// Все изменения выполняются под мьютексом сессии.
type Session struct {
	id string

	mu       sync.Mutex
	language string
	wizard   *wizard.Wizard
	loadGen  uint64

	// lastSeen защищен мьютексом реестра
	lastSeen time.Time
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string { return s.id }

// Language возвращает язык сессии
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage меняет язык сессии
func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// BeginLoad отмечает начало загрузки каталога и возвращает токен поколения.
// Результат загрузки применяется, только если после нее не началась новая.
func (s *Session) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadGen++
	return s.loadGen
}

// StartWizard запускает новый мастер поверх каталога, если токен актуален.
// Предыдущий выбор отбрасывается. Мастер, который сейчас отправляется, не заменяется:
// его отправка должна завершиться подтверждением или ошибкой.
func (s *Session) StartWizard(token uint64, catalog *domain.Catalog, clock wizard.TimeProvider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadGen {
		return ErrStaleLoad
	}
	if s.submittingLocked() {
		return ErrSubmissionInProgress
	}
	s.wizard = wizard.New(catalog, clock)
	return nil
}

// Submitting возвращает true, пока бронирование сессии отправляется
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submittingLocked()
}

func (s *Session) submittingLocked() bool {
	return s.wizard != nil && s.wizard.State() == wizard.StateSubmitting
}

// Do выполняет fn над мастером сессии под мьютексом
func (s *Session) Do(fn func(w *wizard.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wizard == nil {
		return ErrNoWizard
	}
	return fn(s.wizard)
}
