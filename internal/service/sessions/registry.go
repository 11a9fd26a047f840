package sessions

import (
	"sync"
	"time"
)

// Registry реестр сессий посетителей. Сессии не разделяются между посетителями.
// Сессии без обращений дольше idleTTL удаляются вызовом EvictIdle.
type Registry struct {
	mu              sync.Mutex
	sessions        map[string]*Session
	defaultLanguage string
	now             func() time.Time
}

// NewRegistry создает пустой реестр
func NewRegistry(defaultLanguage string) *Registry {
	return &Registry{
		sessions:        make(map[string]*Session),
		defaultLanguage: defaultLanguage,
		now:             time.Now,
	}
}

// GetOrCreate возвращает сессию по ID, создавая ее при первом обращении
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.lastSeen = r.now()
		return s
	}
	s := &Session{id: id, language: r.defaultLanguage, lastSeen: r.now()}
	r.sessions[id] = s
	return s
}

// Get возвращает существующую сессию
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = r.now()
	return s, nil
}

// Len возвращает количество сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle удаляет сессии без обращений дольше idleTTL и возвращает их количество.
// Сессия с отправляемым бронированием не удаляется.
func (r *Registry) EvictIdle(idleTTL time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-idleTTL)
	evicted := 0
	for id, s := range r.sessions {
		if !s.lastSeen.Before(deadline) || s.Submitting() {
			continue
		}
		delete(r.sessions, id)
		evicted++
	}
	return evicted
}

// RunJanitor периодически удаляет простаивающие сессии до закрытия stop
func (r *Registry) RunJanitor(idleTTL, interval time.Duration, stop <-chan struct{}, onEvict func(n int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if n := r.EvictIdle(idleTTL); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}
