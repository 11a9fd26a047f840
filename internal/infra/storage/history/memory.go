package history

import (
	"context"
	"sync"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// MemoryRepository история в памяти процесса, по сессиям
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]domain.HistoryRecord
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string][]domain.HistoryRecord)}
}

// Append добавляет запись в конец истории сессии
func (r *MemoryRepository) Append(ctx context.Context, sessionID string, record domain.HistoryRecord) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[sessionID] = append(r.records[sessionID], record)
	return nil
}

// List возвращает историю сессии в порядке добавления
func (r *MemoryRepository) List(ctx context.Context, sessionID string) ([]domain.HistoryRecord, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HistoryRecord, len(r.records[sessionID]))
	copy(out, r.records[sessionID])
	return out, nil
}
