package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/pkg/psqlbuilder"
)

const tableName = "booking_history"

// Schema DDL таблицы истории
const Schema = `CREATE TABLE IF NOT EXISTS booking_history (
	id         BIGSERIAL PRIMARY KEY,
	session_id TEXT        NOT NULL,
	reference  TEXT        NOT NULL,
	snapshot   JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS booking_history_session_idx ON booking_history (session_id, id);`

// Repository история бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Migrate создает таблицу, если ее нет
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: Migrate: %v", ErrExecQuery, err)
	}
	return nil
}

// Append добавляет запись в историю сессии
func (r *Repository) Append(ctx context.Context, sessionID string, record domain.HistoryRecord) error {
	query, args, err := appendQuery(sessionID, record)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает историю сессии в порядке добавления
func (r *Repository) List(ctx context.Context, sessionID string) ([]domain.HistoryRecord, error) {
	query, args, err := listQuery(sessionID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.HistoryRecord, 0)
	for rows.Next() {
		var (
			record domain.HistoryRecord
			raw    []byte
		)
		if err := rows.Scan(&record.Reference, &raw, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrScanRow, err)
		}
		if err := decodeSnapshot(raw, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}

func appendQuery(sessionID string, record domain.HistoryRecord) (string, []interface{}, error) {
	if sessionID == "" {
		return "", nil, ErrEmptySession
	}

	raw, err := encodeSnapshot(record)
	if err != nil {
		return "", nil, err
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("session_id", "reference", "snapshot", "created_at").
		Values(sessionID, record.Reference, string(raw), createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func listQuery(sessionID string) (string, []interface{}, error) {
	if sessionID == "" {
		return "", nil, ErrEmptySession
	}

	query, args, err := psqlbuilder.Select("reference", "snapshot", "created_at").
		From(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
