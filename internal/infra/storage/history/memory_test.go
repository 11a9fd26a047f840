package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

func TestMemoryRepository_InsertionOrderPerSession(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "a", domain.HistoryRecord{Reference: "DMR-1"}))
	require.NoError(t, repo.Append(ctx, "b", domain.HistoryRecord{Reference: "DMR-2"}))
	require.NoError(t, repo.Append(ctx, "a", domain.HistoryRecord{Reference: "DMR-3"}))

	got, err := repo.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "DMR-1", got[0].Reference)
	assert.Equal(t, "DMR-3", got[1].Reference)

	got, err = repo.List(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, "a", domain.HistoryRecord{Reference: "DMR-1"}))

	got, err := repo.List(ctx, "a")
	require.NoError(t, err)
	got[0].Reference = "changed"

	again, err := repo.List(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "DMR-1", again[0].Reference)
}

func TestMemoryRepository_EmptySession(t *testing.T) {
	repo := NewMemoryRepository()

	assert.ErrorIs(t, repo.Append(context.Background(), "", domain.HistoryRecord{}), ErrEmptySession)
	_, err := repo.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySession)
}
