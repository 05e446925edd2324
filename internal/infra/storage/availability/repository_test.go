package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func newRule(id, date string, blocked bool, times ...string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        id,
		Date:      date,
		TimeSlots: times,
		IsBlocked: blocked,
		Reason:    ptr.Ptr("maintenance"),
		CreatedAt: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_ReplaceForDate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.ReplaceForDate(ctx, newRule("r1", "2025-03-13", true, "10:00"))
	require.NoError(t, err)

	// A second rule for the same date replaces the first one
	_, err = repo.ReplaceForDate(ctx, newRule("r2", "2025-03-13", true, "11:00", "11:30"))
	require.NoError(t, err)

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "r2", rules[0].ID)
	assert.Equal(t, []string{"11:00", "11:30"}, rules[0].TimeSlots)

	// The replaced rule id is gone
	assert.ErrorIs(t, repo.Delete(ctx, "r1"), ErrRuleNotFound)
}

func TestRepository_List_SortedByDate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.ReplaceForDate(ctx, newRule("r1", "2025-03-20", true, "10:00"))
	require.NoError(t, err)
	_, err = repo.ReplaceForDate(ctx, newRule("r2", "2025-03-13", true, "10:00"))
	require.NoError(t, err)
	_, err = repo.ReplaceForDate(ctx, newRule("r3", "2025-03-17", false, "10:00"))
	require.NoError(t, err)

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "2025-03-13", rules[0].Date)
	assert.Equal(t, "2025-03-17", rules[1].Date)
	assert.Equal(t, "2025-03-20", rules[2].Date)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.ReplaceForDate(ctx, newRule("r1", "2025-03-13", true, "10:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "r1"))

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rules)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(ctx, "r1"), ErrRuleNotFound)

	// The date is free for a new rule after deletion
	_, err = repo.ReplaceForDate(ctx, newRule("r2", "2025-03-13", true, "12:00"))
	assert.NoError(t, err)
}

func TestRepository_SnapshotAndRestore(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.ReplaceForDate(ctx, newRule("r1", "2025-03-13", true, "10:00"))
	require.NoError(t, err)

	restored := NewRepository()
	restored.Restore(repo.Snapshot())

	rule, err := restored.GetByDate(ctx, "2025-03-13")
	require.NoError(t, err)
	assert.Equal(t, "r1", rule.ID)
	assert.True(t, rule.IsBlocked)
}
