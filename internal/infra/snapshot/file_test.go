package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func testSnapshot() *domain.StoreSnapshot {
	return &domain.StoreSnapshot{
		Bookings: []*domain.Booking{
			{
				ID:            "b1",
				SlotID:        "2025-03-13-10:00",
				Status:        domain.StatusApproved,
				CustomerName:  "Ivan",
				CustomerEmail: "ivan@example.com",
				Reason:        "checkup",
				Date:          "2025-03-13",
				StartTime:     "10:00",
				CreatedAt:     time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC),
			},
		},
		AvailabilityRules: []*domain.AvailabilityRule{
			{
				ID:        "r1",
				Date:      "2025-03-14",
				TimeSlots: []string{"11:00"},
				IsBlocked: true,
				CreatedAt: time.Date(2025, 3, 12, 10, 16, 0, 0, time.UTC),
			},
		},
		LastUpdated: time.Date(2025, 3, 12, 10, 17, 0, 0, time.UTC),
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot()))

	got, err := store.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "b1", got.Bookings[0].ID)
	assert.Equal(t, domain.StatusApproved, got.Bookings[0].Status)
	assert.True(t, got.Bookings[0].CreatedAt.Equal(time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC)))

	require.Len(t, got.AvailabilityRules, 1)
	assert.Equal(t, "r1", got.AvailabilityRules[0].ID)
	assert.True(t, got.AvailabilityRules[0].IsBlocked)
}

func TestFileStore_Save_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), testSnapshot()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot()))

	snap := testSnapshot()
	snap.Bookings = nil
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Bookings)
	assert.Len(t, got.AvailabilityRules, 1)
}

func TestFileStore_Load_NotFound(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestFileStore_Load_CorruptedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadSnapshot)
}
