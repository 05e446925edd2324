package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func newBooking(id, slotID string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		SlotID:        slotID,
		Status:        domain.StatusPending,
		CustomerName:  "Ivan",
		CustomerEmail: "ivan@example.com",
		Reason:        "checkup",
		Date:          "2025-03-13",
		StartTime:     "10:00",
		CreatedAt:     time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC),
	}
}

func TestRepository_Create_ConflictOnActiveBooking(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("b2", "2025-03-13-10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different slot is unaffected
	_, err = repo.Create(ctx, newBooking("b3", "2025-03-13-10:30"))
	assert.NoError(t, err)
}

func TestRepository_Create_DenialFreesSlot(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusDenied)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("b2", "2025-03-13-10:00"))
	assert.NoError(t, err)
}

func TestRepository_Create_ApprovedStillBlocksSlot(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusApproved)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("b2", "2025-03-13-10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_Create_AtomicUnderConcurrency(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, newBooking(fmt.Sprintf("b%d", i), "2025-03-13-10:00"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent create must win")
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.UpdateStatus(context.Background(), "missing", domain.StatusApproved)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b := newBooking(fmt.Sprintf("b%d", i), fmt.Sprintf("2025-03-13-1%d:00", i))
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b0", all[0].ID)
	assert.Equal(t, "b1", all[1].ID)
	assert.Equal(t, "b2", all[2].ID)
}

func TestRepository_ActiveSlotIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("b2", "2025-03-13-11:00"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b2", domain.StatusDenied)
	require.NoError(t, err)

	ids, err := repo.ActiveSlotIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "2025-03-13-10:00")
	assert.NotContains(t, ids, "2025-03-13-11:00")
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)

	// Mutating the returned record must not leak into the repository
	created.Status = domain.StatusDenied

	stored, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestRepository_SnapshotAndRestore(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "2025-03-13-10:00"))
	require.NoError(t, err)

	snap := repo.Snapshot()
	require.Len(t, snap, 1)

	restored := NewRepository()
	restored.Restore(snap)

	got, err := restored.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-13-10:00", got.SlotID)

	// The restored slot is claimed again
	_, err = restored.Create(ctx, newBooking("b2", "2025-03-13-10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}
