package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// 2025-03-12 is a Wednesday, so 2025-03-13-10:00 is inside the horizon
var testNow = time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type fakePersister struct {
	calls int
}

func (p *fakePersister) PersistAsync() { p.calls++ }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *bookingRepo.Repository, *fakePersister) {
	t.Helper()
	repo := bookingRepo.NewRepository()
	persister := &fakePersister{}
	uc := NewUseCase(repo, persister, domain.DefaultHorizonWeeks, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: testNow})
	return uc, repo, persister
}

func validRequest() *Request {
	return &Request{
		SlotID: "2025-03-13-10:00",
		Name:   "Ivan",
		Email:  "ivan@example.com",
		Reason: "checkup",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, _, persister := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-03-13-10:00", resp.SlotID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Ivan", resp.Name)
	assert.Equal(t, "ivan@example.com", resp.Email)
	assert.Equal(t, "checkup", resp.Reason)

	// Slot date and time are denormalized onto the booking
	assert.Equal(t, "2025-03-13", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.True(t, resp.CreatedAt.Equal(testNow))

	assert.Equal(t, 1, persister.calls)
}

func TestUseCase_Execute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "empty name reported before empty email",
			mutate:  func(r *Request) { r.Name = ""; r.Email = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "whitespace-only name",
			mutate:  func(r *Request) { r.Name = "   " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty email",
			mutate:  func(r *Request) { r.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "email without at sign",
			mutate:  func(r *Request) { r.Email = "foo" },
			wantErr: ErrInvalidEmailFormat,
		},
		{
			name:    "empty reason",
			mutate:  func(r *Request) { r.Reason = "" },
			wantErr: ErrReasonRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, persister := newTestUseCase(t)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, persister.calls, "validation failure must not persist")
		})
	}
}

func TestUseCase_Execute_SlotNotFound(t *testing.T) {
	tests := []struct {
		name   string
		slotID string
	}{
		{name: "unknown slot id", slotID: "not-a-slot"},
		{name: "weekend date", slotID: "2025-03-15-10:00"},
		{name: "past date", slotID: "2025-03-10-10:00"},
		{name: "beyond horizon", slotID: "2025-04-07-10:00"},
		{name: "off-grid time", slotID: "2025-03-13-10:17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase(t)

			req := validRequest()
			req.SlotID = tt.slotID

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotNotFound)
		})
	}
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Petr"
	req.Email = "petr@example.com"

	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_DeniedBookingFreesSlot(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, first.ID, domain.StatusDenied)
	require.NoError(t, err)

	second, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
