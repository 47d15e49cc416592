package service

import (
	"context"
	"errors"
	"testing"
	"time"

	roomserrors "roomdesk/internal/rooms/errors"
	"roomdesk/pkg/config"
	mongotx "roomdesk/pkg/db/mongo"
	apperrors "roomdesk/pkg/errors"
	"roomdesk/pkg/logger"
	"roomdesk/pkg/model"
	"roomdesk/pkg/tz"
)

const testRoomID = "64f1b2c3d4e5f6a7b8c9d0e1"

// --- Mocks ---

type mockRoomRepo struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Room, error)
	findAllFunc  func(ctx context.Context) ([]*model.Room, error)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Room{ID: id, Name: "Board Room", Capacity: 12}, nil
}

func (m *mockRoomRepo) FindAll(ctx context.Context) ([]*model.Room, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockBookingRepo struct {
	findInRangeFunc func(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *model.Booking) error { return nil }
func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindConfirmedOverlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]*model.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindConfirmedInRange(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error) {
	if m.findInRangeFunc != nil {
		return m.findInRangeFunc(ctx, roomID, from, to)
	}
	return nil, nil
}
func (m *mockBookingRepo) Update(ctx context.Context, id string, booking *model.Booking) error {
	return nil
}
func (m *mockBookingRepo) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

// --- Fixtures ---

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	normalizer, err := tz.NewNormalizer("Africa/Johannesburg")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return &config.Config{
		Log:               logger.New(logger.Config{Level: "error"}),
		TZ:                normalizer,
		BusinessOpenHour:  9,
		BusinessCloseHour: 17,
	}
}

func newTestService(t *testing.T) (RoomService, *mockRoomRepo, *mockBookingRepo, *config.Config) {
	t.Helper()
	rooms := &mockRoomRepo{}
	bookings := &mockBookingRepo{}
	cfg := newTestConfig(t)
	return NewRoomService(rooms, bookings, cfg), rooms, bookings, cfg
}

var testDate = tz.CivilDate{Year: 2027, Month: time.March, Day: 10}

// stored builds a confirmed booking occupying the given local hours on the
// test date, stored as UTC instants.
func stored(cfg *config.Config, fromHour, toHour int) *model.Booking {
	return &model.Booking{
		ID:        "b1",
		RoomID:    testRoomID,
		Title:     "Standup",
		StartTime: cfg.TZ.ToUTC(tz.CivilTime{Year: testDate.Year, Month: testDate.Month, Day: testDate.Day, Hour: fromHour}),
		EndTime:   cfg.TZ.ToUTC(tz.CivilTime{Year: testDate.Year, Month: testDate.Month, Day: testDate.Day, Hour: toHour}),
		Status:    model.StatusConfirmed,
	}
}

// --- Tests ---

func TestGetAvailability_QueriesLocalDayRange(t *testing.T) {
	svc, _, bookings, _ := newTestService(t)

	var gotFrom, gotTo time.Time
	bookings.findInRangeFunc = func(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error) {
		gotFrom, gotTo = from, to
		return nil, nil
	}

	if _, err := svc.GetAvailability(context.Background(), testRoomID, testDate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Local midnight in Johannesburg (UTC+2) is 22:00 the previous UTC day.
	wantFrom := time.Date(2027, time.March, 9, 22, 0, 0, 0, time.UTC)
	wantTo := time.Date(2027, time.March, 10, 22, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) || !gotTo.Equal(wantTo) {
		t.Errorf("queried [%v, %v), want [%v, %v)", gotFrom, gotTo, wantFrom, wantTo)
	}
}

func TestGetAvailability_NoBookings(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	availability, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !availability.IsAvailable {
		t.Error("expected an empty day to be available")
	}
	if availability.HasAnyBookings {
		t.Error("expected HasAnyBookings to be false")
	}
	if len(availability.Bookings) != 0 {
		t.Errorf("expected no slots, got %d", len(availability.Bookings))
	}
	if availability.RoomName != "Board Room" {
		t.Errorf("expected room name resolved, got %q", availability.RoomName)
	}
}

func TestGetAvailability_GapDetection(t *testing.T) {
	tests := []struct {
		name          string
		slots         func(cfg *config.Config) []*model.Booking
		wantAvailable bool
	}{
		{
			name: "single mid-day booking leaves gaps",
			slots: func(cfg *config.Config) []*model.Booking {
				return []*model.Booking{stored(cfg, 10, 11)}
			},
			wantAvailable: true,
		},
		{
			name: "fully booked business day",
			slots: func(cfg *config.Config) []*model.Booking {
				return []*model.Booking{stored(cfg, 9, 13), stored(cfg, 13, 17)}
			},
			wantAvailable: false,
		},
		{
			name: "gap between back-to-back-ish slots",
			slots: func(cfg *config.Config) []*model.Booking {
				return []*model.Booking{stored(cfg, 9, 12), stored(cfg, 13, 17)}
			},
			wantAvailable: true,
		},
		{
			name: "free tail after last booking",
			slots: func(cfg *config.Config) []*model.Booking {
				return []*model.Booking{stored(cfg, 9, 16)}
			},
			wantAvailable: true,
		},
		{
			name: "free head before first booking",
			slots: func(cfg *config.Config) []*model.Booking {
				return []*model.Booking{stored(cfg, 10, 17)}
			},
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, bookings, cfg := newTestService(t)
			bookings.findInRangeFunc = func(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error) {
				return tt.slots(cfg), nil
			}

			availability, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if availability.IsAvailable != tt.wantAvailable {
				t.Errorf("IsAvailable = %v, want %v", availability.IsAvailable, tt.wantAvailable)
			}
			if !availability.HasAnyBookings {
				t.Error("expected HasAnyBookings to be true")
			}
		})
	}
}

func TestGetAvailability_SlotsInLocalTime(t *testing.T) {
	svc, _, bookings, cfg := newTestService(t)
	bookings.findInRangeFunc = func(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error) {
		return []*model.Booking{stored(cfg, 10, 11)}, nil
	}

	availability, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(availability.Bookings) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(availability.Bookings))
	}

	slot := availability.Bookings[0]
	if slot.StartTime.Hour() != 10 || slot.EndTime.Hour() != 11 {
		t.Errorf("expected local 10:00-11:00, got %v-%v", slot.StartTime, slot.EndTime)
	}
	if slot.Title != "Standup" {
		t.Errorf("expected slot title, got %q", slot.Title)
	}
}

func TestGetAvailability_RoomNotFound(t *testing.T) {
	svc, rooms, _, _ := newTestService(t)
	rooms.findByIDFunc = func(ctx context.Context, id string) (*model.Room, error) {
		return nil, roomserrors.ErrNotFound
	}

	_, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
	assertAppCode(t, err, apperrors.CodeResourceNotFound)
}

func TestGetAvailability_StorageFaults(t *testing.T) {
	t.Run("room lookup fault", func(t *testing.T) {
		svc, rooms, _, _ := newTestService(t)
		rooms.findByIDFunc = func(ctx context.Context, id string) (*model.Room, error) {
			return nil, errors.New("connection reset")
		}
		_, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
		assertAppCode(t, err, apperrors.CodeAvailabilityFetchFailed)
	})

	t.Run("booking scan fault", func(t *testing.T) {
		svc, _, bookings, _ := newTestService(t)
		bookings.findInRangeFunc = func(ctx context.Context, roomID string, from, to time.Time) ([]*model.Booking, error) {
			return nil, errors.New("connection reset")
		}
		_, err := svc.GetAvailability(context.Background(), testRoomID, testDate)
		assertAppCode(t, err, apperrors.CodeAvailabilityFetchFailed)
	})
}

func TestGetAllRooms(t *testing.T) {
	svc, rooms, _, _ := newTestService(t)
	rooms.findAllFunc = func(ctx context.Context) ([]*model.Room, error) {
		return []*model.Room{
			{ID: "r1", Name: "Board Room"},
			{ID: "r2", Name: "Small Meeting Room A"},
		}, nil
	}

	got, err := svc.GetAllRooms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(got))
	}
}

func TestGetAllRooms_Fault(t *testing.T) {
	svc, rooms, _, _ := newTestService(t)
	rooms.findAllFunc = func(ctx context.Context) ([]*model.Room, error) {
		return nil, errors.New("connection reset")
	}

	_, err := svc.GetAllRooms(context.Background())
	assertAppCode(t, err, apperrors.CodeInternal)
}

func assertAppCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", wantCode)
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != wantCode {
		t.Fatalf("expected code %q, got %q (%s)", wantCode, appErr.Code, appErr.Message)
	}
}
