package service

import (
	"context"
	"errors"
	"time"

	bookingsrepo "roomdesk/internal/bookings/repository"
	roomserrors "roomdesk/internal/rooms/errors"
	"roomdesk/internal/rooms/repository"
	"roomdesk/pkg/config"
	apperrors "roomdesk/pkg/errors"
	"roomdesk/pkg/model"
	"roomdesk/pkg/tz"
)

type RoomService interface {
	GetAllRooms(ctx context.Context) ([]*model.Room, error)
	GetAvailability(ctx context.Context, roomID string, date tz.CivilDate) (*model.Availability, error)
}

type roomService struct {
	repo     repository.RoomRepository
	bookings bookingsrepo.BookingRepository
	cfg      *config.Config
}

func NewRoomService(repo repository.RoomRepository, bookings bookingsrepo.BookingRepository, cfg *config.Config) RoomService {
	return &roomService{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
	}
}

func (s *roomService) GetAllRooms(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

// GetAvailability computes one room's calendar day: the ordered list of
// confirmed slots in business-local time, and whether any free gap remains
// within business hours. Storage faults never escape raw; they surface as
// AvailabilityFetchFailed.
func (s *roomService) GetAvailability(ctx context.Context, roomID string, date tz.CivilDate) (*model.Availability, error) {
	room, err := s.repo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) || errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.ResourceNotFound(roomID)
		}
		s.cfg.Log.Error("Failed to fetch room for availability", "room_id", roomID, "error", err)
		return nil, apperrors.AvailabilityFetchFailed(err)
	}

	// The day boundary is the local calendar day, converted to a UTC
	// range, not raw UTC midnight.
	dayStart, dayEnd := s.cfg.TZ.DayRange(date)

	stored, err := s.bookings.FindConfirmedInRange(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch bookings for availability", "room_id", roomID, "date", date.String(), "error", err)
		return nil, apperrors.AvailabilityFetchFailed(err)
	}

	slots := make([]model.BookingSlot, 0, len(stored))
	for _, b := range stored {
		slots = append(slots, model.BookingSlot{
			StartTime: s.cfg.TZ.ToLocal(b.StartTime),
			EndTime:   s.cfg.TZ.ToLocal(b.EndTime),
			Title:     b.Title,
		})
	}

	localMidnight := s.cfg.TZ.ToLocal(dayStart)
	businessOpen := localMidnight.Add(time.Duration(s.cfg.BusinessOpenHour) * time.Hour)
	businessClose := localMidnight.Add(time.Duration(s.cfg.BusinessCloseHour) * time.Hour)

	return &model.Availability{
		RoomID:         roomID,
		RoomName:       room.Name,
		Date:           localMidnight,
		Bookings:       slots,
		IsAvailable:    len(slots) == 0 || hasGaps(slots, businessOpen, businessClose),
		HasAnyBookings: len(slots) > 0,
	}, nil
}

// hasGaps reports whether any free interval exists inside business hours:
// before the first slot, between consecutive slots, or after the last.
// Callers must ensure slots is non-empty and ordered by start time.
func hasGaps(slots []model.BookingSlot, businessOpen, businessClose time.Time) bool {
	if slots[0].StartTime.After(businessOpen) {
		return true
	}
	for i := 0; i < len(slots)-1; i++ {
		if slots[i].EndTime.Before(slots[i+1].StartTime) {
			return true
		}
	}
	return slots[len(slots)-1].EndTime.Before(businessClose)
}
