package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "roomdesk/internal/bookings/errors"
	"roomdesk/internal/bookings/repository"
	"roomdesk/internal/bookings/validator"
	roomserrors "roomdesk/internal/rooms/errors"
	roomsrepo "roomdesk/internal/rooms/repository"
	userserrors "roomdesk/internal/users/errors"
	usersrepo "roomdesk/internal/users/repository"
	"roomdesk/pkg/config"
	apperrors "roomdesk/pkg/errors"
	"roomdesk/pkg/events"
	"roomdesk/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error)
	Update(ctx context.Context, id string, req *model.UpdateBookingRequest) (*model.BookingDetail, error)
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.BookingDetail, error)
	ListByUser(ctx context.Context, userID string) ([]*model.BookingDetail, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.RoomLockRepository
	rooms     roomsrepo.RoomRepository
	users     usersrepo.UserRepository
	validator *validator.BookingValidator
	publisher *events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.RoomLockRepository,
	rooms roomsrepo.RoomRepository,
	users usersrepo.UserRepository,
	bookingValidator *validator.BookingValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		rooms:     rooms,
		users:     users,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed").
			WithDetails(map[string]any{"error": err.Error()})
	}

	// Client times are civil wall clock in the business timezone; storage
	// is always UTC.
	startUTC := s.cfg.TZ.ToUTC(req.StartTime)
	endUTC := s.cfg.TZ.ToUTC(req.EndTime)

	if appErr := s.validateTimes(startUTC, endUTC); appErr != nil {
		return nil, appErr
	}

	room, err := s.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) || errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.ResourceNotFound(req.RoomID)
		}
		return nil, apperrors.Internal("Failed to verify room existence", err)
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
			return nil, apperrors.PrincipalNotFound(req.UserID)
		}
		return nil, apperrors.Internal("Failed to verify user existence", err)
	}

	// Advisory lock serialises the scan-then-insert window per room; the
	// transaction re-checks overlap so the lock's TTL expiry is never the
	// only line of defence.
	lockID, err := s.acquireRoomLock(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	defer s.releaseRoomLock(ctx, lockID)

	now := time.Now().UTC()
	booking := &model.Booking{
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		Title:     req.Title,
		StartTime: startUTC,
		EndTime:   endUTC,
		Status:    model.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		overlapping, err := s.repo.FindConfirmedOverlapping(sessCtx, req.RoomID, startUTC, endUTC, "")
		if err != nil {
			return apperrors.CreateFailed(err)
		}
		if len(overlapping) > 0 {
			return apperrors.TimeSlotConflict("This room is already booked for the requested time slot")
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.CreateFailed(err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "room_id", req.RoomID, "error", err)
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.CreateFailed(err)
	}

	s.publisher.Publish(ctx, events.TypeBookingCreated, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"user_id", booking.UserID,
		"start_time", booking.StartTime,
	)
	return s.toDetail(booking, room, user), nil
}

func (s *bookingService) Update(ctx context.Context, id string, req *model.UpdateBookingRequest) (*model.BookingDetail, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if err := s.validator.ValidateUpdate(req); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Booking validation failed").
			WithDetails(map[string]any{"error": err.Error()})
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == model.StatusCancelled {
		return nil, apperrors.BookingCancelled()
	}

	// A supplied time field is normalized; an unsupplied one keeps its
	// stored instant.
	newStart := booking.StartTime
	newEnd := booking.EndTime
	timeSupplied := req.StartTime != nil || req.EndTime != nil
	if req.StartTime != nil {
		newStart = s.cfg.TZ.ToUTC(*req.StartTime)
	}
	if req.EndTime != nil {
		newEnd = s.cfg.TZ.ToUTC(*req.EndTime)
	}
	timeChanged := !newStart.Equal(booking.StartTime) || !newEnd.Equal(booking.EndTime)

	if timeSupplied {
		if appErr := s.validateTimes(newStart, newEnd); appErr != nil {
			return nil, appErr
		}

		lockID, err := s.acquireRoomLock(ctx, booking.RoomID)
		if err != nil {
			return nil, err
		}
		defer s.releaseRoomLock(ctx, lockID)

		err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
			overlapping, err := s.repo.FindConfirmedOverlapping(sessCtx, booking.RoomID, newStart, newEnd, booking.ID)
			if err != nil {
				return apperrors.UpdateFailed(err)
			}
			if len(overlapping) > 0 {
				return apperrors.TimeSlotConflict("The new time slot conflicts with another booking")
			}
			s.applyUpdate(booking, req, newStart, newEnd, timeChanged)
			return s.persistUpdate(sessCtx, booking)
		})
		if err != nil {
			s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
			if apperrors.IsAppError(err) {
				return nil, err
			}
			return nil, apperrors.UpdateFailed(err)
		}
	} else {
		// Title-only change: interval untouched, no overlap scan needed.
		s.applyUpdate(booking, req, newStart, newEnd, timeChanged)
		if err := s.persistUpdate(ctx, booking); err != nil {
			s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
			return nil, err
		}
	}

	eventType := events.TypeBookingUpdated
	if timeChanged {
		eventType = events.TypeBookingRescheduled
	}
	s.publisher.Publish(ctx, eventType, booking)

	s.cfg.Log.Info("Booking updated successfully", "id", id, "status", booking.Status)
	return s.resolveDetail(ctx, booking), nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == model.StatusCancelled {
		return apperrors.AlreadyCancelled()
	}

	// Soft delete only: the record stays, the status becomes terminal.
	booking.Status = model.StatusCancelled
	booking.UpdatedAt = time.Now().UTC()
	if err := s.persistUpdate(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to cancel booking", "id", id, "error", err)
		return err
	}

	s.publisher.Publish(ctx, events.TypeBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "id", id)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.BookingDetail, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.resolveDetail(ctx, booking), nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]*model.BookingDetail, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	bookings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings for user", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	details := make([]*model.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, s.resolveDetail(ctx, b))
	}
	return details, nil
}

// --- Helpers ---

func (s *bookingService) loadBooking(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.BookingNotFound(id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return booking, nil
}

// validateTimes applies the domain time rules in order; the first failure
// wins. Both instants are UTC.
func (s *bookingService) validateTimes(startUTC, endUTC time.Time) *apperrors.AppError {
	if !endUTC.After(startUTC) {
		return apperrors.Validation("End time must be after start time")
	}

	duration := endUTC.Sub(startUTC)
	if duration < s.cfg.MinBookingDuration {
		return apperrors.Validation(fmt.Sprintf("Booking must be at least %d minutes", int(s.cfg.MinBookingDuration.Minutes())))
	}
	if duration > s.cfg.MaxBookingDuration {
		return apperrors.Validation(fmt.Sprintf("Booking cannot exceed %d hours", int(s.cfg.MaxBookingDuration.Hours())))
	}

	// Hour-component check only: an end of 17:30 local passes because its
	// hour equals the closing hour.
	localStart := s.cfg.TZ.ToLocal(startUTC)
	localEnd := s.cfg.TZ.ToLocal(endUTC)
	if localStart.Hour() < s.cfg.BusinessOpenHour || localEnd.Hour() > s.cfg.BusinessCloseHour {
		return apperrors.OutsideBusinessHours(s.cfg.BusinessOpenHour, s.cfg.BusinessCloseHour)
	}

	if startUTC.Before(time.Now().UTC()) {
		return apperrors.PastTimeNotAllowed()
	}

	return nil
}

func (s *bookingService) applyUpdate(booking *model.Booking, req *model.UpdateBookingRequest, newStart, newEnd time.Time, timeChanged bool) {
	booking.StartTime = newStart
	booking.EndTime = newEnd
	if req.Title != "" {
		booking.Title = req.Title
	}

	next := model.StatusUpdated
	if timeChanged {
		next = model.StatusRescheduled
	}
	if booking.Status.CanTransition(next) {
		booking.Status = next
	}
	booking.UpdatedAt = time.Now().UTC()
}

func (s *bookingService) persistUpdate(ctx context.Context, booking *model.Booking) error {
	if err := s.repo.Update(ctx, booking.ID, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.BookingNotFound(booking.ID)
		}
		return apperrors.UpdateFailed(err)
	}
	return nil
}

func (s *bookingService) acquireRoomLock(ctx context.Context, roomID string) (string, error) {
	lockID := fmt.Sprintf("room_lock_%s", roomID)

	lock := &model.RoomLock{
		ID:        lockID,
		ExpiresAt: time.Now().UTC().Add(s.cfg.LockTTL),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.TimeSlotConflict("This room is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire room lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseRoomLock(ctx context.Context, lockID string) {
	if err := s.lockRepo.Delete(ctx, lockID); err != nil {
		s.cfg.Log.Warn("Failed to release room lock", "lock_id", lockID, "error", err)
	}
}

// resolveDetail attaches display names, falling back to "Unknown" when a
// referenced room or user cannot be resolved.
func (s *bookingService) resolveDetail(ctx context.Context, booking *model.Booking) *model.BookingDetail {
	var room *model.Room
	var user *model.User

	if r, err := s.rooms.FindByID(ctx, booking.RoomID); err == nil {
		room = r
	}
	if u, err := s.users.FindByID(ctx, booking.UserID); err == nil {
		user = u
	}
	return s.toDetail(booking, room, user)
}

func (s *bookingService) toDetail(booking *model.Booking, room *model.Room, user *model.User) *model.BookingDetail {
	roomName := "Unknown"
	if room != nil {
		roomName = room.Name
	}
	userName := "Unknown"
	if user != nil {
		userName = user.Name
	}

	return &model.BookingDetail{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		RoomName:  roomName,
		UserID:    booking.UserID,
		UserName:  userName,
		Title:     booking.Title,
		StartTime: s.cfg.TZ.ToLocal(booking.StartTime),
		EndTime:   s.cfg.TZ.ToLocal(booking.EndTime),
		Status:    booking.Status.String(),
		CreatedAt: s.cfg.TZ.ToLocal(booking.CreatedAt),
	}
}
