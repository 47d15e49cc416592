package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"room not found", ResourceNotFound("room-1"), CodeResourceNotFound, http.StatusNotFound},
		{"user not found", PrincipalNotFound("user-1"), CodePrincipalNotFound, http.StatusNotFound},
		{"booking not found", BookingNotFound("booking-1"), CodeBookingNotFound, http.StatusNotFound},
		{"slot conflict", TimeSlotConflict("taken"), CodeTimeSlotConflict, http.StatusConflict},
		{"validation", Validation("bad"), CodeValidationError, http.StatusBadRequest},
		{"outside business hours", OutsideBusinessHours(9, 17), CodeOutsideBusinessHours, http.StatusBadRequest},
		{"past time", PastTimeNotAllowed(), CodePastTimeNotAllowed, http.StatusBadRequest},
		{"cancelled booking update", BookingCancelled(), CodeBookingCancelled, http.StatusBadRequest},
		{"double cancel", AlreadyCancelled(), CodeAlreadyCancelled, http.StatusBadRequest},
		{"invalid date", InvalidDate("bad date"), CodeInvalidDate, http.StatusBadRequest},
		{"availability fault", AvailabilityFetchFailed(errors.New("boom")), CodeAvailabilityFetchFailed, http.StatusInternalServerError},
		{"create fault", CreateFailed(errors.New("boom")), CodeCreateFailed, http.StatusInternalServerError},
		{"update fault", UpdateFailed(errors.New("boom")), CodeUpdateFailed, http.StatusInternalServerError},
		{"invalid input", InvalidInput("bad body"), CodeInvalidInput, http.StatusBadRequest},
		{"internal", Internal("oops", errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
			if tt.err.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestOutsideBusinessHours_Message(t *testing.T) {
	err := OutsideBusinessHours(9, 17)
	want := "Bookings must be between 09:00 and 17:00 local time"
	if err.Message != want {
		t.Errorf("expected %q, got %q", want, err.Message)
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("disconnected")
	err := Wrap(cause, CodeInternal, "storage failure", http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
	if got := err.Error(); got != "InternalError: storage failure (caused by: disconnected)" {
		t.Errorf("unexpected Error(): %q", got)
	}

	plain := New(CodeValidationError, "bad", http.StatusBadRequest)
	if got := plain.Error(); got != "ValidationError: bad" {
		t.Errorf("unexpected Error(): %q", got)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := Validation("bad").WithDetails(map[string]any{"field": "title"})
	if err.Details["field"] != "title" {
		t.Errorf("expected details to carry field, got %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	original := BookingNotFound("abc")
	if got := AsAppError(original); got != original {
		t.Error("expected AppError to pass through unchanged")
	}

	raw := errors.New("connection reset")
	wrapped := AsAppError(raw)
	if wrapped.Code != CodeInternal {
		t.Errorf("expected internal code, got %q", wrapped.Code)
	}
	if !errors.Is(wrapped, raw) {
		t.Error("expected original error to be preserved as cause")
	}
	if IsAppError(raw) {
		t.Error("expected raw error not to be an AppError")
	}
}
