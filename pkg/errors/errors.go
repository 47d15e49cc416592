package errors

import (
	"fmt"
	"net/http"
)

// Stable error codes exposed to API clients. Transport code maps each of
// these to a status category; clients are expected to switch on the string.
const (
	CodeResourceNotFound        = "ResourceNotFound"
	CodePrincipalNotFound       = "PrincipalNotFound"
	CodeBookingNotFound         = "BookingNotFound"
	CodeTimeSlotConflict        = "TimeSlotConflict"
	CodeValidationError         = "ValidationError"
	CodeOutsideBusinessHours    = "OutsideBusinessHours"
	CodePastTimeNotAllowed      = "PastTimeNotAllowed"
	CodeBookingCancelled        = "BookingCancelled"
	CodeAlreadyCancelled        = "AlreadyCancelled"
	CodeInvalidDate             = "InvalidDate"
	CodeAvailabilityFetchFailed = "AvailabilityFetchFailed"
	CodeCreateFailed            = "CreateFailed"
	CodeUpdateFailed            = "UpdateFailed"
	CodeInvalidInput            = "InvalidInput"
	CodeInternal                = "InternalError"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func ResourceNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeResourceNotFound,
		Message:    "Room with the provided ID does not exist",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"room_id": id},
	}
}

func PrincipalNotFound(id string) *AppError {
	return &AppError{
		Code:       CodePrincipalNotFound,
		Message:    "User with the provided ID does not exist",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"user_id": id},
	}
}

func BookingNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeBookingNotFound,
		Message:    "The requested booking does not exist",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"booking_id": id},
	}
}

func TimeSlotConflict(message string) *AppError {
	return &AppError{
		Code:       CodeTimeSlotConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Code:       CodeValidationError,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func OutsideBusinessHours(openHour, closeHour int) *AppError {
	return &AppError{
		Code:       CodeOutsideBusinessHours,
		Message:    fmt.Sprintf("Bookings must be between %02d:00 and %02d:00 local time", openHour, closeHour),
		HTTPStatus: http.StatusBadRequest,
	}
}

func PastTimeNotAllowed() *AppError {
	return &AppError{
		Code:       CodePastTimeNotAllowed,
		Message:    "Cannot book times in the past",
		HTTPStatus: http.StatusBadRequest,
	}
}

func BookingCancelled() *AppError {
	return &AppError{
		Code:       CodeBookingCancelled,
		Message:    "Cannot update a cancelled booking",
		HTTPStatus: http.StatusBadRequest,
	}
}

func AlreadyCancelled() *AppError {
	return &AppError{
		Code:       CodeAlreadyCancelled,
		Message:    "Booking is already cancelled",
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidDate(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidDate,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func AvailabilityFetchFailed(err error) *AppError {
	return &AppError{
		Code:       CodeAvailabilityFetchFailed,
		Message:    "An error occurred while checking room availability",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func CreateFailed(err error) *AppError {
	return &AppError{
		Code:       CodeCreateFailed,
		Message:    "An error occurred while creating the booking",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func UpdateFailed(err error) *AppError {
	return &AppError{
		Code:       CodeUpdateFailed,
		Message:    "An error occurred while updating the booking",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError returns err as an *AppError, downgrading anything unexpected
// to an opaque internal error so raw storage faults never reach clients.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
