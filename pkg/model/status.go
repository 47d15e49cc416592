package model

// Status is the booking lifecycle tag. Transitions only move forward:
// a non-cancelled booking may be rescheduled or updated any number of
// times, and any non-cancelled booking may be cancelled. Cancelled is
// terminal and never deleted.
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusUpdated     Status = "updated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusRescheduled, StatusUpdated:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// CanTransition reports whether moving from s to next is a legal forward
// transition. Re-entering confirmed is never allowed.
func (s Status) CanTransition(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == StatusCancelled {
		return false
	}
	switch next {
	case StatusCancelled, StatusRescheduled, StatusUpdated:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
