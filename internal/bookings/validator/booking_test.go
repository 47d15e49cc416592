package validator

import (
	"strings"
	"testing"
	"time"

	"roomdesk/pkg/model"
	"roomdesk/pkg/tz"
)

func validCreateRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		RoomID:    "64f1b2c3d4e5f6a7b8c9d0e1",
		UserID:    "64f1b2c3d4e5f6a7b8c9d0e2",
		StartTime: tz.CivilTime{Year: 2027, Month: time.March, Day: 10, Hour: 10},
		EndTime:   tz.CivilTime{Year: 2027, Month: time.March, Day: 10, Hour: 11},
		Title:     "Sprint planning",
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *model.CreateBookingRequest)
		wantError string
	}{
		{
			name:   "valid request",
			mutate: func(req *model.CreateBookingRequest) {},
		},
		{
			name:      "missing room id",
			mutate:    func(req *model.CreateBookingRequest) { req.RoomID = "" },
			wantError: "RoomID is required",
		},
		{
			name:      "malformed room id",
			mutate:    func(req *model.CreateBookingRequest) { req.RoomID = "not-hex" },
			wantError: "RoomID must be a valid ID",
		},
		{
			name:      "missing user id",
			mutate:    func(req *model.CreateBookingRequest) { req.UserID = "" },
			wantError: "UserID is required",
		},
		{
			name:      "missing title",
			mutate:    func(req *model.CreateBookingRequest) { req.Title = "" },
			wantError: "Title is required",
		},
		{
			name:      "whitespace title",
			mutate:    func(req *model.CreateBookingRequest) { req.Title = "   " },
			wantError: "title is required",
		},
		{
			name:      "title too long",
			mutate:    func(req *model.CreateBookingRequest) { req.Title = strings.Repeat("x", 101) },
			wantError: "Title must be at most 100 characters",
		},
		{
			name:      "zero start time",
			mutate:    func(req *model.CreateBookingRequest) { req.StartTime = tz.CivilTime{} },
			wantError: "StartTime",
		},
		{
			name:      "zero end time",
			mutate:    func(req *model.CreateBookingRequest) { req.EndTime = tz.CivilTime{} },
			wantError: "EndTime",
		},
	}

	v := NewBookingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			err := v.ValidateCreate(req)
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("expected error containing %q, got %q", tt.wantError, err.Error())
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	v := NewBookingValidator()
	start := tz.CivilTime{Year: 2027, Month: time.March, Day: 10, Hour: 10}

	tests := []struct {
		name    string
		req     *model.UpdateBookingRequest
		wantErr bool
	}{
		{"title only", &model.UpdateBookingRequest{Title: "Moved"}, false},
		{"start only", &model.UpdateBookingRequest{StartTime: &start}, false},
		{"nothing supplied", &model.UpdateBookingRequest{}, true},
		{"whitespace title only", &model.UpdateBookingRequest{Title: "   "}, true},
		{"title too long", &model.UpdateBookingRequest{Title: strings.Repeat("x", 101)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.req)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Title", Message: "Title is required"},
		{Field: "RoomID", Message: "RoomID must be a valid ID"},
	}
	got := errs.Error()
	if !strings.Contains(got, "2 error(s)") {
		t.Errorf("expected count in message, got %q", got)
	}
	if !strings.Contains(got, "Title: Title is required") {
		t.Errorf("expected field detail in message, got %q", got)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("expected empty message for no errors")
	}
}
