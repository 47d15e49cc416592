package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "roomdesk/pkg/errors"
	"roomdesk/pkg/logger"
	"roomdesk/pkg/model"
)

type mockBookingService struct {
	createFunc     func(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error)
	updateFunc     func(ctx context.Context, id string, req *model.UpdateBookingRequest) (*model.BookingDetail, error)
	cancelFunc     func(ctx context.Context, id string) error
	getByIDFunc    func(ctx context.Context, id string) (*model.BookingDetail, error)
	listByUserFunc func(ctx context.Context, userID string) ([]*model.BookingDetail, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error) {
	return m.createFunc(ctx, req)
}

func (m *mockBookingService) Update(ctx context.Context, id string, req *model.UpdateBookingRequest) (*model.BookingDetail, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) error {
	return m.cancelFunc(ctx, id)
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.BookingDetail, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingService) ListByUser(ctx context.Context, userID string) ([]*model.BookingDetail, error) {
	return m.listByUserFunc(ctx, userID)
}

func newTestRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, logger.New(logger.Config{Level: "error"})).RegisterRoutes(router)
	return router
}

func TestCreate_Handler(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error) {
			if req.Title != "Sprint planning" {
				t.Errorf("expected decoded title, got %q", req.Title)
			}
			return &model.BookingDetail{ID: "b1", Title: req.Title, Status: "confirmed"}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{
		"room_id": "64f1b2c3d4e5f6a7b8c9d0e1",
		"user_id": "64f1b2c3d4e5f6a7b8c9d0e2",
		"start_time": "2027-03-10T10:00:00",
		"end_time": "2027-03-10T11:00:00",
		"title": "Sprint planning"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api/bookings/b1" {
		t.Errorf("expected Location header, got %q", loc)
	}

	var resp struct {
		Data model.BookingDetail `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID != "b1" {
		t.Errorf("expected booking in envelope, got %+v", resp.Data)
	}
}

func TestCreate_Handler_BadBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "InvalidInput" {
		t.Errorf("expected InvalidInput, got %q", resp.Error)
	}
}

func TestCreate_Handler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"conflict", apperrors.TimeSlotConflict("taken"), http.StatusConflict, "TimeSlotConflict"},
		{"room missing", apperrors.ResourceNotFound("r1"), http.StatusNotFound, "ResourceNotFound"},
		{"validation", apperrors.Validation("bad"), http.StatusBadRequest, "ValidationError"},
		{"outside hours", apperrors.OutsideBusinessHours(9, 17), http.StatusBadRequest, "OutsideBusinessHours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				createFunc: func(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingDetail, error) {
					return nil, tt.err
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"title":"x"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, resp.Error)
			}
		})
	}
}

func TestGetByID_Handler(t *testing.T) {
	svc := &mockBookingService{
		getByIDFunc: func(ctx context.Context, id string) (*model.BookingDetail, error) {
			if id != "b1" {
				t.Errorf("expected path id b1, got %q", id)
			}
			return &model.BookingDetail{ID: id, Status: "confirmed"}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCancel_Handler(t *testing.T) {
	svc := &mockBookingService{
		cancelFunc: func(ctx context.Context, id string) error { return nil },
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestCancel_Handler_AlreadyCancelled(t *testing.T) {
	svc := &mockBookingService{
		cancelFunc: func(ctx context.Context, id string) error { return apperrors.AlreadyCancelled() },
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListByUser_Handler(t *testing.T) {
	svc := &mockBookingService{
		listByUserFunc: func(ctx context.Context, userID string) ([]*model.BookingDetail, error) {
			if userID != "u1" {
				t.Errorf("expected path id u1, got %q", userID)
			}
			return []*model.BookingDetail{{ID: "b1"}, {ID: "b2"}}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []model.BookingDetail `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(resp.Data))
	}
}

func TestUpdate_Handler(t *testing.T) {
	svc := &mockBookingService{
		updateFunc: func(ctx context.Context, id string, req *model.UpdateBookingRequest) (*model.BookingDetail, error) {
			if req.StartTime == nil || req.StartTime.Hour != 14 {
				t.Errorf("expected decoded start time, got %+v", req.StartTime)
			}
			return &model.BookingDetail{ID: id, Status: "rescheduled"}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"start_time": "2027-03-10T14:00:00", "end_time": "2027-03-10T15:00:00"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
