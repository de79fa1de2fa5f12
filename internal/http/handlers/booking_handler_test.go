// README: HTTP tests for booking submission.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/http/handlers"
	"cabdesk/internal/modules/booking"
	"cabdesk/internal/types"
)

type memoryBookingStore struct {
	created []*booking.Booking
}

func (m *memoryBookingStore) Create(_ context.Context, b *booking.Booking) error {
	m.created = append(m.created, b)
	return nil
}

func (m *memoryBookingStore) Get(_ context.Context, id types.ID) (*booking.Booking, error) {
	for _, b := range m.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, booking.ErrNotFound
}

func buildBookingRouter(store *memoryBookingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := booking.NewService(store, demoCatalog(), nil, "USD")
	h := handlers.NewBookingHandler(svc)

	r := gin.New()
	r.POST("/api/bookings", h.Submit)
	r.GET("/api/bookings/:id", h.Get)
	return r
}

func validBookingBody() map[string]any {
	return map[string]any{
		"first_name":  "Ada",
		"last_name":   "Okafor",
		"email":       "ada@example.com",
		"mobile":      "+15550100",
		"date":        "2026-09-12",
		"time":        "14:30",
		"trip_type":   "one-way",
		"adults":      2,
		"children":    1,
		"pickup_name": "Airport",
		"drop_name":   "Downtown",
		"vehicle_id":  "v1",
		"base_fee":    60,
		"currency":    "USD",
	}
}

func TestSubmitBooking_Success(t *testing.T) {
	store := &memoryBookingStore{}
	r := buildBookingRouter(store)

	w := doJSON(r, http.MethodPost, "/api/bookings", validBookingBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		BookingID string `json:"booking_id"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "received" || resp.BookingID == "" {
		t.Errorf("response: %+v", resp)
	}

	w = doJSON(r, http.MethodGet, "/api/bookings/"+resp.BookingID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}
}

func TestSubmitBooking_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"tampered fee", func(b map[string]any) { b["base_fee"] = 1 }, http.StatusConflict},
		{"over capacity", func(b map[string]any) { b["adults"] = 3; b["children"] = 2 }, http.StatusConflict},
		{"unpriced route", func(b map[string]any) { b["drop_name"] = "Suburb" }, http.StatusConflict},
		{"missing email", func(b map[string]any) { b["email"] = "" }, http.StatusBadRequest},
		{"zero adults", func(b map[string]any) { b["adults"] = 0 }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryBookingStore{}
			r := buildBookingRouter(store)
			body := validBookingBody()
			tt.mutate(body)

			w := doJSON(r, http.MethodPost, "/api/bookings", body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.want, w.Body.String())
			}
			if len(store.created) != 0 {
				t.Errorf("rejected submission was persisted")
			}
		})
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	r := buildBookingRouter(&memoryBookingStore{})
	if w := doJSON(r, http.MethodGet, "/api/bookings/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
