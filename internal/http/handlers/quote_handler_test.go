// README: HTTP tests for the quote session flow.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/http/handlers"
	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/modules/fare"
	"cabdesk/internal/types"
)

// memorySessionStore is a test double for the Redis-backed session store.
type memorySessionStore struct {
	data map[types.ID]fare.Selection
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{data: map[types.ID]fare.Selection{}}
}

func (m *memorySessionStore) Save(_ context.Context, id types.ID, sel fare.Selection) error {
	m.data[id] = sel
	return nil
}

func (m *memorySessionStore) Load(_ context.Context, id types.ID) (fare.Selection, error) {
	sel, ok := m.data[id]
	if !ok {
		return fare.Selection{}, fare.ErrSessionNotFound
	}
	return sel, nil
}

type stubCatalog struct {
	snap catalog.Snapshot
}

func (s *stubCatalog) Snapshot(_ context.Context) (catalog.Snapshot, error) {
	return s.snap, nil
}

func demoCatalog() *stubCatalog {
	sedan := catalog.Vehicle{ID: "v1", Name: "Sedan", InitialCharge: 10, MaxPassenger: 4}
	van := catalog.Vehicle{ID: "v2", Name: "Van", InitialCharge: 20, MaxPassenger: 8}
	return &stubCatalog{snap: catalog.Snapshot{
		Locations: []catalog.Location{
			{ID: "l1", Name: "Airport", Position: types.Point{Lat: 25.08, Lng: 121.23}},
			{ID: "l2", Name: "Downtown", Position: types.Point{Lat: 25.03, Lng: 121.56}},
			{ID: "l3", Name: "Suburb"},
		},
		Vehicles: []catalog.Vehicle{sedan, van},
		Fees: []catalog.FeeEntry{
			{ID: "f1", LocationA: "Airport", LocationB: "Downtown", Vehicle: sedan, Fee: 50},
			{ID: "f2", LocationA: "Airport", LocationB: "Downtown", Vehicle: van, Fee: 80},
		},
	}}
}

func buildQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := fare.NewSessions(newMemorySessionStore(), demoCatalog(), 4, "USD")
	h := handlers.NewQuoteHandler(sessions)

	r := gin.New()
	r.POST("/api/quotes", h.Create)
	r.GET("/api/quotes/:id", h.Get)
	r.PUT("/api/quotes/:id/route", h.SetRoute)
	r.PUT("/api/quotes/:id/vehicle", h.SelectVehicle)
	r.PUT("/api/quotes/:id/trip-type", h.SetTripType)
	r.POST("/api/quotes/:id/passengers", h.AdjustPassengers)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) fare.View {
	t.Helper()
	var v fare.View
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v (body: %s)", err, w.Body.String())
	}
	return v
}

func TestQuoteFlow_EndToEnd(t *testing.T) {
	r := buildQuoteRouter()

	w := doJSON(r, http.MethodPost, "/api/quotes", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	view := decodeView(t, w)
	base := "/api/quotes/" + string(view.SessionID)

	w = doJSON(r, http.MethodPut, base+"/route", map[string]string{"pickup_id": "l1", "drop_id": "l2"})
	if w.Code != http.StatusOK {
		t.Fatalf("set route: %d %s", w.Code, w.Body.String())
	}
	view = decodeView(t, w)
	if len(view.Vehicles) != 2 || view.Vehicles[0].ID != "v1" {
		t.Fatalf("vehicle options: %+v", view.Vehicles)
	}

	w = doJSON(r, http.MethodPut, base+"/vehicle", map[string]string{"vehicle_id": "v1"})
	view = decodeView(t, w)
	if view.Quote.BaseFee != 60 || view.Quote.TotalFee != 60 || !view.Quote.IsValid {
		t.Fatalf("one-way quote: %+v", view.Quote)
	}

	w = doJSON(r, http.MethodPut, base+"/trip-type", map[string]string{"trip_type": "round-trip"})
	view = decodeView(t, w)
	if view.Quote.TotalFee != 120 || view.Quote.BaseFee != 60 {
		t.Fatalf("round-trip quote: %+v", view.Quote)
	}

	w = doJSON(r, http.MethodPost, base+"/passengers", map[string]string{"field": "children", "op": "increment"})
	view = decodeView(t, w)
	if view.Children != 1 {
		t.Fatalf("children = %d", view.Children)
	}
}

func TestQuoteFlow_RouteChangeResets(t *testing.T) {
	r := buildQuoteRouter()

	view := decodeView(t, doJSON(r, http.MethodPost, "/api/quotes", nil))
	base := "/api/quotes/" + string(view.SessionID)
	doJSON(r, http.MethodPut, base+"/route", map[string]string{"pickup_id": "l1", "drop_id": "l2"})
	doJSON(r, http.MethodPut, base+"/vehicle", map[string]string{"vehicle_id": "v1"})

	w := doJSON(r, http.MethodPut, base+"/route", map[string]string{"pickup_id": "l1", "drop_id": "l3"})
	view = decodeView(t, w)
	if view.VehicleID != "" {
		t.Errorf("vehicle survived route change: %q", view.VehicleID)
	}
	if view.Quote.TotalFee != 0 || view.Quote.IsValid {
		t.Errorf("quote survived route change: %+v", view.Quote)
	}
	// Airport -> Suburb is unpriced: empty options, still 200.
	if len(view.Vehicles) != 0 {
		t.Errorf("unpriced route offered vehicles: %+v", view.Vehicles)
	}
}

func TestQuoteFlow_CapacityGuard(t *testing.T) {
	r := buildQuoteRouter()

	view := decodeView(t, doJSON(r, http.MethodPost, "/api/quotes", nil))
	base := "/api/quotes/" + string(view.SessionID)
	doJSON(r, http.MethodPut, base+"/route", map[string]string{"pickup_id": "l1", "drop_id": "l2"})
	doJSON(r, http.MethodPut, base+"/vehicle", map[string]string{"vehicle_id": "v1"})

	for i := 0; i < 3; i++ {
		doJSON(r, http.MethodPost, base+"/passengers", map[string]string{"field": "adults", "op": "increment"})
	}
	w := doJSON(r, http.MethodPost, base+"/passengers", map[string]string{"field": "children", "op": "increment"})
	if w.Code != http.StatusOK {
		t.Fatalf("guarded increment should still be 200, got %d", w.Code)
	}
	view = decodeView(t, w)
	if view.Adults != 4 || view.Children != 0 {
		t.Errorf("counts after rejection: %d adults, %d children", view.Adults, view.Children)
	}
	if view.Message != "Cannot exceed maximum capacity of 4 passengers" {
		t.Errorf("message = %q", view.Message)
	}
}

func TestQuoteFlow_ErrorStatuses(t *testing.T) {
	r := buildQuoteRouter()
	view := decodeView(t, doJSON(r, http.MethodPost, "/api/quotes", nil))
	base := "/api/quotes/" + string(view.SessionID)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown session", http.MethodGet, "/api/quotes/missing", nil, http.StatusNotFound},
		{"unknown location", http.MethodPut, base + "/route", map[string]string{"pickup_id": "l1", "drop_id": "nope"}, http.StatusBadRequest},
		{"missing route fields", http.MethodPut, base + "/route", map[string]string{"pickup_id": "l1"}, http.StatusBadRequest},
		{"vehicle without route", http.MethodPut, base + "/vehicle", map[string]string{"vehicle_id": "v1"}, http.StatusConflict},
		{"bad trip type", http.MethodPut, base + "/trip-type", map[string]string{"trip_type": "loop"}, http.StatusBadRequest},
		{"bad counter op", http.MethodPost, base + "/passengers", map[string]string{"field": "adults", "op": "reset"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
