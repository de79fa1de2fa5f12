package fare

import (
	"strings"
	"testing"
)

func selectedSelection() Selection {
	sel := NewSelection(4)
	sel.SetRoute("l1", "l2", "Airport", "Downtown")
	sel.SelectVehicle(VehicleOption{Vehicle: testVehicle, Fee: 50})
	return sel
}

func TestNewSelection_Defaults(t *testing.T) {
	sel := NewSelection(4)
	if sel.Passengers.Adults != 1 || sel.Passengers.Children != 0 {
		t.Errorf("fresh selection passengers = %+v, want 1 adult", sel.Passengers)
	}
	if sel.TripType != TripOneWay {
		t.Errorf("fresh selection trip type = %q, want one-way", sel.TripType)
	}
	if sel.Capacity() != 4 {
		t.Errorf("default capacity = %d, want 4", sel.Capacity())
	}
}

func TestSelection_RouteChangeResetsVehicleAndQuote(t *testing.T) {
	sel := selectedSelection()
	if !sel.Quote.IsValid || sel.Quote.TotalFee != 60 {
		t.Fatalf("setup: quote = %+v", sel.Quote)
	}

	sel.SetRoute("l1", "l3", "Airport", "Harbour")

	if sel.VehicleSelected {
		t.Error("vehicle survived a route change")
	}
	if sel.Quote != (Quote{}) {
		t.Errorf("quote survived a route change: %+v", sel.Quote)
	}
	if sel.RouteFee != 0 {
		t.Errorf("route fee survived a route change: %d", sel.RouteFee)
	}
	// Capacity falls back to the nominal default once no vehicle is selected.
	if sel.Capacity() != 4 {
		t.Errorf("capacity after reset = %d, want default 4", sel.Capacity())
	}
}

func TestSelection_TripTypeRecomputes(t *testing.T) {
	sel := selectedSelection()
	sel.SetTripType(TripRoundTrip)
	if sel.Quote.TotalFee != 120 || sel.Quote.BaseFee != 60 {
		t.Errorf("round trip quote = %+v, want total 120 base 60", sel.Quote)
	}
	sel.SetTripType(TripOneWay)
	if sel.Quote.TotalFee != 60 {
		t.Errorf("back to one-way quote = %+v, want total 60", sel.Quote)
	}
}

func TestSelection_CounterFloors(t *testing.T) {
	sel := NewSelection(4)
	for i := 0; i < 10; i++ {
		sel.DecrementAdults()
		sel.DecrementChildren()
	}
	if sel.Passengers.Adults != 1 {
		t.Errorf("adults = %d after repeated decrements, want 1", sel.Passengers.Adults)
	}
	if sel.Passengers.Children != 0 {
		t.Errorf("children = %d after repeated decrements, want 0", sel.Passengers.Children)
	}
}

func TestSelection_IncrementGuard_DefaultCeiling(t *testing.T) {
	sel := NewSelection(4)
	// 1 adult to start; three more fills the default ceiling.
	for i := 0; i < 3; i++ {
		if !sel.IncrementAdults() {
			t.Fatalf("increment %d rejected below capacity", i)
		}
	}
	if sel.IncrementChildren() {
		t.Error("increment past default capacity was allowed")
	}
	if sel.Passengers.Total() != 4 {
		t.Errorf("total = %d after rejected increment, want 4", sel.Passengers.Total())
	}
	if !strings.Contains(sel.Message, "maximum capacity of 4") {
		t.Errorf("guard message = %q", sel.Message)
	}
}

func TestSelection_IncrementGuard_VehicleCeiling(t *testing.T) {
	sel := selectedSelection() // testVehicle, max 4
	sel.IncrementAdults()      // 2
	sel.IncrementChildren()    // 3
	sel.IncrementChildren()    // 4
	if sel.IncrementAdults() {
		t.Error("increment past vehicle capacity was allowed")
	}
	if sel.Message != "Cannot exceed maximum capacity of 4 passengers" {
		t.Errorf("guard message = %q", sel.Message)
	}

	// A successful adjustment clears the message and recomputes.
	if !sel.DecrementChildren() {
		t.Fatal("decrement rejected above floor")
	}
	if sel.Message != "" {
		t.Errorf("message not cleared after successful adjustment: %q", sel.Message)
	}
	if !sel.Quote.IsValid || sel.Quote.TotalFee != 60 {
		t.Errorf("quote after adjustment = %+v", sel.Quote)
	}
}

func TestSelection_EveryMutationRecomputes(t *testing.T) {
	sel := selectedSelection()
	sel.IncrementAdults()
	sel.IncrementChildren()
	sel.IncrementChildren() // total 4, still valid
	if !sel.Quote.IsValid {
		t.Fatalf("quote at capacity = %+v", sel.Quote)
	}

	// Selecting a smaller vehicle for the same route invalidates the quote.
	small := testVehicle
	small.ID = "v3"
	small.MaxPassenger = 3
	sel.SelectVehicle(VehicleOption{Vehicle: small, Fee: 50})
	if sel.Quote.IsValid {
		t.Error("quote valid with 4 passengers in a 3-seat vehicle")
	}
	if sel.Quote.BaseFee != 0 || sel.Quote.TotalFee != 0 {
		t.Errorf("invalid quote fees not zeroed: %+v", sel.Quote)
	}

	// Dropping back under capacity re-clears the error.
	sel.DecrementChildren()
	if !sel.Quote.IsValid || sel.Quote.ErrorReason != "" {
		t.Errorf("quote after recovery = %+v", sel.Quote)
	}
}
