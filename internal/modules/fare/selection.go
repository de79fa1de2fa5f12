// README: Trip selection state machine with reset and capacity-guard rules.
package fare

import (
	"fmt"

	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/types"
)

// Selection is the working state of one booking attempt. Every mutation
// recomputes the quote from scratch; changing the route always clears the
// selected vehicle and the quote before anything else happens.
type Selection struct {
	PickupID   types.ID `json:"pickup_id,omitempty"`
	DropID     types.ID `json:"drop_id,omitempty"`
	PickupName string   `json:"pickup_name,omitempty"`
	DropName   string   `json:"drop_name,omitempty"`

	TripType   TripType   `json:"trip_type"`
	Passengers Passengers `json:"passengers"`

	VehicleSelected bool            `json:"vehicle_selected"`
	Vehicle         catalog.Vehicle `json:"vehicle,omitempty"`
	RouteFee        int64           `json:"route_fee"`

	// DefaultCapacity is the ceiling applied before a vehicle is selected.
	DefaultCapacity int `json:"default_capacity"`

	// Message carries the counter-guard text; empty when the last
	// adjustment succeeded.
	Message string `json:"message,omitempty"`

	Quote Quote `json:"quote"`
}

// NewSelection starts a fresh booking attempt: one adult, one-way, nothing
// selected.
func NewSelection(defaultCapacity int) Selection {
	return Selection{
		TripType:        TripOneWay,
		Passengers:      Passengers{Adults: 1},
		DefaultCapacity: defaultCapacity,
	}
}

// SetRoute records a new pickup/drop pair. The previously selected vehicle
// and quote are invalidated unconditionally; they never survive a route
// change.
func (s *Selection) SetRoute(pickupID, dropID types.ID, pickupName, dropName string) {
	s.VehicleSelected = false
	s.Vehicle = catalog.Vehicle{}
	s.RouteFee = 0
	s.Quote = Quote{}
	s.Message = ""

	s.PickupID = pickupID
	s.DropID = dropID
	s.PickupName = pickupName
	s.DropName = dropName
}

// SelectVehicle picks one of the matched options and recomputes.
func (s *Selection) SelectVehicle(opt VehicleOption) {
	s.VehicleSelected = true
	s.Vehicle = opt.Vehicle
	s.RouteFee = opt.Fee
	s.recompute()
}

func (s *Selection) SetTripType(t TripType) {
	s.TripType = t
	s.recompute()
}

// Capacity is the active passenger ceiling: the chosen vehicle's maximum, or
// the nominal default before any vehicle is picked.
func (s *Selection) Capacity() int {
	if s.VehicleSelected {
		return s.Vehicle.MaxPassenger
	}
	return s.DefaultCapacity
}

// IncrementAdults adds one adult unless that would exceed the active
// ceiling. A rejected increment leaves the counts untouched and sets the
// guard message; a successful one clears it.
func (s *Selection) IncrementAdults() bool {
	return s.increment(&s.Passengers.Adults)
}

func (s *Selection) IncrementChildren() bool {
	return s.increment(&s.Passengers.Children)
}

// DecrementAdults removes one adult, never dropping below 1. Decrements are
// allowed even if the current state is over capacity.
func (s *Selection) DecrementAdults() bool {
	return s.decrement(&s.Passengers.Adults, 1)
}

func (s *Selection) DecrementChildren() bool {
	return s.decrement(&s.Passengers.Children, 0)
}

func (s *Selection) increment(count *int) bool {
	max := s.Capacity()
	if s.Passengers.Total()+1 > max {
		s.Message = fmt.Sprintf("Cannot exceed maximum capacity of %d passengers", max)
		return false
	}
	*count++
	s.Message = ""
	s.recompute()
	return true
}

func (s *Selection) decrement(count *int, floor int) bool {
	if *count-1 < floor {
		return false
	}
	*count--
	s.Message = ""
	s.recompute()
	return true
}

// recompute rebuilds the quote from current inputs. No vehicle means no
// quote; stale error text never survives a valid recomputation because
// Compute starts from zero every time.
func (s *Selection) recompute() {
	if !s.VehicleSelected {
		s.Quote = Quote{}
		return
	}
	s.Quote = Compute(s.RouteFee, s.Vehicle, s.TripType, s.Passengers)
}
