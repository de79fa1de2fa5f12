// README: Fare engine types: trip, passengers, quote, vehicle options.
package fare

import "cabdesk/internal/modules/catalog"

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

func ValidTripType(t TripType) bool {
	return t == TripOneWay || t == TripRoundTrip
}

// Passengers is the rider composition. Adults never drops below 1,
// Children never below 0.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (p Passengers) Total() int {
	return p.Adults + p.Children
}

// Quote is the priced result for one (route fee, vehicle, trip type,
// passengers) combination. Fees are zero whenever IsValid is false.
type Quote struct {
	BaseFee     int64  `json:"base_fee"`
	TotalFee    int64  `json:"total_fee"`
	IsValid     bool   `json:"is_valid"`
	ErrorReason string `json:"error_reason,omitempty"`
}

// VehicleOption is a vehicle that can service the selected route, annotated
// with that route's flat fee.
type VehicleOption struct {
	Vehicle catalog.Vehicle
	Fee     int64
}
