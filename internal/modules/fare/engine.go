// README: Pure fare computation: route/vehicle matching and fee calculation.
package fare

import (
	"fmt"

	"cabdesk/internal/modules/catalog"
)

// MatchVehicles returns the vehicles with a fee entry for the exact ordered
// (pickup, drop) pair, in catalog order. Matching is directional and
// case-sensitive name equality on both ends: an A->B entry never serves B->A
// and no normalisation is applied, because the admin tooling keys fee rows by
// location name. An unset pickup or drop matches nothing.
func MatchVehicles(pickupName, dropName string, fees []catalog.FeeEntry) []VehicleOption {
	if pickupName == "" || dropName == "" {
		return nil
	}
	var out []VehicleOption
	for _, f := range fees {
		if f.LocationA == pickupName && f.LocationB == dropName {
			out = append(out, VehicleOption{Vehicle: f.Vehicle, Fee: f.Fee})
		}
	}
	return out
}

// Compute prices one combination from scratch. The capacity check runs
// first; an over-capacity composition yields an invalid quote with zero
// fees. Otherwise the base fee is the route fee plus the vehicle's flat
// initial charge, and a round trip doubles the summed total (sum first,
// then double). The vehicle's per-km price is never consulted.
func Compute(routeFee int64, v catalog.Vehicle, trip TripType, p Passengers) Quote {
	total := p.Total()
	if total > v.MaxPassenger {
		return Quote{
			IsValid:     false,
			ErrorReason: fmt.Sprintf("Total passengers (%d) exceed vehicle capacity (%d)", total, v.MaxPassenger),
		}
	}

	base := routeFee + v.InitialCharge
	fee := base
	if trip == TripRoundTrip {
		fee = fee * 2
	}
	return Quote{BaseFee: base, TotalFee: fee, IsValid: true}
}
