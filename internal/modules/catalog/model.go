// README: Catalog reference data: locations, vehicle classes and route fees.
package catalog

import "cabdesk/internal/types"

// Location is a named point usable as pickup or drop-off. Maintained by the
// admin tooling; read-only for the quote flow.
type Location struct {
	ID       types.ID
	Name     string
	Position types.Point
}

// Vehicle is a vehicle class with a flat initial charge and a passenger ceiling.
type Vehicle struct {
	ID            types.ID
	Name          string
	InitialCharge int64
	// PerKmPrice is carried for the admin tooling but never enters fare
	// computation; routes are priced flat per fee entry.
	PerKmPrice   int64
	MaxPassenger int
}

// FeeEntry prices one directional route for one vehicle class. LocationA and
// LocationB hold location *names*, not ids: the admin tooling joins fees to
// locations by name and renaming a location orphans its fee rows. The ids are
// kept on the row so a later re-keying is a data migration only.
type FeeEntry struct {
	ID        types.ID
	LocationA string
	LocationB string
	Vehicle   Vehicle
	Fee       int64
	// MappingKey is "locationA|locationB|vehicleID", unique per catalog.
	MappingKey string
}

// Snapshot is an immutable view of the whole catalog, consistent for the
// duration of one quote operation.
type Snapshot struct {
	Locations []Location
	Vehicles  []Vehicle
	Fees      []FeeEntry
}

func (s Snapshot) LocationByID(id types.ID) (Location, bool) {
	for _, l := range s.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

func (s Snapshot) VehicleByID(id types.ID) (Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
