// README: Common value objects shared across modules.
package types

// ID is an opaque identifier for catalog rows, sessions and bookings.
type ID string

// Money is an amount in whole currency units (the catalog stores flat fees,
// not fractional prices).
type Money struct {
	Amount   int64
	Currency string
}

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}
