// README: Booking aggregate and submission request.
package booking

import (
	"time"

	"cabdesk/internal/modules/fare"
	"cabdesk/internal/types"
)

type Status string

const (
	StatusReceived  Status = "received"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Request is the submission payload assembled by the booking widget: rider
// contact/schedule fields plus the trip selection and the fee the rider was
// shown. The fee is re-derived server-side before anything is persisted.
type Request struct {
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email"`
	Mobile      string        `json:"mobile"`
	FlightInfo  string        `json:"flight_info,omitempty"`
	DriverNotes string        `json:"driver_notes,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	TripType    fare.TripType `json:"trip_type"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	PickupName  string        `json:"pickup_name"`
	DropName    string        `json:"drop_name"`
	VehicleID   types.ID      `json:"vehicle_id"`
	VehicleName string        `json:"vehicle_name"`
	BaseFee     int64         `json:"base_fee"`
	Currency    string        `json:"currency"`
}

type Booking struct {
	ID          types.ID
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	FlightInfo  string
	DriverNotes string
	Date        string
	Time        string
	TripType    fare.TripType
	Adults      int
	Children    int
	PickupName  string
	DropName    string
	VehicleID   types.ID
	VehicleName string
	BaseFee     int64
	TotalFee    int64
	Currency    string
	Status      Status
	CreatedAt   time.Time
}
