// README: Booking service: server-side fare re-validation and single-shot submission.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/modules/fare"
	"cabdesk/internal/types"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("booking not found")
	ErrNoRouteFee       = errors.New("no fee entry for this route and vehicle")
	ErrCapacityExceeded = errors.New("passenger count exceeds vehicle capacity")
	ErrFeeMismatch      = errors.New("submitted fee does not match the computed fare")
)

// Store persists bookings; *PostgresStore satisfies it.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
}

// EventPublisher announces accepted bookings to the notification pipeline.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b *Booking) error
}

type Service struct {
	store     Store
	catalog   catalog.Source
	publisher EventPublisher
	currency  string
}

// NewService wires the booking flow. publisher may be nil, in which case no
// events are emitted and submissions are unaffected.
func NewService(store Store, cat catalog.Source, publisher EventPublisher, currency string) *Service {
	return &Service{store: store, catalog: cat, publisher: publisher, currency: currency}
}

// Submit validates and persists one booking attempt. The fare is recomputed
// from the catalog here; the client-submitted base fee is only compared,
// never trusted. Exactly one attempt: no retries, the caller may resubmit.
func (s *Service) Submit(ctx context.Context, req Request) (types.ID, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	options := fare.MatchVehicles(req.PickupName, req.DropName, snap.Fees)
	var chosen *fare.VehicleOption
	for i := range options {
		if options[i].Vehicle.ID == req.VehicleID {
			chosen = &options[i]
			break
		}
	}
	if chosen == nil {
		return "", ErrNoRouteFee
	}

	quote := fare.Compute(chosen.Fee, chosen.Vehicle, req.TripType, fare.Passengers{
		Adults:   req.Adults,
		Children: req.Children,
	})
	if !quote.IsValid {
		return "", ErrCapacityExceeded
	}
	if req.BaseFee != quote.BaseFee {
		return "", ErrFeeMismatch
	}

	b := &Booking{
		ID:          newID(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		FlightInfo:  req.FlightInfo,
		DriverNotes: req.DriverNotes,
		Date:        req.Date,
		Time:        req.Time,
		TripType:    req.TripType,
		Adults:      req.Adults,
		Children:    req.Children,
		PickupName:  req.PickupName,
		DropName:    req.DropName,
		VehicleID:   chosen.Vehicle.ID,
		VehicleName: chosen.Vehicle.Name,
		BaseFee:     quote.BaseFee,
		TotalFee:    quote.TotalFee,
		Currency:    s.currency,
		Status:      StatusReceived,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}

	// Best effort: a dead broker must not fail an already-persisted booking.
	if s.publisher != nil {
		if err := s.publisher.BookingCreated(ctx, b); err != nil {
			log.Printf("booking %s: publish event: %v", b.ID, err)
		}
	}
	return b.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func validate(req Request) error {
	switch {
	case req.FirstName == "", req.LastName == "", req.Email == "", req.Mobile == "":
		return ErrBadRequest
	case req.Date == "", req.Time == "":
		return ErrBadRequest
	case req.PickupName == "", req.DropName == "", req.VehicleID == "":
		return ErrBadRequest
	case req.Adults < 1, req.Children < 0:
		return ErrBadRequest
	case !fare.ValidTripType(req.TripType):
		return ErrBadRequest
	}
	return nil
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
