// README: Quote sessions: selection state persisted in Redis per booking attempt.
package fare

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/types"
)

var (
	ErrSessionNotFound    = errors.New("quote session not found")
	ErrUnknownLocation    = errors.New("unknown location")
	ErrVehicleUnavailable = errors.New("vehicle not available for this route")
	ErrBadTripType        = errors.New("invalid trip type")
	ErrBadRequest         = errors.New("bad request")
)

const sessionKeyPrefix = "quote:session:"

// SessionStore persists selections between widget interactions.
type SessionStore interface {
	Save(ctx context.Context, id types.ID, sel Selection) error
	Load(ctx context.Context, id types.ID) (Selection, error)
}

// RedisSessionStore keeps selections as JSON values with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, id types.ID, sel Selection) error {
	body, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+string(id), body, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, id types.ID) (Selection, error) {
	body, err := s.client.Get(ctx, sessionKeyPrefix+string(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Selection{}, ErrSessionNotFound
	}
	if err != nil {
		return Selection{}, err
	}
	var sel Selection
	if err := json.Unmarshal(body, &sel); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// VehicleView is one selectable vehicle in a session view.
type VehicleView struct {
	ID           types.ID `json:"id"`
	Name         string   `json:"name"`
	Fee          int64    `json:"fee"`
	MaxPassenger int      `json:"max_passenger"`
}

// View is the session state returned to the widget after every operation.
type View struct {
	SessionID  types.ID      `json:"session_id"`
	PickupID   types.ID      `json:"pickup_id,omitempty"`
	DropID     types.ID      `json:"drop_id,omitempty"`
	PickupName string        `json:"pickup_name,omitempty"`
	DropName   string        `json:"drop_name,omitempty"`
	TripType   TripType      `json:"trip_type"`
	Adults     int           `json:"adults"`
	Children   int           `json:"children"`
	Vehicles   []VehicleView `json:"vehicles"`
	VehicleID  types.ID      `json:"vehicle_id,omitempty"`
	Quote      Quote         `json:"quote"`
	Message    string        `json:"message,omitempty"`
	Currency   string        `json:"currency"`
}

// Sessions orchestrates quote sessions over the catalog and the engine.
type Sessions struct {
	store           SessionStore
	catalog         catalog.Source
	defaultCapacity int
	currency        string
}

func NewSessions(store SessionStore, cat catalog.Source, defaultCapacity int, currency string) *Sessions {
	return &Sessions{
		store:           store,
		catalog:         cat,
		defaultCapacity: defaultCapacity,
		currency:        currency,
	}
}

// Create starts a new session with a fresh selection.
func (s *Sessions) Create(ctx context.Context) (View, error) {
	id := newID()
	sel := NewSelection(s.defaultCapacity)
	if err := s.store.Save(ctx, id, sel); err != nil {
		return View{}, err
	}
	return s.view(ctx, id, sel)
}

// Get returns the current session state.
func (s *Sessions) Get(ctx context.Context, id types.ID) (View, error) {
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, id, sel)
}

// SetRoute resolves the pickup/drop ids to names and resets the downstream
// state. The vehicle list in the returned view is the fresh match for the
// new pair.
func (s *Sessions) SetRoute(ctx context.Context, id, pickupID, dropID types.ID) (View, error) {
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return View{}, err
	}
	pickup, ok := snap.LocationByID(pickupID)
	if !ok {
		return View{}, ErrUnknownLocation
	}
	drop, ok := snap.LocationByID(dropID)
	if !ok {
		return View{}, ErrUnknownLocation
	}

	sel.SetRoute(pickupID, dropID, pickup.Name, drop.Name)
	if err := s.store.Save(ctx, id, sel); err != nil {
		return View{}, err
	}
	return s.viewWithSnapshot(id, sel, snap), nil
}

// SelectVehicle picks a vehicle out of the current route's options.
func (s *Sessions) SelectVehicle(ctx context.Context, id, vehicleID types.ID) (View, error) {
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return View{}, err
	}

	options := MatchVehicles(sel.PickupName, sel.DropName, snap.Fees)
	var chosen *VehicleOption
	for i := range options {
		if options[i].Vehicle.ID == vehicleID {
			chosen = &options[i]
			break
		}
	}
	if chosen == nil {
		return View{}, ErrVehicleUnavailable
	}

	sel.SelectVehicle(*chosen)
	if err := s.store.Save(ctx, id, sel); err != nil {
		return View{}, err
	}
	return s.viewWithSnapshot(id, sel, snap), nil
}

func (s *Sessions) SetTripType(ctx context.Context, id types.ID, trip TripType) (View, error) {
	if !ValidTripType(trip) {
		return View{}, ErrBadTripType
	}
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	sel.SetTripType(trip)
	if err := s.store.Save(ctx, id, sel); err != nil {
		return View{}, err
	}
	return s.view(ctx, id, sel)
}

// AdjustPassengers applies one counter operation. field is "adults" or
// "children", op is "increment" or "decrement". A guarded rejection is not
// an error: the view carries the message.
func (s *Sessions) AdjustPassengers(ctx context.Context, id types.ID, field, op string) (View, error) {
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}

	switch {
	case field == "adults" && op == "increment":
		sel.IncrementAdults()
	case field == "adults" && op == "decrement":
		sel.DecrementAdults()
	case field == "children" && op == "increment":
		sel.IncrementChildren()
	case field == "children" && op == "decrement":
		sel.DecrementChildren()
	default:
		return View{}, ErrBadRequest
	}

	if err := s.store.Save(ctx, id, sel); err != nil {
		return View{}, err
	}
	return s.view(ctx, id, sel)
}

func (s *Sessions) view(ctx context.Context, id types.ID, sel Selection) (View, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return View{}, err
	}
	return s.viewWithSnapshot(id, sel, snap), nil
}

func (s *Sessions) viewWithSnapshot(id types.ID, sel Selection, snap catalog.Snapshot) View {
	v := View{
		SessionID:  id,
		PickupID:   sel.PickupID,
		DropID:     sel.DropID,
		PickupName: sel.PickupName,
		DropName:   sel.DropName,
		TripType:   sel.TripType,
		Adults:     sel.Passengers.Adults,
		Children:   sel.Passengers.Children,
		Quote:      sel.Quote,
		Message:    sel.Message,
		Currency:   s.currency,
	}
	if sel.VehicleSelected {
		v.VehicleID = sel.Vehicle.ID
	}
	options := MatchVehicles(sel.PickupName, sel.DropName, snap.Fees)
	v.Vehicles = make([]VehicleView, 0, len(options))
	for _, o := range options {
		v.Vehicles = append(v.Vehicles, VehicleView{
			ID:           o.Vehicle.ID,
			Name:         o.Vehicle.Name,
			Fee:          o.Fee,
			MaxPassenger: o.Vehicle.MaxPassenger,
		})
	}
	return v
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
