// README: Catalog service with an in-process snapshot cache.
package catalog

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"cabdesk/internal/types"
)

const snapshotKey = "catalog:snapshot"

// Source is the read side consumed by the quote and booking flows.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Lister is the store surface the service needs; *Store satisfies it.
type Lister interface {
	ListLocations(ctx context.Context) ([]Location, error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	ListFees(ctx context.Context) ([]FeeEntry, error)
}

type Service struct {
	store Lister
	cache *gocache.Cache
}

func NewService(store Lister, cacheTTL time.Duration) *Service {
	return &Service{
		store: store,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Snapshot returns the cached catalog view, loading it from the store on a
// cold or expired cache. The widget treats the catalog as loaded once per
// booking session; the TTL only bounds how stale admin edits can appear.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	if v, ok := s.cache.Get(snapshotKey); ok {
		return v.(Snapshot), nil
	}

	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	vehicles, err := s.store.ListVehicles(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	fees, err := s.store.ListFees(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Locations: locations, Vehicles: vehicles, Fees: fees}
	s.cache.SetDefault(snapshotKey, snap)
	return snap, nil
}

// Invalidate drops the cached snapshot. Called after every admin mutation.
func (s *Service) Invalidate() {
	s.cache.Delete(snapshotKey)
}

// ResolveLocationName maps a location id to its name for the fee join.
func (s *Service) ResolveLocationName(ctx context.Context, id types.ID) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	l, ok := snap.LocationByID(id)
	if !ok {
		return "", ErrNotFound
	}
	return l.Name, nil
}
