package trip

import (
	"sort"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Store is the process-wide keyed storage of trip records. It is an
// explicitly constructed component so tests can create isolated
// instances; there is no package-level singleton.
//
// Updates to the same id are last-write-wins. The intended flow only
// updates a record in a strict causal sequence (itinerary attach, then
// booking), so no per-record locking is layered on top of the cache's
// own map lock.
type Store struct {
	records *gocache.Cache
}

// NewStore creates an empty Store. ttl bounds record retention; zero or
// negative means records are kept for the life of the process.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		return &Store{records: gocache.New(gocache.NoExpiration, 0)}
	}
	return &Store{records: gocache.New(ttl, ttl)}
}

// Create stores a new record for the given preferences: fresh id,
// creation timestamp, no itinerary, not booked.
func (s *Store) Create(p Preferences) Trip {
	t := PreferencesToTrip(p)
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	s.records.SetDefault(t.ID, t)
	return t
}

// Get looks up a trip by id. A missing id is not an error; the caller
// decides whether that is a 404 or an internal failure.
func (s *Store) Get(id string) (Trip, bool) {
	v, ok := s.records.Get(id)
	if !ok {
		return Trip{}, false
	}
	return v.(Trip), true
}

// AttachItinerary replaces the itinerary of the identified trip.
// Returns false when the id is unknown.
func (s *Store) AttachItinerary(id string, it *GeneratedItinerary) (Trip, bool) {
	t, ok := s.Get(id)
	if !ok {
		return Trip{}, false
	}
	t.GeneratedItinerary = it
	s.records.SetDefault(id, t)
	return t, true
}

// MarkBooked sets the booked flag. Idempotent: re-marking an already
// booked trip succeeds. Returns false when the id is unknown.
func (s *Store) MarkBooked(id string) (Trip, bool) {
	t, ok := s.Get(id)
	if !ok {
		return Trip{}, false
	}
	t.IsBooked = true
	s.records.SetDefault(id, t)
	return t, true
}

// ListAll returns every record ordered by creation time, most recent first.
func (s *Store) ListAll() []Trip {
	items := s.records.Items()
	out := make([]Trip, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Trip))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
