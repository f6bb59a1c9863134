package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"paybyphone/parking"
	"paybyphone/pricing"
)

var (
	// ErrNotFound means the session identifier is unknown to the store.
	// The boundary redirects to the start of the flow on this error.
	ErrNotFound = errors.New("session not found")

	// ErrAlreadyPaid means the session is settled and its duration and
	// price can no longer change.
	ErrAlreadyPaid = errors.New("session already paid")
)

// DefaultVehicleType is used when the vehicle form leaves the type blank.
const DefaultVehicleType = "Voiture"

// Store owns all parking sessions for the lifetime of the process.
// Sessions are never deleted. All access goes through the store mutex,
// so it is safe for concurrent request handlers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// SetNow overrides the store's clock. Test use only.
func (s *Store) SetNow(now func() time.Time) {
	s.now = now
}

// Create registers a new unpaid session and returns a copy of it.
// The plate is trimmed and upper-cased, the zone name resolved through the
// zone directory. Always succeeds.
func (s *Store) Create(zoneCode, plate, vehicleType, description string) Session {
	if vehicleType == "" {
		vehicleType = DefaultVehicleType
	}
	zone := parking.Resolve(zoneCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:          s.newID(),
		ZoneCode:    zoneCode,
		ZoneName:    zone.Name,
		Plate:       strings.ToUpper(strings.TrimSpace(plate)),
		VehicleType: vehicleType,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.sessions[sess.ID] = sess
	s.order = append(s.order, sess.ID)

	return *sess
}

// newID returns a short identifier not present in the store. Callers must
// hold the write lock.
func (s *Store) newID() string {
	for {
		id := uuid.NewString()[:8]
		if _, taken := s.sessions[id]; !taken {
			return id
		}
	}
}

// Get returns a copy of the session, or ErrNotFound.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// SetDuration records the chosen duration and its price. Re-selecting
// overwrites both (last write wins) until the session is paid.
func (s *Store) SetDuration(id string, minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.Paid {
		return ErrAlreadyPaid
	}

	sess.DurationMinutes = minutes
	sess.Price = pricing.For(minutes)
	return nil
}

// MarkPaid settles the session and returns its end time. Idempotent: the
// first call sets paid and end time = now + duration, later calls return
// the stored end time unchanged.
func (s *Store) MarkPaid(id string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	if sess.Paid {
		return *sess.EndTime, nil
	}

	end := s.now().Add(time.Duration(sess.DurationMinutes) * time.Minute)
	sess.Paid = true
	sess.EndTime = &end
	return end, nil
}

// ListAll returns snapshot copies of every session in creation order.
func (s *Store) ListAll() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Session, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.sessions[id])
	}
	return out
}

// Stats aggregates the store at call time. Active sessions are paid
// sessions whose end time is strictly in the future.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	zones := make(map[string]struct{})
	st := Stats{TotalSessions: len(s.sessions)}

	for _, sess := range s.sessions {
		zones[sess.ZoneCode] = struct{}{}
		if !sess.Paid {
			continue
		}
		st.PaidSessions++
		st.TotalRevenue += sess.Price
		if sess.EndTime != nil && sess.EndTime.After(now) {
			st.ActiveSessions++
		}
	}
	st.DistinctZones = len(zones)

	return st
}
