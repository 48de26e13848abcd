package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cabtour/database/repository"
	cabRepo "cabtour/database/repository/cab"
	routeRepo "cabtour/database/repository/route"
	tourRepo "cabtour/database/repository/tour"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"

	"github.com/google/uuid"
)

// memBookings is an in-memory BookingRepository with the same
// compare-and-set semantics as the Mongo implementation.
type memBookings struct {
	mu      sync.Mutex
	byID    map[string]*models.Booking
	creates int
}

func newMemBookings() *memBookings {
	return &memBookings{byID: map[string]*models.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.BookingReference == b.BookingReference {
			return fmt.Errorf("insert: %w", repository.ErrDuplicateKey)
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.Version, b.CreatedAt, b.UpdatedAt = 1, now, now
	cp := *b
	m.byID[b.ID] = &cp
	m.creates++
	return nil
}

func (m *memBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id string, c models.StatusChange) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if b.Status != c.From {
		return nil, repository.ErrVersionMismatch
	}
	at := c.At
	b.Status = c.To
	b.UpdatedAt = at
	b.Version++
	switch c.To {
	case models.StatusConfirmed:
		b.ConfirmedAt = &at
	case models.StatusInProgress:
		b.StartedAt = &at
	case models.StatusCompleted:
		b.CompletedAt = &at
	case models.StatusCancelled:
		b.CancelledAt = &at
		b.CancelledBy = c.CancelledBy
	}
	if c.AdminNotes != nil {
		b.AdminNotes = *c.AdminNotes
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) matching(f models.BookingFilter) []models.Booking {
	var out []models.Booking
	for _, b := range m.byID {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.UserID != "" && b.UserID != f.UserID {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingReference > out[j].BookingReference })
	return out
}

func (m *memBookings) List(_ context.Context, f models.BookingFilter, p models.Page) ([]models.Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.matching(f)
	start := int(p.Skip())
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (m *memBookings) ListAll(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matching(f), nil
}

func (m *memBookings) CountByStatus(context.Context) (map[models.BookingStatus]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[models.BookingStatus]int64{}
	for _, s := range models.BookingStatuses {
		counts[s] = 0
	}
	for _, b := range m.byID {
		counts[b.Status]++
	}
	return counts, nil
}

func (m *memBookings) CountCreatedBetween(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (m *memBookings) SumPrice(context.Context, models.BookingStatus) (float64, error) {
	return 0, nil
}

func (m *memBookings) EnsureIndexes(context.Context) error { return nil }

func (m *memBookings) status(id string) models.BookingStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id].Status
}

// seed stores b as-is, bypassing Create.
func (m *memBookings) seed(b models.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[b.ID] = &b
}

type fakeUsers struct {
	userRepo.UserRepository
	users map[string]*models.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeCabs struct {
	cabRepo.CabRepository
	cabs map[string]*models.CabOffering
}

func (f *fakeCabs) GetByID(_ context.Context, c models.CabCategory, id string) (*models.CabOffering, error) {
	cab, ok := f.cabs[id]
	if !ok || cab.Category != c {
		return nil, repository.ErrNotFound
	}
	cp := *cab
	return &cp, nil
}

type fakeRoutes struct {
	routeRepo.RouteRepository
	routes map[string]*models.RouteOffering
}

func (f *fakeRoutes) GetByID(_ context.Context, id string) (*models.RouteOffering, error) {
	r, ok := f.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

type fakeTours struct {
	tourRepo.TourRepository
	tours map[string]*models.TourOffering
}

func (f *fakeTours) GetByID(_ context.Context, id string) (*models.TourOffering, error) {
	t, ok := f.tours[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// recordingNotifier counts every call by kind.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []models.NotificationKind
	snaps []models.BookingSnapshot
	err   error
}

func (n *recordingNotifier) record(kind models.NotificationKind, snap models.BookingSnapshot) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, kind)
	n.snaps = append(n.snaps, snap)
	return n.err
}

func (n *recordingNotifier) count(kind models.NotificationKind) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, k := range n.calls {
		if k == kind {
			c++
		}
	}
	return c
}

func (n *recordingNotifier) SendConfirmation(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyConfirmation, s)
}
func (n *recordingNotifier) SendTripStarted(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyTripStarted, s)
}
func (n *recordingNotifier) SendTripCompleted(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyTripCompleted, s)
}
func (n *recordingNotifier) SendCancellation(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyCancellation, s)
}
func (n *recordingNotifier) NotifyAdminNewBooking(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyAdminNew, s)
}
func (n *recordingNotifier) NotifyAdminPublicBooking(_ context.Context, s models.BookingSnapshot) error {
	return n.record(models.NotifyAdminPublic, s)
}
func (n *recordingNotifier) SendLoginOTP(context.Context, string, string, time.Duration) error {
	return nil
}
