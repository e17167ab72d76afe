package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/geo"
	"carewatch/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var (
	testLogger = slog.New(slog.DiscardHandler)

	// Monday morning, inside any window that names weekdays.
	testBase = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	homeCenter = orb.Point{127.00, 37.50}
)

func fixedClock(t time.Time) nowFunc {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}

// newUserStore returns a store holding one active user.
func newUserStore() (*memory.Store, uuid.UUID) {
	store := memory.NewStore()
	userID := uuid.New()
	store.AddUser(&entity.CareUser{ID: userID, Name: "Kim", IsActive: true})

	return store, userID
}

func homeGeofence(userID uuid.UUID) *entity.Geofence {
	return &entity.Geofence{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "Home",
		CenterLatitude:  homeCenter.Lat(),
		CenterLongitude: homeCenter.Lon(),
		RadiusMeters:    100,
		Type:            entity.GeofenceTypeHome,
		IsActive:        true,
		AlertOnExit:     true,
	}
}

func sampleAt(userID uuid.UUID, p orb.Point, at time.Time) *entity.LocationSample {
	return &entity.LocationSample{
		ID:         uuid.New(),
		UserID:     userID,
		Latitude:   p.Lat(),
		Longitude:  p.Lon(),
		CapturedAt: at,
	}
}

// northOf moves the home center north by the given distance.
func northOf(meters float64) orb.Point {
	return geo.OffsetMeters(homeCenter, meters, 0)
}

// alertRecorder is an AlertDispatcher that keeps every submitted alert.
type alertRecorder struct {
	mu     sync.Mutex
	alerts []*entity.Alert
}

func (r *alertRecorder) Submit(_ context.Context, alert *entity.Alert) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = append(r.alerts, alert)

	return true
}

func (r *alertRecorder) Alerts() []*entity.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.Alert(nil), r.alerts...)
}
