package live

import (
	"context"
	"sync"

	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
)

// Kind names a per-user record collection that can be watched.
type Kind string

const (
	KindLifts        Kind = "lifts"
	KindRuns         Kind = "runs"
	KindHeartRate    Kind = "hr"
	KindBodyweight   Kind = "bodyweight"
	KindWorkouts     Kind = "workouts"
	KindExerciseLogs Kind = "exercise-logs"
	KindPhotos       Kind = "photos"
	KindReminders    Kind = "reminders"
)

type topic struct {
	userID int64
	kind   Kind
}

type viewKey struct {
	topic
	viewID string
}

type activeView struct {
	id     int
	cancel context.CancelFunc
}

// Hub fans change notifications out to the subscriptions of a user.
// Each listener gets a 1-buffered signal channel; signals that arrive
// while one is pending are merged, since every delivery is a full snapshot.
type Hub struct {
	mu        sync.Mutex
	nextID    int
	listeners map[topic]map[int]chan struct{}
	views     map[viewKey]activeView
	metrics   *metrics.Manager
}

func NewHub(metricsManager *metrics.Manager) *Hub {
	return &Hub{
		listeners: make(map[topic]map[int]chan struct{}),
		views:     make(map[viewKey]activeView),
		metrics:   metricsManager,
	}
}

// Notify wakes all subscriptions watching kind for userID. It never blocks.
func (h *Hub) Notify(_ context.Context, userID int64, kind Kind) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.listeners[topic{userID: userID, kind: kind}] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) listen(t topic) (int, <-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan struct{}, 1)
	if h.listeners[t] == nil {
		h.listeners[t] = make(map[int]chan struct{})
	}
	h.listeners[t][id] = ch
	if h.metrics != nil {
		h.metrics.GaugeLiveSubscriptions.Inc()
	}

	deregister := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.listeners[t][id]; !ok {
			return
		}
		delete(h.listeners[t], id)
		if len(h.listeners[t]) == 0 {
			delete(h.listeners, t)
		}
		if h.metrics != nil {
			h.metrics.GaugeLiveSubscriptions.Dec()
		}
	}

	return id, ch, deregister
}

// claimView registers cancel as the active subscription of a view and
// cancels the one it replaces.
func (h *Hub) claimView(key viewKey, id int, cancel context.CancelFunc) {
	h.mu.Lock()
	previous, ok := h.views[key]
	h.views[key] = activeView{id: id, cancel: cancel}
	h.mu.Unlock()

	if ok {
		previous.cancel()
	}
}

func (h *Hub) releaseView(key viewKey, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.views[key]; ok && current.id == id {
		delete(h.views, key)
	}
}

// ListenerCount reports how many subscriptions watch kind for userID.
func (h *Hub) ListenerCount(userID int64, kind Kind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[topic{userID: userID, kind: kind}])
}
