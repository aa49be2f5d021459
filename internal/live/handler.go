package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

const defaultKeepAlive = 25 * time.Second

// Source loads the snapshot streamed for one kind.
type Source func(ctx context.Context, userID int64) (any, error)

// Handler streams snapshots as server-sent events.
type Handler struct {
	hub       *Hub
	sources   map[Kind]Source
	keepAlive time.Duration
}

func NewHandler(hub *Hub, sources map[Kind]Source) *Handler {
	return &Handler{
		hub:       hub,
		sources:   sources,
		keepAlive: defaultKeepAlive,
	}
}

// HandleStream GET /live/{kind}?view=
func (handler *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	kind := Kind(mux.Vars(r)["kind"])
	source, ok := handler.sources[kind]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown stream: %s", kind), http.StatusNotFound)
		return
	}

	rc := http.NewResponseController(w)
	// streams outlive the server write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", pkg.ContentType.SSE)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Errorf("live: stream [%s] not flushable: %s", kind, err)
		return
	}

	userID, _ := auth.UserIDFromContext(r.Context())
	sub := Subscribe(r.Context(), handler.hub, SubscribeParams{
		UserID: userID,
		Kind:   kind,
		ViewID: r.URL.Query().Get("view"),
	}, FetchFunc[any](source))
	defer sub.Close()

	keepAlive := time.NewTicker(handler.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case snapshot, ok := <-sub.C():
			if !ok {
				return
			}
			data, err := json.Marshal(snapshot)
			if err != nil {
				log.Errorf("live: marshal [%s] snapshot: %s", kind, err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data); err != nil {
				return
			}
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
