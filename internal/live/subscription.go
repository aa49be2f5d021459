package live

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// FetchFunc loads the full current record set of a user.
type FetchFunc[T any] func(ctx context.Context, userID int64) (T, error)

type SubscribeParams struct {
	UserID int64
	Kind   Kind
	// ViewID enforces at most one active subscription per view.
	// A new subscription for the same user, kind and view closes the old one.
	ViewID string
}

// Subscription delivers the full record set once on start and again after
// every change, until it is closed or its context is done.
type Subscription[T any] struct {
	c      chan T
	done   chan struct{}
	cancel context.CancelFunc
}

// C is closed when the subscription ends.
func (s *Subscription[T]) C() <-chan T {
	return s.c
}

func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// Close stops delivery and waits for the subscription goroutine to exit.
func (s *Subscription[T]) Close() {
	s.cancel()
	<-s.done
}

// Subscribe starts a subscription. Without a user it returns an already
// finished subscription which delivers nothing.
func Subscribe[T any](ctx context.Context, hub *Hub, params SubscribeParams, fetch FetchFunc[T]) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		c:      make(chan T),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	if params.UserID <= 0 {
		cancel()
		close(sub.c)
		close(sub.done)
		return sub
	}

	t := topic{userID: params.UserID, kind: params.Kind}
	id, signals, deregister := hub.listen(t)

	release := func() {}
	if params.ViewID != "" {
		key := viewKey{topic: t, viewID: params.ViewID}
		hub.claimView(key, id, cancel)
		release = func() { hub.releaseView(key, id) }
	}

	go func() {
		defer close(sub.done)
		defer close(sub.c)
		defer release()
		defer deregister()
		sub.run(ctx, params, signals, fetch)
	}()

	return sub
}

func (s *Subscription[T]) run(ctx context.Context, params SubscribeParams, signals <-chan struct{}, fetch FetchFunc[T]) {
	for {
		snapshot, err := fetch(ctx, params.UserID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// keep the last delivered snapshot, retry on the next change
			log.Errorf("live: fetch [%s] for user %d: %s", params.Kind, params.UserID, err)
		} else {
			select {
			case s.c <- snapshot:
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-signals:
		case <-ctx.Done():
			return
		}
	}
}
