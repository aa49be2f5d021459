package live

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const ChangesChannel = "fitness:changes"

// Change is the message published on ChangesChannel after a write.
type Change struct {
	UserID int64 `json:"userId"`
	Kind   Kind  `json:"kind"`
}

// Bus carries change notifications between service instances over redis
// pub/sub and hands them to the local hub.
type Bus struct {
	redisClient *redis.Client
	hub         *Hub
}

func NewBus(redisClient *redis.Client, hub *Hub) *Bus {
	return &Bus{
		redisClient: redisClient,
		hub:         hub,
	}
}

// Notify publishes a change. When redis is unavailable, local subscribers
// are still woken up.
func (b *Bus) Notify(ctx context.Context, userID int64, kind Kind) {
	payload, err := json.Marshal(Change{UserID: userID, Kind: kind})
	if err != nil {
		log.Errorf("live bus: marshal change: %s", err)
		return
	}

	if err := b.redisClient.Publish(ctx, ChangesChannel, string(payload)).Err(); err != nil {
		log.Errorf("live bus: publish [%s] for user %d: %s", kind, userID, err)
		b.hub.Notify(ctx, userID, kind)
	}
}

// Run consumes ChangesChannel until ctx is done.
func (b *Bus) Run(ctx context.Context) error {
	pubsub := b.redisClient.Subscribe(ctx, ChangesChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			log.Errorf("live bus: close pubsub: %s", err)
		}
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", ChangesChannel, err)
	}
	log.Debugf("live bus: subscribed to %s", ChangesChannel)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.handleMessage(ctx, msg.Payload)
		}
	}
}

func (b *Bus) handleMessage(ctx context.Context, payload string) {
	var change Change
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		log.Warnf("live bus: bad message %q: %s", payload, err)
		return
	}
	if change.UserID <= 0 || change.Kind == "" {
		log.Warnf("live bus: incomplete message %q", payload)
		return
	}
	b.hub.Notify(ctx, change.UserID, change.Kind)
}
