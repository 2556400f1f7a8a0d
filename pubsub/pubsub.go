package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"hits/cache"
)

// HitEventName is published on every recorded hit; data carries the key.
const HitEventName = "hit"

type HandlerFunc func(data map[string]interface{})

// PubSub fans events out through Redis so every instance sees hits recorded
// by its peers. The WebSocket hub subscribes to feed connected clients.
type PubSub struct {
	redisStore *cache.RedisStore
}

func NewPubSub(redisStore *cache.RedisStore) *PubSub {
	return &PubSub{redisStore: redisStore}
}

// Subscribe registers a handler for one event name. The subscription runs
// on its own goroutine for the life of the process.
func (ps *PubSub) Subscribe(event string, handler HandlerFunc) {
	go func() {
		sub := ps.redisStore.Client.Subscribe(ps.redisStore.Ctx, "events")
		ch := sub.Channel()

		for msg := range ch {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				fmt.Println("Decode error:", err)
				continue
			}

			if evt, ok := payload["event"].(string); ok && evt == event {
				if data, ok := payload["data"].(map[string]interface{}); ok {
					handler(data)
				}
			}
		}
	}()
}

// Publish sends an event to all subscribers across instances.
func (ps *PubSub) Publish(event string, data map[string]interface{}) error {
	payload := map[string]interface{}{
		"event": event,
		"data":  data,
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return ps.redisStore.Client.Publish(context.Background(), "events", bytes).Err()
}

// PublishHit announces that key was just incremented.
func (ps *PubSub) PublishHit(key string) error {
	return ps.Publish(HitEventName, map[string]interface{}{"key": key})
}
