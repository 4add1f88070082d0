package cache

import (
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Message is one payload received on a subscribed channel.
type Message struct {
	Channel string
	Pattern string
	Payload []byte
}

// Subscription delivers messages for a pattern until Close is called or the
// connection is lost. Messages published while nothing is subscribed are gone.
type Subscription struct {
	pattern  string
	pubsub   *redis.PubSub
	messages chan Message
	done     chan struct{}
	once     sync.Once
}

func newSubscription(pattern string, ps *redis.PubSub) *Subscription {
	sub := &Subscription{
		pattern:  pattern,
		pubsub:   ps,
		messages: make(chan Message, SubscriptionBufferSize),
		done:     make(chan struct{}),
	}
	go sub.forward()
	return sub
}

func (s *Subscription) forward() {
	defer close(s.messages)
	for msg := range s.pubsub.Channel() {
		m := Message{
			Channel: msg.Channel,
			Pattern: msg.Pattern,
			Payload: []byte(msg.Payload),
		}
		select {
		case s.messages <- m:
		case <-s.done:
			return
		}
	}
}

// Messages is closed once the subscription ends.
func (s *Subscription) Messages() <-chan Message {
	return s.messages
}

func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
		slog.Debug(LogMsgSubscriptionClosed, "pattern", s.pattern)
	})
	return err
}
