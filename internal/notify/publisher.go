package notify

import (
	"context"
	"fmt"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
)

// Publisher sends score notifications to the competition channel.
//
// Delivery is at most once with no replay: a listener that is not subscribed
// when the event is published never sees it, and a nil error only means the
// store accepted the message, not that anyone received it.
type Publisher interface {
	PublishScoreUpdate(ctx context.Context, evt domain.LeaderboardEvent) error
}

// StorePublisher publishes through the cache port.
type StorePublisher struct {
	store cache.Store
}

// NewStorePublisher creates a publisher on top of store.
func NewStorePublisher(store cache.Store) *StorePublisher {
	return &StorePublisher{store: store}
}

func (p *StorePublisher) PublishScoreUpdate(ctx context.Context, evt domain.LeaderboardEvent) error {
	channel := cache.LeaderboardChannel(evt.CompetitionID)
	if err := p.store.Publish(ctx, channel, evt); err != nil {
		metrics.NotificationsPublished.WithLabelValues(metrics.ResultFailure).Inc()
		return fmt.Errorf(ErrMsgPublishFailed, err)
	}

	metrics.NotificationsPublished.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPublished, "channel", channel,
		"user_id", evt.UserID, "score", evt.Score)
	return nil
}
