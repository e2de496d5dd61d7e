package service

import (
	"context"

	"literinth-be/internal/pkg/logger"
	"literinth-be/internal/websocket"
	"literinth-be/pkg/events"
	pktNats "literinth-be/pkg/nats"
)

type IFeedService interface {
	Start() error
}

// feedService bridges the NATS event stream to the admin moderation
// feed: every catalog event lands on the websocket hub.
type feedService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewFeedService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) IFeedService {
	return &feedService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *feedService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("FeedService", "NATS subscriber unavailable, moderation feed disabled", nil)
		return nil
	}

	return s.subscriber.Subscribe("events.>", "moderation-feed", func(ctx context.Context, event events.Event) error {
		s.hub.Broadcast(event.EventType(), event.Payload())
		return nil
	})
}
