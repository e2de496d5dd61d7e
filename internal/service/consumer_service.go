package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"

	"literinth-be/internal/dto"
	"literinth-be/internal/model"
	"literinth-be/internal/repository/unitofwork"
	"literinth-be/pkg/events"
	pktNats "literinth-be/pkg/nats"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the engagement topic: every event becomes a
// system_logs row and is forwarded to NATS for the moderation feed.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EngagementEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal engagement message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details, err := json.Marshal(payload.Data)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal event details: %v", err)
		msg.Ack()
		return
	}

	module := "engagement"
	entry := &model.SystemLog{
		Level:   "info",
		Module:  &module,
		Message: payload.Type,
		Details: datatypes.JSON(details),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist engagement event %s: %v", payload.Type, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Data,
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			// The log row is already committed; the feed is best effort.
			log.Printf("[WARN] Failed to forward %s to NATS: %v", payload.Type, err)
		}
	}

	msg.Ack()
}
