// Package notifier публикует события смены статуса посылки в Kafka.
// Доставка не гарантируется вызывающему, сбои публикации только логируются.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type Producer interface {
	Send(topic string, key string, value []byte) error
}

type Notifier struct {
	log      logger.Logger
	producer Producer
	topic    string
}

func New(log logger.Logger, producer Producer, topic string) *Notifier {
	return &Notifier{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
	}
}

type statusChangedEvent struct {
	ParcelID     string `json:"parcel_id"`
	ParcelRef    string `json:"parcel_ref"`
	CustomerCode string `json:"customer_code"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ChangedAt    string `json:"changed_at"`
}

func (n *Notifier) NotifyStatusChange(_ context.Context, change entities.ParcelStatusChange) error {
	event := statusChangedEvent{
		ParcelID:     change.ParcelID,
		ParcelRef:    change.ParcelRef,
		CustomerCode: change.CustomerCode,
		OldStatus:    change.OldStatus.String(),
		NewStatus:    change.NewStatus.String(),
		ChangedAt:    change.ChangedAt.Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	err = n.producer.Send(n.topic, change.ParcelID, payload)
	if err != nil {
		n.log.With(
			logger.NewField("parcel_id", change.ParcelID),
			logger.NewField("error", err),
		).Error("failed to publish status change notification")
		return fmt.Errorf("publish status change: %w", err)
	}

	return nil
}
