package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	parcelservice "parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

// carrierEvent событие от трекинг-систем перевозчиков. Метка статуса может
// быть как базовой, так и операционной, нормализация на стороне сервиса.
type carrierEvent struct {
	ParcelID string `json:"parcel_id"`
	Status   string `json:"status"`
	Notify   bool   `json:"notify"`
}

type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, parcelService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("parcel.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("parcel.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event carrierEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.status.changed processing")

	parcel, err := h.parcelService.ChangeStatus(ctx, event.ParcelID, event.Status, event.Notify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcelservice.ErrInvalidStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler unknown status label")

		case errors.Is(err, parcelservice.ErrParcelNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler parcel not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("parcel", parcel.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", parcel.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
