package overdue_parcels

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type Service interface {
	CountOverdueParcels(ctx context.Context) (int64, error)
}

type OverdueParcels struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOverdueParcels(log logger.Logger, service Service, interval time.Duration) *OverdueParcels {
	return &OverdueParcels{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OverdueParcels) TTL() time.Duration {
	return o.interval
}

func (o *OverdueParcels) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.CountOverdueParcels(ctxWithTimeout)
	if err != nil {
		return err
	}

	OverdueParcelsGauge.Set(float64(count))

	if count > 0 {
		o.log.With(
			logger.NewField("overdue_parcels", count),
		).Info("overdue parcels sweep")
	}

	return nil
}

func (o *OverdueParcels) Info() string {
	return "overdue parcels sweep"
}
