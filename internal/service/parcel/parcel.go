package parcel

import (
	"context"
	"fmt"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type Parcel struct {
	repository       Repository
	customerProvider CustomerProvider
	notifier         Notifier
	txManager        TxManager
	logger           logger.Logger
}

func New(
	repository Repository,
	customerProvider CustomerProvider,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Parcel {
	return &Parcel{
		repository:       repository,
		customerProvider: customerProvider,
		notifier:         notifier,
		txManager:        txManager,
		logger:           log,
	}
}

func (s *Parcel) ListParcels(ctx context.Context, filter entities.ParcelFilter) (*entities.ParcelPage, error) {
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if !isValidPagination(filter.Page, filter.PageSize) {
		return nil, ErrInvalidPagination
	}

	if filter.Status != "" && filter.Status != entities.ParcelStatusAll {
		normalized, ok := entities.NormalizeParcelStatus(filter.Status.String())
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = normalized
	}

	parcels, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	return &entities.ParcelPage{
		Parcels: parcels,
		Total:   total,
	}, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	if !isValidParcelID(id) {
		return nil, ErrInvalidParcelID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return parcel, nil
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.ParcelRef == nil ||
		parcelModify.ReceiveDate == nil ||
		parcelModify.CustomerCode == nil {
		return nil, ErrMissingRequiredFields
	}

	if parcelModify.Status == nil {
		defaultStatus := entities.ParcelPending
		parcelModify.Status = &defaultStatus
	} else {
		normalized, ok := entities.NormalizeParcelStatus(parcelModify.Status.String())
		if !ok {
			return nil, ErrInvalidStatus
		}
		parcelModify.Status = &normalized
	}

	var created *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		owner, err := s.customerProvider.GetByCode(ctx, *parcelModify.CustomerCode)
		if err != nil {
			return fmt.Errorf("resolve parcel owner: %w", err)
		}
		parcelModify.CustomerID = &owner.ID

		id, err := s.repository.Create(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		created, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get created parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Parcel) UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.ID == nil || !isValidParcelID(*parcelModify.ID) {
		return nil, ErrInvalidParcelID
	}

	if parcelModify.Status != nil {
		normalized, ok := entities.NormalizeParcelStatus(parcelModify.Status.String())
		if !ok {
			return nil, ErrInvalidStatus
		}
		parcelModify.Status = &normalized
	}

	err := s.repository.Update(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}

	parcel, err := s.repository.GetByID(ctx, *parcelModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get updated parcel: %w", err)
	}

	return parcel, nil
}

// ChangeStatus переводит посылку в новый статус без ограничений на переходы.
// Повторное применение того же статуса не является ошибкой.
func (s *Parcel) ChangeStatus(ctx context.Context, id string, statusLabel string, notify bool) (*entities.Parcel, error) {
	if !isValidParcelID(id) {
		return nil, ErrInvalidParcelID
	}

	newStatus, ok := entities.NormalizeParcelStatus(statusLabel)
	if !ok {
		return nil, ErrInvalidStatus
	}

	before, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel before status change: %w", err)
	}

	err = s.repository.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update parcel status: %w", err)
	}

	updated, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel after status change: %w", err)
	}

	if notify {
		change := entities.ParcelStatusChange{
			ParcelID:     updated.ID,
			ParcelRef:    updated.ParcelRef,
			CustomerCode: updated.CustomerCode,
			OldStatus:    before.Status,
			NewStatus:    updated.Status,
			ChangedAt:    time.Now().UTC(),
		}
		// уведомление не влияет на результат операции
		if err := s.notifier.NotifyStatusChange(ctx, change); err != nil {
			s.logger.Warn("parcel status change notification failed",
				logger.NewField("parcel_id", updated.ID),
				logger.NewField("error", err.Error()),
			)
		}
	}

	return updated, nil
}

func (s *Parcel) CountOverdueParcels(ctx context.Context) (int64, error) {
	count, err := s.repository.CountOverdue(ctx)
	if err != nil {
		return 0, fmt.Errorf("count overdue parcels: %w", err)
	}

	return count, nil
}
