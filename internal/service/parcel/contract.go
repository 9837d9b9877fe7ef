//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, int64, error)
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	Create(ctx context.Context, parcelModify entities.ParcelModify) (string, error)
	Update(ctx context.Context, parcelModify entities.ParcelModify) error
	UpdateStatus(ctx context.Context, id string, status entities.ParcelStatusType) error
	CountOverdue(ctx context.Context) (int64, error)
}

type CustomerProvider interface {
	GetByCode(ctx context.Context, customerCode string) (*entities.Customer, error)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, change entities.ParcelStatusChange) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
