//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModify entities.CustomerModify, passwordHash string) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetByCode(ctx context.Context, customerCode string) (*entities.Customer, error)
	List(ctx context.Context, filter entities.CustomerFilter) ([]entities.Customer, int64, error)
	Update(ctx context.Context, customerModify entities.CustomerModify, passwordHash *string) (*entities.Customer, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
