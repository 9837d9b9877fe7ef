//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"parcel-service/internal/entities"
)

type CustomerProvider interface {
	GetByCode(ctx context.Context, customerCode string) (*entities.Customer, error)
}

type PasswordComparer interface {
	Compare(hash, password string) error
}
