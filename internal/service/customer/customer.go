package customer

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type Customer struct {
	repository Repository
	hasher     PasswordHasher
}

func New(repository Repository, hasher PasswordHasher) *Customer {
	return &Customer{
		repository: repository,
		hasher:     hasher,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (string, error) {
	if customerModify.CustomerCode == nil ||
		customerModify.Email == nil ||
		customerModify.Name == nil ||
		customerModify.Password == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidCustomerCode(*customerModify.CustomerCode) {
		return "", ErrInvalidCustomerCode
	}
	if !isValidEmail(*customerModify.Email) {
		return "", ErrInvalidEmail
	}
	if !isValidPassword(*customerModify.Password) {
		return "", ErrInvalidPassword
	}
	if customerModify.Role != nil && !isValidRole(customerModify.Role.String()) {
		return "", ErrInvalidRole
	}
	if customerModify.Status != nil && !isValidStatus(customerModify.Status.String()) {
		return "", ErrInvalidStatus
	}

	if customerModify.Role == nil {
		defaultRole := entities.DefaultCustomerRole
		customerModify.Role = &defaultRole
	}
	if customerModify.Status == nil {
		defaultStatus := entities.DefaultCustomerStatus
		customerModify.Status = &defaultStatus
	}

	passwordHash, err := s.hasher.Hash(*customerModify.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repository.Create(ctx, customerModify, passwordHash)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	return id, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	if !isValidCustomerID(id) {
		return nil, ErrInvalidCustomerID
	}

	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) GetCustomerByCode(ctx context.Context, customerCode string) (*entities.Customer, error) {
	customer, err := s.repository.GetByCode(ctx, customerCode)
	if err != nil {
		return nil, fmt.Errorf("get customer by code: %w", err)
	}

	return customer, nil
}

func (s *Customer) ListCustomers(ctx context.Context, filter entities.CustomerFilter) (*entities.CustomerPage, error) {
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if !isValidPagination(filter.Page, filter.PageSize) {
		return nil, ErrInvalidPagination
	}
	if filter.Status != "" && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	customers, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return &entities.CustomerPage{
		Customers: customers,
		Total:     total,
	}, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.ID == nil || !isValidCustomerID(*customerModify.ID) {
		return nil, ErrInvalidCustomerID
	}

	if customerModify.CustomerCode == nil &&
		customerModify.Email == nil &&
		customerModify.Name == nil &&
		customerModify.Phone == nil &&
		customerModify.Password == nil &&
		customerModify.Role == nil &&
		customerModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if customerModify.CustomerCode != nil && !isValidCustomerCode(*customerModify.CustomerCode) {
		return nil, ErrInvalidCustomerCode
	}
	if customerModify.Email != nil && !isValidEmail(*customerModify.Email) {
		return nil, ErrInvalidEmail
	}
	if customerModify.Role != nil && !isValidRole(customerModify.Role.String()) {
		return nil, ErrInvalidRole
	}
	if customerModify.Status != nil && !isValidStatus(customerModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	var passwordHash *string
	if customerModify.Password != nil {
		if !isValidPassword(*customerModify.Password) {
			return nil, ErrInvalidPassword
		}
		hash, err := s.hasher.Hash(*customerModify.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = &hash
	}

	customer, err := s.repository.Update(ctx, customerModify, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return customer, nil
}
