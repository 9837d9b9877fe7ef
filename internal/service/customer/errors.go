package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidCustomerCode   = errors.New("invalid customer code")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("resource already exists")
)
