package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrCustomerInactive      = errors.New("customer is inactive")
	ErrInvalidToken          = errors.New("invalid token")
)
