package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidStatus         = errors.New("invalid parcel status")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")

	ErrParcelNotFound = errors.New("parcel not found")
	ErrConflict       = errors.New("resource already exists")
)
