package customer

import "time"

type CustomerDB struct {
	ID           string
	CustomerCode string
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerModifyDB struct {
	ID           *string
	CustomerCode *string
	Email        *string
	Name         *string
	Phone        *string
	PasswordHash *string
	Role         *string
	Status       *string
}
