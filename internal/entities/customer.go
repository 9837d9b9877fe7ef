package entities

import "time"

type Customer struct {
	ID           string
	CustomerCode string
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         CustomerRoleType
	Status       CustomerStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerRoleType string

const (
	RoleAdmin    CustomerRoleType = "admin"
	RoleCustomer CustomerRoleType = "customer"
)

const DefaultCustomerRole = RoleCustomer

func (t CustomerRoleType) String() string {
	return string(t)
}

type CustomerStatusType string

const (
	CustomerActive   CustomerStatusType = "active"
	CustomerInactive CustomerStatusType = "inactive"
)

const DefaultCustomerStatus = CustomerActive

func (t CustomerStatusType) String() string {
	return string(t)
}

type CustomerModify struct {
	ID           *string
	CustomerCode *string
	Email        *string
	Name         *string
	Phone        *string
	Password     *string
	Role         *CustomerRoleType
	Status       *CustomerStatusType
}

type CustomerFilter struct {
	Page     int
	PageSize int
	Status   CustomerStatusType
	Search   string
}

type CustomerPage struct {
	Customers []Customer
	Total     int64
}
