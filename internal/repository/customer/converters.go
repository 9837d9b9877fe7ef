package customer

import (
	"parcel-service/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:           c.ID,
		CustomerCode: c.CustomerCode,
		Email:        c.Email,
		Name:         c.Name,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
		Role:         entities.CustomerRoleType(c.Role),
		Status:       entities.CustomerStatusType(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToDomainList(customersDB []CustomerDB) []entities.Customer {
	if len(customersDB) == 0 {
		return []entities.Customer{}
	}

	result := make([]entities.Customer, len(customersDB))
	for i, customerDB := range customersDB {
		result[i] = *ToDomain(&customerDB)
	}
	return result
}
