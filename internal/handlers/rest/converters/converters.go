// Package converters приводит доменные сущности к JSON-безопасному виду.
// Все хендлеры обязаны использовать именно эти функции, чтобы числовые
// и датовые поля сериализовались одинаково во всех ответах.
package converters

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

// ParseDate принимает полную метку времени RFC3339 либо голую дату,
// как ее шлет админ-консоль.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

func ToParcelDTO(parcelEntity *entities.Parcel) dto.Parcel {
	parcelDTO := dto.Parcel{
		ID:            parcelEntity.ID,
		ParcelRef:     parcelEntity.ParcelRef,
		ReceiveDate:   parcelEntity.ReceiveDate.Format(time.RFC3339),
		Description:   parcelEntity.Description,
		Pack:          parcelEntity.Pack,
		Weight:        parcelEntity.Weight.InexactFloat64(),
		Length:        parcelEntity.Length.InexactFloat64(),
		Width:         parcelEntity.Width.InexactFloat64(),
		Height:        parcelEntity.Height.InexactFloat64(),
		Cbm:           parcelEntity.Cbm.InexactFloat64(),
		Freight:       parcelEntity.Freight.InexactFloat64(),
		Estimate:      parcelEntity.Estimate.InexactFloat64(),
		Tracking:      parcelEntity.Tracking,
		ThTracking:    parcelEntity.ThTracking,
		ContainerCode: parcelEntity.ContainerCode,
		Status:        parcelEntity.Status.String(),
		CustomerID:    parcelEntity.CustomerID,
		CustomerCode:  parcelEntity.CustomerCode,
		CreatedAt:     parcelEntity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     parcelEntity.UpdatedAt.Format(time.RFC3339),
	}

	if parcelEntity.EstimatedDate != nil {
		estimatedDate := parcelEntity.EstimatedDate.Format(time.RFC3339)
		parcelDTO.EstimatedDate = &estimatedDate
	}

	if parcelEntity.Carrier != nil {
		parcelDTO.Carrier = &dto.Carrier{
			ID:   parcelEntity.Carrier.ID,
			Code: parcelEntity.Carrier.Code,
			Name: parcelEntity.Carrier.Name,
		}
	}

	return parcelDTO
}

func ToParcelDTOList(parcelEntities []entities.Parcel) []dto.Parcel {
	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i := range parcelEntities {
		parcelDTOs[i] = ToParcelDTO(&parcelEntities[i])
	}
	return parcelDTOs
}

func ToCustomerDTO(customerEntity *entities.Customer) dto.Customer {
	return dto.Customer{
		ID:           customerEntity.ID,
		CustomerCode: customerEntity.CustomerCode,
		Email:        customerEntity.Email,
		Name:         customerEntity.Name,
		Phone:        customerEntity.Phone,
		Role:         customerEntity.Role.String(),
		Status:       customerEntity.Status.String(),
		CreatedAt:    customerEntity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    customerEntity.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCustomerDTOList(customerEntities []entities.Customer) []dto.Customer {
	customerDTOs := make([]dto.Customer, len(customerEntities))
	for i := range customerEntities {
		customerDTOs[i] = ToCustomerDTO(&customerEntities[i])
	}
	return customerDTOs
}

// SuccessEnvelope единый конверт успешного ответа, resultCode всегда ноль.
func SuccessEnvelope(data interface{}) dto.Envelope {
	return dto.Envelope{
		ResultCode:   0,
		ResultStatus: "success",
		ResultData:   data,
	}
}

// ErrorEnvelope конверт ошибки, resultCode повторяет HTTP-статус.
func ErrorEnvelope(status int, message string) dto.Envelope {
	return dto.Envelope{
		ResultCode:       status,
		ResultStatus:     "error",
		DeveloperMessage: &message,
	}
}

// WriteEnvelope пишет конверт с заголовком и статусом. Ошибку кодирования
// возвращает вызывающему, решать что с ней делать должен хендлер.
func WriteEnvelope(w http.ResponseWriter, status int, envelope dto.Envelope) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(envelope)
}
