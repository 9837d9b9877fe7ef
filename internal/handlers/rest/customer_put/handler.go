package customer_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/converters"
	"parcel-service/internal/service/customer"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var customerUpdateDTO dto.CustomerUpdate
	err := json.NewDecoder(r.Body).Decode(&customerUpdateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	customerModifyEntity := entities.CustomerModify{
		ID:           &customerUpdateDTO.ID,
		CustomerCode: customerUpdateDTO.CustomerCode,
		Email:        customerUpdateDTO.Email,
		Name:         customerUpdateDTO.Name,
		Phone:        customerUpdateDTO.Phone,
		Password:     customerUpdateDTO.Password,
	}
	if customerUpdateDTO.Role != nil {
		role := entities.CustomerRoleType(*customerUpdateDTO.Role)
		customerModifyEntity.Role = &role
	}
	if customerUpdateDTO.Status != nil {
		status := entities.CustomerStatusType(*customerUpdateDTO.Status)
		customerModifyEntity.Status = &status
	}

	customerEntity, err := h.service.UpdateCustomer(r.Context(), customerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound):
			h.respond(w, http.StatusNotFound,
				converters.ErrorEnvelope(http.StatusNotFound, "customer not found"))
		case errors.Is(err, customer.ErrInvalidCustomerID),
			errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidCustomerCode),
			errors.Is(err, customer.ErrInvalidEmail),
			errors.Is(err, customer.ErrInvalidPassword),
			errors.Is(err, customer.ErrInvalidRole),
			errors.Is(err, customer.ErrInvalidStatus):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		case errors.Is(err, customer.ErrConflict):
			h.respond(w, http.StatusConflict,
				converters.ErrorEnvelope(http.StatusConflict, "customer already exists"))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	h.respond(w, http.StatusOK, converters.SuccessEnvelope(converters.ToCustomerDTO(customerEntity)))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
