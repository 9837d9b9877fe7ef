package customer_post

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
	var customerCreateDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerCreateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	customerModifyEntity := entities.CustomerModify{
		CustomerCode: &customerCreateDTO.CustomerCode,
		Email:        &customerCreateDTO.Email,
		Name:         &customerCreateDTO.Name,
		Phone:        customerCreateDTO.Phone,
		Password:     &customerCreateDTO.Password,
	}
	if customerCreateDTO.Role != nil {
		role := entities.CustomerRoleType(*customerCreateDTO.Role)
		customerModifyEntity.Role = &role
	}
	if customerCreateDTO.Status != nil {
		status := entities.CustomerStatusType(*customerCreateDTO.Status)
		customerModifyEntity.Status = &status
	}

	id, err := h.service.CreateCustomer(r.Context(), customerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
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

	response := dto.CustomerCreateResponse{
		ID: id,
	}

	h.respond(w, http.StatusCreated, converters.SuccessEnvelope(response))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
