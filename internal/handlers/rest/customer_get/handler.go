package customer_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	customerEntity, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound):
			h.respond(w, http.StatusNotFound,
				converters.ErrorEnvelope(http.StatusNotFound, "customer not found"))
		case errors.Is(err, customer.ErrInvalidCustomerID):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, "invalid customer id"))
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
