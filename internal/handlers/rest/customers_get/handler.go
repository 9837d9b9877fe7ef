package customers_get

import (
	"errors"
	"net/http"
	"strconv"

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
	filter, err := parseFilter(r)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		return
	}

	page, err := h.service.ListCustomers(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidPagination),
			errors.Is(err, customer.ErrInvalidStatus):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	customerListDTO := dto.CustomerList{
		Customers: converters.ToCustomerDTOList(page.Customers),
		Total:     page.Total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}

	h.respond(w, http.StatusOK, converters.SuccessEnvelope(customerListDTO))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.CustomerFilter, error) {
	filter := entities.CustomerFilter{
		Status: entities.CustomerStatusType(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}

	var err error
	filter.Page, err = parsePositiveInt(r.URL.Query().Get("page"))
	if err != nil {
		return entities.CustomerFilter{}, errors.New("invalid page parameter")
	}
	filter.PageSize, err = parsePositiveInt(r.URL.Query().Get("pageSize"))
	if err != nil {
		return entities.CustomerFilter{}, errors.New("invalid pageSize parameter")
	}

	return filter, nil
}

func parsePositiveInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, errors.New("not a positive integer")
	}
	return parsed, nil
}
