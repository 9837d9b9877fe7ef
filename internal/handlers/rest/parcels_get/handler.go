package parcels_get

import (
	"errors"
	"net/http"
	"strconv"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/converters"
	"parcel-service/internal/pkg/middlewares/auth"
	"parcel-service/internal/service/parcel"
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

	// клиентский токен видит только свои посылки, код из фильтра игнорируется
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok && !claims.IsAdmin() {
		filter.CustomerCode = claims.CustomerCode
	}

	page, err := h.service.ListParcels(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidPagination),
			errors.Is(err, parcel.ErrInvalidStatus):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	parcelListDTO := dto.ParcelList{
		Parcels:  converters.ToParcelDTOList(page.Parcels),
		Total:    page.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	h.respond(w, http.StatusOK, converters.SuccessEnvelope(parcelListDTO))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.ParcelFilter, error) {
	filter := entities.ParcelFilter{
		Status:       entities.ParcelStatusType(r.URL.Query().Get("status")),
		TrackingNo:   r.URL.Query().Get("trackingNo"),
		CustomerCode: r.URL.Query().Get("customerCode"),
	}

	var err error
	filter.Page, err = parsePositiveInt(r.URL.Query().Get("page"))
	if err != nil {
		return entities.ParcelFilter{}, errors.New("invalid page parameter")
	}
	filter.PageSize, err = parsePositiveInt(r.URL.Query().Get("pageSize"))
	if err != nil {
		return entities.ParcelFilter{}, errors.New("invalid pageSize parameter")
	}

	if value := r.URL.Query().Get("dateFrom"); value != "" {
		dateFrom, err := converters.ParseDate(value)
		if err != nil {
			return entities.ParcelFilter{}, errors.New("invalid dateFrom parameter")
		}
		filter.DateFrom = &dateFrom
	}
	if value := r.URL.Query().Get("dateTo"); value != "" {
		dateTo, err := converters.ParseDate(value)
		if err != nil {
			return entities.ParcelFilter{}, errors.New("invalid dateTo parameter")
		}
		filter.DateTo = &dateTo
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
