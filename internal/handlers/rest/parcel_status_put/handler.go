package parcel_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/converters"
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
	id := mux.Vars(r)["id"]

	var statusUpdateDTO dto.ParcelStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	notify := false
	if statusUpdateDTO.Notify != nil {
		notify = *statusUpdateDTO.Notify
	}

	parcelEntity, err := h.service.ChangeStatus(r.Context(), id, statusUpdateDTO.Status, notify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			h.respond(w, http.StatusNotFound,
				converters.ErrorEnvelope(http.StatusNotFound, "parcel not found"))
		case errors.Is(err, parcel.ErrInvalidStatus),
			errors.Is(err, parcel.ErrInvalidParcelID):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	h.respond(w, http.StatusOK, converters.SuccessEnvelope(converters.ToParcelDTO(parcelEntity)))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
