package parcel_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"parcel-service/internal/entities"
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
	var parcelUpdateDTO dto.ParcelUpdate
	err := json.NewDecoder(r.Body).Decode(&parcelUpdateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	parcelModifyEntity, err := toParcelModify(&parcelUpdateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		return
	}

	parcelEntity, err := h.service.UpdateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			h.respond(w, http.StatusNotFound,
				converters.ErrorEnvelope(http.StatusNotFound, "parcel not found"))
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidStatus),
			errors.Is(err, parcel.ErrMissingRequiredFields):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		case errors.Is(err, parcel.ErrConflict):
			h.respond(w, http.StatusConflict,
				converters.ErrorEnvelope(http.StatusConflict, "parcel already exists"))
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

func toParcelModify(parcelUpdateDTO *dto.ParcelUpdate) (entities.ParcelModify, error) {
	parcelModifyEntity := entities.ParcelModify{
		ID:            &parcelUpdateDTO.ID,
		ParcelRef:     parcelUpdateDTO.ParcelRef,
		Description:   parcelUpdateDTO.Description,
		Pack:          parcelUpdateDTO.Pack,
		Weight:        toDecimal(parcelUpdateDTO.Weight),
		Length:        toDecimal(parcelUpdateDTO.Length),
		Width:         toDecimal(parcelUpdateDTO.Width),
		Height:        toDecimal(parcelUpdateDTO.Height),
		Cbm:           toDecimal(parcelUpdateDTO.Cbm),
		Freight:       toDecimal(parcelUpdateDTO.Freight),
		Estimate:      toDecimal(parcelUpdateDTO.Estimate),
		Tracking:      parcelUpdateDTO.Tracking,
		ThTracking:    parcelUpdateDTO.ThTracking,
		ContainerCode: parcelUpdateDTO.ContainerCode,
		CarrierID:     parcelUpdateDTO.CarrierID,
	}

	if parcelUpdateDTO.ReceiveDate != nil {
		receiveDate, err := converters.ParseDate(*parcelUpdateDTO.ReceiveDate)
		if err != nil {
			return entities.ParcelModify{}, errors.New("invalid receiveDate")
		}
		parcelModifyEntity.ReceiveDate = &receiveDate
	}

	if parcelUpdateDTO.EstimatedDate != nil {
		estimatedDate, err := converters.ParseDate(*parcelUpdateDTO.EstimatedDate)
		if err != nil {
			return entities.ParcelModify{}, errors.New("invalid estimatedDate")
		}
		parcelModifyEntity.EstimatedDate = &estimatedDate
	}

	if parcelUpdateDTO.Status != nil {
		status := entities.ParcelStatusType(*parcelUpdateDTO.Status)
		parcelModifyEntity.Status = &status
	}

	return parcelModifyEntity, nil
}

func toDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	converted := decimal.NewFromFloat(*value)
	return &converted
}
