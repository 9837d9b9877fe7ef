package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/converters"
	"parcel-service/internal/service/customer"
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
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	parcelModifyEntity, err := toParcelModify(&parcelCreateDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		return
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidStatus):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		case errors.Is(err, customer.ErrCustomerNotFound):
			h.respond(w, http.StatusUnprocessableEntity,
				converters.ErrorEnvelope(http.StatusUnprocessableEntity, "unknown customer code"))
		case errors.Is(err, parcel.ErrConflict):
			h.respond(w, http.StatusConflict,
				converters.ErrorEnvelope(http.StatusConflict, "parcel already exists"))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	h.respond(w, http.StatusCreated, converters.SuccessEnvelope(converters.ToParcelDTO(parcelEntity)))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toParcelModify(parcelCreateDTO *dto.ParcelCreate) (entities.ParcelModify, error) {
	receiveDate, err := converters.ParseDate(parcelCreateDTO.ReceiveDate)
	if err != nil {
		return entities.ParcelModify{}, errors.New("invalid receiveDate")
	}

	parcelModifyEntity := entities.ParcelModify{
		ParcelRef:     &parcelCreateDTO.ParcelRef,
		ReceiveDate:   &receiveDate,
		Description:   parcelCreateDTO.Description,
		Pack:          parcelCreateDTO.Pack,
		Weight:        toDecimal(parcelCreateDTO.Weight),
		Length:        toDecimal(parcelCreateDTO.Length),
		Width:         toDecimal(parcelCreateDTO.Width),
		Height:        toDecimal(parcelCreateDTO.Height),
		Cbm:           toDecimal(parcelCreateDTO.Cbm),
		Freight:       toDecimal(parcelCreateDTO.Freight),
		Estimate:      toDecimal(parcelCreateDTO.Estimate),
		Tracking:      parcelCreateDTO.Tracking,
		ThTracking:    parcelCreateDTO.ThTracking,
		ContainerCode: parcelCreateDTO.ContainerCode,
		CustomerCode:  &parcelCreateDTO.CustomerCode,
		CarrierID:     parcelCreateDTO.CarrierID,
	}

	if parcelCreateDTO.EstimatedDate != nil {
		estimatedDate, err := converters.ParseDate(*parcelCreateDTO.EstimatedDate)
		if err != nil {
			return entities.ParcelModify{}, errors.New("invalid estimatedDate")
		}
		parcelModifyEntity.EstimatedDate = &estimatedDate
	}

	if parcelCreateDTO.Status != nil {
		status := entities.ParcelStatusType(*parcelCreateDTO.Status)
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
