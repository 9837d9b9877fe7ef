package auth_login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/converters"
	"parcel-service/internal/service/auth"
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
	var loginRequestDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginRequestDTO)
	if err != nil {
		h.respond(w, http.StatusBadRequest,
			converters.ErrorEnvelope(http.StatusBadRequest, "malformed request body"))
		return
	}

	authToken, err := h.service.Login(r.Context(), loginRequestDTO.CustomerCode, loginRequestDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields):
			h.respond(w, http.StatusBadRequest,
				converters.ErrorEnvelope(http.StatusBadRequest, err.Error()))
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.respond(w, http.StatusUnauthorized,
				converters.ErrorEnvelope(http.StatusUnauthorized, "invalid credentials"))
		case errors.Is(err, auth.ErrCustomerInactive):
			h.respond(w, http.StatusForbidden,
				converters.ErrorEnvelope(http.StatusForbidden, "customer is inactive"))
		default:
			h.respond(w, http.StatusInternalServerError,
				converters.ErrorEnvelope(http.StatusInternalServerError, "internal error"))
		}
		return
	}

	response := dto.LoginResponse{
		Token:     authToken.Token,
		ExpiresAt: authToken.ExpiresAt.Format(time.RFC3339),
	}

	h.respond(w, http.StatusOK, converters.SuccessEnvelope(response))
}

func (h *Handler) respond(w http.ResponseWriter, status int, envelope dto.Envelope) {
	err := converters.WriteEnvelope(w, status, envelope)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
