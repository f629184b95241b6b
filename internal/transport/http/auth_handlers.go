package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	"portfolio/internal/observability/metrics"
	obsmw "portfolio/internal/observability/middleware"
	"portfolio/internal/service"
)

type authHandler struct {
	users service.UserService
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		return
	}
	res, err := h.users.Register(r.Context(), req)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		slog.Warn("registration failed", "error", err, "request_id", reqID)
		return
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	slog.Info("user registered", "user_id", res.User.ID, "request_id", reqID)
	writeData(w, http.StatusCreated, res)
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		return
	}
	res, err := h.users.Authenticate(r.Context(), req)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		slog.Warn("login failed", "error", err, "request_id", reqID)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	slog.Info("user logged in", "user_id", res.User.ID, "request_id", reqID)
	writeData(w, http.StatusOK, res)
}

func (h *authHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	res, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, res)
}
