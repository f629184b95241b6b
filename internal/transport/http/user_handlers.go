package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	obsmw "portfolio/internal/observability/middleware"
	"portfolio/internal/service"
)

type userHandler struct {
	users service.UserService
}

func (h *userHandler) getProfile(w http.ResponseWriter, r *http.Request) {
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

func (h *userHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.users.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		slog.Warn("profile update failed", "error", err, "user_id", userID, "request_id", reqID)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (h *userHandler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	if err := h.users.SoftDelete(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("user soft-deleted", "user_id", userID, "request_id", reqID)
	writeData(w, http.StatusOK, nil)
}
