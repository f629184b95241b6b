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

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type portfolioHandler struct {
	portfolios service.PortfolioService
}

// getPublic is the only anonymous portfolio path. The store hands back the
// entity regardless of publish state; the unpublished case is hidden here,
// after the view counter has already moved.
func (h *portfolioHandler) getPublic(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	slug := r.URL.Query().Get("slug")
	name := r.URL.Query().Get("name")
	if slug == "" || name == "" {
		writeError(w, fmt.Errorf("%w: slug and name query parameters are required", domain.ErrValidation))
		return
	}
	pf, err := h.portfolios.GetPublicByLookupKey(r.Context(), slug, name)
	if err != nil {
		writeError(w, err)
		return
	}
	if !pf.Published {
		writeError(w, fmt.Errorf("%w: portfolio not published", domain.ErrNotFound))
		return
	}
	metrics.PortfolioViewsTotal.WithLabelValues().Inc()
	slog.Info("public portfolio viewed", "portfolio_id", pf.ID, "slug", slug, "request_id", reqID)
	writeData(w, http.StatusOK, pf)
}

func (h *portfolioHandler) create(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	var req dto.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("create", "failure").Inc()
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("create", "failure").Inc()
		writeError(w, err)
		return
	}
	pf, err := h.portfolios.Create(r.Context(), userID, req)
	if err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("create", "failure").Inc()
		writeError(w, err)
		slog.Warn("portfolio create failed", "error", err, "user_id", userID, "request_id", reqID)
		return
	}
	metrics.PortfolioOperationsTotal.WithLabelValues("create", "success").Inc()
	slog.Info("portfolio created", "portfolio_id", pf.ID, "user_id", userID, "request_id", reqID)
	writeData(w, http.StatusCreated, pf)
}

func (h *portfolioHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	out, err := h.portfolios.ListByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

func (h *portfolioHandler) getByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pf, err := h.portfolios.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// The lookup is unscoped; ownership is this caller's gate.
	if pf.UserID != userID {
		writeError(w, fmt.Errorf("%w: you do not have permission to view this portfolio", domain.ErrForbidden))
		return
	}
	writeData(w, http.StatusOK, pf)
}

func (h *portfolioHandler) update(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("update", "failure").Inc()
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("update", "failure").Inc()
		writeError(w, err)
		return
	}
	pf, err := h.portfolios.Update(r.Context(), id, userID, req)
	if err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("update", "failure").Inc()
		writeError(w, err)
		slog.Warn("portfolio update failed", "error", err, "portfolio_id", id, "request_id", reqID)
		return
	}
	metrics.PortfolioOperationsTotal.WithLabelValues("update", "success").Inc()
	writeData(w, http.StatusOK, pf)
}

func (h *portfolioHandler) delete(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pf, err := h.portfolios.Delete(r.Context(), id, userID)
	if err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("delete", "failure").Inc()
		writeError(w, err)
		return
	}
	metrics.PortfolioOperationsTotal.WithLabelValues("delete", "success").Inc()
	slog.Info("portfolio soft-deleted", "portfolio_id", id, "user_id", userID, "request_id", reqID)
	writeData(w, http.StatusOK, pf)
}

func (h *portfolioHandler) togglePublish(w http.ResponseWriter, r *http.Request) {
	reqID := obsmw.RequestIDFromContext(r.Context())
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no subject", domain.ErrUnauthorized))
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pf, err := h.portfolios.TogglePublish(r.Context(), id, userID)
	if err != nil {
		metrics.PortfolioOperationsTotal.WithLabelValues("toggle_publish", "failure").Inc()
		writeError(w, err)
		return
	}
	metrics.PortfolioOperationsTotal.WithLabelValues("toggle_publish", "success").Inc()
	slog.Info("portfolio publish toggled", "portfolio_id", id, "published", pf.Published, "request_id", reqID)
	writeData(w, http.StatusOK, pf)
}

func parseID(r *http.Request) (domain.PortfolioID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid portfolio id", domain.ErrValidation)
	}
	return id, nil
}
