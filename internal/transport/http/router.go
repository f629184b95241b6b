package http

import (
	"net/http"
	"time"

	"portfolio/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	CORSOrigins []string
}

func NewRouter(users service.UserService, portfolios service.PortfolioService, tokens service.TokenService, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Use(httprate.LimitByIP(100, 1*time.Minute))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	ah := &authHandler{users: users}
	uh := &userHandler{users: users}
	ph := &portfolioHandler{portfolios: portfolios}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", ah.register)
		r.Post("/login", ah.login)
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))
			r.Get("/me", ah.me)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(RequireAuth(tokens))
		r.Get("/profile", uh.getProfile)
		r.Patch("/profile", uh.updateProfile)
		r.Delete("/profile", uh.deleteProfile)
	})

	r.Route("/portfolios", func(r chi.Router) {
		r.Get("/public", ph.getPublic)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))
			r.Post("/", ph.create)
			r.Get("/", ph.list)
			r.Get("/{id}", ph.getByID)
			r.Patch("/{id}", ph.update)
			r.Delete("/{id}", ph.delete)
			r.Patch("/{id}/publish", ph.togglePublish)
		})
	})

	return r
}
