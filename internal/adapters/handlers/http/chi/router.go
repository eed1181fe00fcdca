package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/actor"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/asset"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/auth"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/movie"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/studio"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps bundles the handlers and cross-cutting pieces the router mounts.
// Verifier may be nil when AuthEnabled is false.
type RouterDeps struct {
	AssetHandler  *asset.HandlerV1
	MovieHandler  *movie.HandlerV1
	ActorHandler  *actor.HandlerV1
	StudioHandler *studio.HandlerV1
	AuthHandler   *auth.HandlerV1
	Verifier      port.AuthService
	AuthEnabled   bool
	MaxBodySize   int64
	Env           string
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if deps.MaxBodySize > 0 {
		// leave room for the multipart framing around the file itself
		r.Use(middleware.RequestSize(deps.MaxBodySize + 1<<20))
	}

	if deps.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", deps.AuthHandler.Routes())

		r.Group(func(r chi.Router) {
			if deps.AuthEnabled {
				r.Use(AuthMiddleware(deps.Verifier, logger))
			}
			r.Mount("/asset", deps.AssetHandler.Routes())
			r.Mount("/movie", deps.MovieHandler.Routes())
			r.Mount("/actor", deps.ActorHandler.Routes())
			r.Mount("/studio", deps.StudioHandler.Routes())
		})
	})

	// raw stored files, byte ranges included; no auth so posters and video
	// previews can be embedded directly
	r.Get("/uploads/{storedName}", deps.AssetHandler.ServeStoredV1)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
