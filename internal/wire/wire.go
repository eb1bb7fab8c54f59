package wire

import (
	"context"
	"net/http"
	"time"

	"cinema-ticketing/internal/adaptor"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/database"
	"cinema-ticketing/pkg/middleware"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes. cache may be nil to serve the catalog uncached.
func Wiring(db database.PgxIface, repo *repository.Repository, cache middleware.ResponseStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(db, handler, cache, config, logger),
	}
}

func setupRouter(
	db database.PgxIface,
	handler *adaptor.Handler,
	cache middleware.ResponseStore,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(otelchi.Middleware(config.Telemetry.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(chimw.StripSlashes)

	adminOnly := middleware.AdminKey(config.App.AdminKey, logger)

	// Apply routes
	wireMovie(r, handler.Movie, adminOnly, cache, config, logger)
	wireShowtime(r, handler.Showtime, handler.SeatLayout, adminOnly)
	wireBooking(r, handler.Booking)

	r.Get("/health", health(db, logger))

	return r
}

func health(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Database unavailable")
			return
		}

		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	}
}
