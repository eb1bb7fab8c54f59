package wire

import (
	"net/http"

	"cinema-ticketing/internal/adaptor"
	"cinema-ticketing/pkg/middleware"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	adminOnly func(http.Handler) http.Handler,
	cache middleware.ResponseStore,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Group(func(r chi.Router) {
		if cache != nil && config.Cache.Enabled {
			r.Use(middleware.Cache(cache, config.Cache.TTL, log))
		}

		// GET /api/movies - List movies with search, filters and ordering
		r.Get("/api/movies", movieHandler.GetMovies)

		// GET /api/movies/{id} - Movie details
		r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(adminOnly)
		if cache != nil && config.Cache.Enabled {
			r.Use(middleware.PurgeOnWrite(cache, log))
		}

		r.Post("/", movieHandler.CreateMovie)       // POST /api/admin/movies
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /api/admin/movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/admin/movies/{id}
	})
}
