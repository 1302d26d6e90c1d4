package api

import (
	"net/http"

	"landmark-gallery/internal/api/controllers"
	"landmark-gallery/internal/api/handlers"
	"landmark-gallery/internal/middleware"
	"landmark-gallery/internal/services"
	"landmark-gallery/internal/views"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// ImageCache is what the router needs from the image store: variants for the
// views and image route, occupancy for the health check.
type ImageCache interface {
	handlers.ImageSource
	controllers.CacheStats
}

type Dependencies struct {
	Landmarks   services.LandmarkService
	Stats       services.LandmarkStatsService
	Categories  services.CategoryService
	Suggestions services.SuggestionService
	Uptime      *services.UptimeService
	Images      ImageCache
	Renderer    *views.Renderer

	JPEGQuality        int
	PlaceholderOnError bool
	ImageSizes         []int
	RateLimitPerMinute int
	AllowedOrigins     []string
}

// SetupRoutes builds the router. Request ids, access logging and uptime
// wrap the whole router so unmatched requests are logged and counted too.
func SetupRoutes(deps Dependencies) http.Handler {
	thumbnails := handlers.NewThumbnailer(deps.Images, deps.JPEGQuality, deps.PlaceholderOnError)

	viewHandler := handlers.NewViewHandler(deps.Landmarks, deps.Categories, thumbnails, deps.Renderer)
	imageHandler := handlers.NewImageHandler(thumbnails, deps.ImageSizes)
	landmarkHandler := handlers.NewLandmarkHandler(deps.Landmarks)
	statsHandler := handlers.NewLandmarkStatsHandler(deps.Stats)
	suggestionsHandler := handlers.NewSuggestionsHandler(deps.Suggestions)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories)
	uptimeHandler := handlers.NewUptimeHandler(deps.Uptime)

	rateLimiter := middleware.NewRateLimiter(deps.RateLimitPerMinute)

	router := mux.NewRouter()

	router.HandleFunc("/", viewHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/landmarks/{id:[0-9]+}", viewHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/health", controllers.HealthCheckHandler(deps.Landmarks, deps.Images)).Methods(http.MethodGet)

	imageRouter := router.PathPrefix("/images").Subrouter()
	imageRouter.Use(rateLimiter.RateLimit)
	imageRouter.HandleFunc("/{name}", imageHandler.GetImage).Methods(http.MethodGet)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(corsMiddleware.Handler)

	get := []string{http.MethodGet, http.MethodOptions}
	apiRouter.HandleFunc("/landmarks", landmarkHandler.ListLandmarks).Methods(get...)
	apiRouter.HandleFunc("/landmarks/{id}", landmarkHandler.GetLandmark).Methods(get...)
	apiRouter.HandleFunc("/landmarks/name/{name}", landmarkHandler.ListLandmarksByName).Methods(get...)
	apiRouter.HandleFunc("/landmarks/state/{state}", landmarkHandler.ListLandmarksByState).Methods(get...)
	apiRouter.HandleFunc("/categories", categoryHandler.ListCategories).Methods(get...)
	apiRouter.HandleFunc("/stats", statsHandler.GetLandmarkStats).Methods(get...)
	apiRouter.HandleFunc("/suggestions/{type}", suggestionsHandler.GetSuggestions).Methods(get...)
	apiRouter.HandleFunc("/uptime", uptimeHandler.GetUptime).Methods(get...)

	return middleware.RequestID(middleware.LoggingMiddleware(middleware.Uptime(deps.Uptime)(router)))
}
