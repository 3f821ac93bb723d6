package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sydneyplanner/internal/auth"
	"sydneyplanner/internal/chat"
	"sydneyplanner/internal/places"
	"sydneyplanner/internal/ratelimiter"
	"sydneyplanner/internal/store"
	"sydneyplanner/internal/venue"
)

// chatResponder is what the chat handler needs from the orchestrator.
type chatResponder interface {
	Respond(ctx context.Context, query string) chat.Reply
}

// placesGateway is what the proxy handlers need from the provider client.
type placesGateway interface {
	Search(ctx context.Context, params places.SearchParams) ([]venue.Venue, error)
	Details(ctx context.Context, fsqID string) (venue.Venue, error)
	Photos(ctx context.Context, fsqID string) ([]string, error)
	Tips(ctx context.Context, fsqID string) ([]places.PlaceTip, error)
}

// objectStorage is what the upload and photo handlers need from the storage
// backend.
type objectStorage interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	SignedURL(ctx context.Context, path string, expiresIn time.Duration) (string, error)
	Delete(ctx context.Context, path string) error
}

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	authenticator auth.Authenticator
	chat          chatResponder
	places        placesGateway
	storage       objectStorage
	cld           *cloudinary.Cloudinary
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	corsOrigins []string
	db          dbConfig
	supabase    supabaseConfig
	foursquare  foursquareConfig
	ai          aiConfig
	redis       redisConfig
	godEmail    string
	rateLimiter ratelimiter.Config
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type supabaseConfig struct {
	url        string
	serviceKey string
	jwtSecret  string
	bucket     string
}

type foursquareConfig struct {
	apiKey string
}

type aiConfig struct {
	apiKey  string
	baseURL string
	model   string
}

type redisConfig struct {
	addr     string
	password string
	cacheTTL time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(app.RateLimiterMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", app.rootHandler)
	r.Get("/debug/vars", expvar.Handler().ServeHTTP)

	r.Post("/chat", app.chatHandler)
	r.Get("/search", app.searchCatalogHandler)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", app.listCatalogHandler)

		r.Route("/saved", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/", app.listSavedVenuesHandler)
			r.Post("/", app.createSavedVenuesHandler)
			r.With(app.RequireGodMode).Post("/bulk-delete", app.bulkDeleteSavedVenuesHandler)
			r.Patch("/{venueID}", app.updateSavedVenueHandler)
			r.Delete("/{venueID}", app.deleteSavedVenueHandler)
		})

		r.Get("/{venueID}", app.getCatalogVenueHandler)
	})

	r.Route("/checkins", func(r chi.Router) {
		r.With(app.OptionalAuthTokenMiddleware).Get("/", app.listCheckInsHandler)
		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Post("/", app.createCheckInHandler)
			r.Patch("/{checkinID}", app.updateCheckInHandler)
			r.Delete("/{checkinID}", app.deleteCheckInHandler)
		})
	})

	r.Route("/saves", func(r chi.Router) {
		r.With(app.OptionalAuthTokenMiddleware).Get("/", app.listSavesHandler)
		r.With(app.AuthTokenMiddleware).Post("/", app.toggleSaveHandler)
	})

	r.With(app.AuthTokenMiddleware).Post("/upload", app.uploadHandler)

	r.Route("/photos", func(r chi.Router) {
		r.Use(app.AuthTokenMiddleware)
		r.Get("/signed-url", app.signedURLHandler)
		r.Delete("/*", app.deletePhotoHandler)
	})

	r.Route("/foursquare", func(r chi.Router) {
		r.Get("/search", app.placesSearchHandler)
		r.Route("/venues/{fsqID}", func(r chi.Router) {
			r.Get("/", app.placesDetailsHandler)
			r.Get("/photos", app.placesPhotosHandler)
			r.Get("/tips", app.placesTipsHandler)
		})
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(app.AuthTokenMiddleware)
		r.Post("/avatar", app.uploadAvatarHandler)
		r.Get("/stats", app.profileStatsHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
