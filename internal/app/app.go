package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/bennettmovies/booking-engine/internal/domain"
	"github.com/bennettmovies/booking-engine/internal/engine"
	"github.com/bennettmovies/booking-engine/internal/store"
	appvalidator "github.com/bennettmovies/booking-engine/internal/validator"
	"github.com/bennettmovies/booking-engine/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	engine         *engine.Engine
}

type config struct {
	port             int
	env              string
	dataFile         string
	otelCollectorURL string
	admin            struct {
		username string
		password string
	}
}

func Run() error {
	// A missing .env is fine; flags and built-in defaults still apply.
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.dataFile, "data-file", envString("DATA_FILE", "movies_data.json"), "Catalog document path")
	flag.StringVar(&cfg.otelCollectorURL, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL (empty disables telemetry)")
	flag.StringVar(&cfg.admin.username, "admin-username", envString("ADMIN_USERNAME", "admin"), "Admin console username")
	flag.StringVar(&cfg.admin.password, "admin-password", envString("ADMIN_PASSWORD", "admin123"), "Admin console password")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// The otelslog handler resolves the global logger provider lazily, so it is
	// safe to build before InitTelemetry runs; without a collector it is inert.
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(os.Stdout, nil),
		otelslog.NewHandler(serviceName),
	))

	catalogStore := store.NewFileStore(cfg.dataFile)

	doc, err := catalogStore.Load(context.Background())
	if err != nil {
		logger.Error("failed to load catalog document", "path", cfg.dataFile, "error", err)
		return err
	}

	catalog := domain.NewCatalogFromDocument(doc)
	logger.Info("catalog loaded", "path", cfg.dataFile, "screenings", catalog.Len())

	app := &application{
		config:         cfg,
		logger:         logger,
		validator:      appvalidator.NewValidator(),
		sessionManager: newSessionManager(),
		engine:         engine.New(catalog, catalogStore, logger),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func newSessionManager() *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "admin_session"

	return sessionManager
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		// Final flush so in-memory state that outlived a failed per-operation
		// flush still reaches the document before exit.
		shutdownError <- app.engine.Flush(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)
	r.Get("/screenings", app.ListScreenings)
	r.Get("/screenings/{screeningID}/seats", app.GetSeatMap)
	r.Post("/bookings", app.CreateBooking)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", app.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Post("/logout", app.AdminLogout)
			r.Get("/screenings", app.AdminDashboard)
			r.Post("/screenings", app.AddScreening)
			r.Delete("/screenings/{screeningID}", app.DeleteScreening)
			r.Delete("/screenings/{screeningID}/bookings", app.ClearBookings)
		})
	})

	return r
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}
