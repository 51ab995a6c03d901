package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"music-scheduler/internal/database"
	"music-scheduler/internal/filesystem"
	"music-scheduler/internal/handlers"
	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
	"music-scheduler/internal/player"
	"music-scheduler/internal/remote"
	"music-scheduler/internal/scheduler"
	"music-scheduler/internal/startup"
	"music-scheduler/internal/uploads"
	"music-scheduler/internal/youtube"
)

const (
	shutdownTimeout         = 30 * time.Second
	metricsCollectInterval  = 15 * time.Second
	serverReadTimeout       = 15 * time.Second
	serverIdleTimeout       = 60 * time.Second
	metricsServerTimeout    = 10 * time.Second
	serverReadHeaderTimeout = 5 * time.Second
)

// application holds every long-running component.
type application struct {
	db        *database.Database
	hub       *remote.Hub
	player    *player.Controller
	runner    *scheduler.Runner
	collector *metrics.Collector
	router    *mux.Router
}

func main() {
	startTime := time.Now()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	metrics.InitializeMetrics()
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(ctx, config)
	if err != nil {
		startup.LogFatal("Initialization failed: %v", err)
	}
	app.start(ctx, config)

	srv := newServer(":"+config.Port, app.router)

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(":"+config.MetricsPort, app.db)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	done := make(chan struct{})
	go handleShutdown(srv, metricsSrv, app, cancel, done)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
	<-done
}

func newApplication(ctx context.Context, config *startup.Config) (*application, error) {
	dbStart := time.Now()
	db, err := database.New(ctx, config.DatabasePath)
	if err != nil {
		return nil, err
	}
	startup.LogDatabaseInit(time.Since(dbStart))

	store, err := uploads.New(config.UploadDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := remote.NewHub()
	ctrl := player.New(ctx, player.Options{
		Video:        remote.NewBackend(hub, remote.VideoBackend),
		Audio:        remote.NewBackend(hub, remote.AudioBackend),
		Store:        db,
		Titles:       youtube.NewTitleFetcher(config.OEmbedEndpoint, nil),
		Releaser:     store,
		Volume:       &config.DefaultVolume,
		TitleWorkers: config.TitleFetchWorkers,
	})
	hub.SetSink(ctrl)
	startup.LogPlayerInit(ctrl.SongCount(), ctrl.State().Volume)

	h := handlers.New(ctrl, store, hub, db, handlers.Config{
		MaxUploadBytes: config.MaxUploadBytes(),
		Location:       config.Location,
	})
	router := handlers.NewRouter(h, handlers.RouterConfig{LogHealthChecks: config.LogHealthChecks})
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	return &application{
		db:        db,
		hub:       hub,
		player:    ctrl,
		runner:    scheduler.NewRunner(ctrl, config.ScheduleCheckInterval, config.Location),
		collector: metrics.NewCollector(ctrl, db, metricsCollectInterval),
		router:    router,
	}, nil
}

func (a *application) start(ctx context.Context, config *startup.Config) {
	a.hub.Start()
	a.collector.Start()

	startup.LogSchedulerInit(config.ScheduleCheckInterval, config.Location)
	a.runner.Start(ctx)
	startup.LogSchedulerStarted()
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       serverReadTimeout,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		// Audio streams and the player websocket outlive any fixed write deadline.
		WriteTimeout: 0,
		IdleTimeout:  serverIdleTimeout,
	}
}

func newMetricsServer(addr string, db handlers.Pinger) *http.Server {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:              addr,
		Handler:           metricsMux,
		ReadTimeout:       metricsServerTimeout,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		WriteTimeout:      metricsServerTimeout,
		IdleTimeout:       serverIdleTimeout,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, app *application, cancel context.CancelFunc, done chan<- struct{}) {
	defer close(done)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	app.stop()
	cancel()

	startup.LogShutdownComplete()
}

// stop halts background work, then disconnects players and closes the database.
func (a *application) stop() {
	startup.LogShutdownStep("Stopping scheduler")
	a.runner.Stop()
	startup.LogShutdownStepComplete("Scheduler stopped")

	startup.LogShutdownStep("Stopping metrics collector")
	a.collector.Stop()
	startup.LogShutdownStepComplete("Metrics collector stopped")

	startup.LogShutdownStep("Disconnecting players")
	a.hub.Stop()
	startup.LogShutdownStepComplete("Players disconnected")

	startup.LogShutdownStep("Closing database")
	if err := a.db.Close(); err != nil {
		logging.Warn("Database close error: %v", err)
	} else {
		startup.LogShutdownStepComplete("Database closed")
	}
}
