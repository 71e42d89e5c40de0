package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edgenudge/internal/classifier"
	"edgenudge/internal/handlers"
	"edgenudge/internal/logger"
	"edgenudge/internal/repository"
	"edgenudge/internal/server"
	"edgenudge/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the logger can be configured from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleEncoding).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.encoding"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// load the model artifact; a failure leaves the service up but
	// never ready, and every predict call reports the model missing
	session := loadModel(log)

	// model metadata is cosmetic; missing is a warning only
	info := loadModelInfo(log)

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, session, serviceConfig(), prometheus.DefaultRegisterer, log)
	apiHandler := handlers.NewHandler(services, info, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(services, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "edgenudge.db")
		dbPath = "edgenudge.db"
	}
	return repository.InitDB(dbPath)
}

// loadModel loads the tree artifact and runs the preset self-check
// against it. Returns nil on any failure: the service stays up but
// reports model_ready=false, with no retry.
func loadModel(log *logger.Logger) classifier.Session {
	path := viper.GetString("model.path")
	if path == "" {
		path = "model/occupancy_tree.json"
	}

	session, err := classifier.Load(path)
	if err != nil {
		log.Errorw("model load failed; service will run without a ready model", "err", err)
		return nil
	}

	if err := classifier.SelfCheck(context.Background(), session); err != nil {
		log.Errorw("model self-check failed; refusing to serve predictions", "err", err)
		return nil
	}

	log.Infow("model loaded", "path", path, "features", classifier.NumFeatures)
	return session
}

// loadModelInfo reads the metadata document; failure degrades the
// model endpoint but nothing else.
func loadModelInfo(log *logger.Logger) *classifier.ModelInfo {
	path := viper.GetString("model.info_path")
	if path == "" {
		path = "model/model_info.json"
	}
	info, err := classifier.LoadInfo(path)
	if err != nil {
		log.Warnw("model metadata unavailable", "err", err)
		return nil
	}
	return info
}

// serviceConfig merges config.yml overrides onto the shipped policy
// defaults.
func serviceConfig() service.Config {
	cfg := service.DefaultConfig()

	if d := viper.GetDuration("demo.interval"); d > 0 {
		cfg.Demo.Interval = d
	}
	if d := viper.GetDuration("demo.settle"); d > 0 {
		cfg.Demo.SettleDelay = d
	}
	if v := viper.GetFloat64("energy.hours_assumed_empty"); v > 0 {
		cfg.Estimator.HoursAssumedEmpty = v
	}
	if v := viper.GetFloat64("energy.optimization_rate"); v > 0 {
		cfg.Campus.OptimizationRate = v
	}
	cfg.Auth.SigningKey = viper.GetString("auth.signing_key")
	if d := viper.GetDuration("auth.token_ttl"); d > 0 {
		cfg.Auth.TokenTTL = d
	}

	return cfg
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals, stops the auto-demo
// carousel, and drains in-flight requests.
func waitForShutdown(services *service.Service, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	services.Demo.Stop()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
