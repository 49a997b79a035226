package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/config"
	"github.com/marcelsud/hookdash/endpoint"
	endpointpg "github.com/marcelsud/hookdash/endpoint/postgres"
	endpointredis "github.com/marcelsud/hookdash/endpoint/redis"
	"github.com/marcelsud/hookdash/forwarding"
	forwardingpg "github.com/marcelsud/hookdash/forwarding/postgres"
	"github.com/marcelsud/hookdash/ingest"
	"github.com/marcelsud/hookdash/internal/http/chi"
	"github.com/marcelsud/hookdash/internal/postgres"
	"github.com/marcelsud/hookdash/metrics"
	"github.com/marcelsud/hookdash/plans"
	"github.com/marcelsud/hookdash/webhook"
	webhookpg "github.com/marcelsud/hookdash/webhook/postgres"
)

const TIMEOUT = 30 * time.Second

/* The api binary is where every package gets wired together.
 * Imports only flow downwards: the app imports the business packages, which
 * import their storage packages.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	logger := chi.NewLogger("hookdash", cfg.LogJSON)

	db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.PostgresMaxOpenConns, cfg.PostgresMaxIdleConns, cfg.PostgresConnMaxLifeMinutes)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		fmt.Println(err)
		return
	}

	var endpointRepo endpoint.Repository = endpointpg.NewRepository(db)
	if cfg.CacheEnabled() {
		ttl := time.Duration(cfg.EndpointCacheTTLSeconds) * time.Second
		cache, err := endpointredis.NewCache(endpointRepo, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer cache.Close(ctx)
		cache.Logger = logger
		endpointRepo = cache
		logger.Info().Str("addr", cfg.RedisAddr).Msg("endpoint cache enabled")
	}

	planLoader := plans.NewLoader(plans.Defaults(cfg)...)
	if cfg.PlansFile != "" {
		if err := planLoader.Load(cfg.PlansFile); err != nil {
			fmt.Println(err)
			return
		}
	}
	quota := plans.NewQuotaChecker(planLoader, endpointRepo)

	exporter, err := metrics.NewOTelExporter(metrics.NewPostgresCollector(db), cfg.Version)
	if err != nil {
		fmt.Println(err)
		return
	}

	endpointService := endpoint.NewService(endpointRepo, quota)
	webhookService := webhook.NewService(webhookpg.NewRepository(db), endpointService)
	webhookService.Logger = logger

	forwardingRepo := forwardingpg.NewRepository(db)
	engine := forwarding.NewEngine(forwardingRepo, logger)
	engine.Recorder = exporter
	forwardingService := forwarding.NewService(forwardingRepo, engine)

	// Forwarding sequences outlive the inbound call, so they are bound to the app context.
	dispatcher := forwarding.NewDispatcher(ctx, forwardingService, webhookService, engine, logger)

	gateway := ingest.NewGateway(endpointService, webhookService, forwardingService, dispatcher, cfg.MaxBodySize)
	gateway.Recorder = exporter
	gateway.Logger = logger

	r := chi.Handlers(ctx, chi.Services{
		Endpoints:  endpointService,
		Requests:   webhookService,
		Forwarding: forwardingService,
		Gateway:    gateway,
		Auth:       auth.NewJWTValidator(cfg.SecretKey),
		Plans:      quota,
		Metrics:    exporter.ServeHTTP(),
		AppName:    cfg.AppName,
		Version:    cfg.Version,
	}, logger)
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout: 30 * time.Second,
		// Manual replay waits for one attempt of up to the maximum forwarding timeout.
		WriteTimeout: time.Duration(forwarding.MaxTimeout)*time.Second + TIMEOUT,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
	}

	// ctx is cancelled by now, so pending backoff sleeps return early.
	dispatcher.Wait()

	ctxTimeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	if err := exporter.Shutdown(ctxTimeout); err != nil {
		fmt.Println(err)
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
