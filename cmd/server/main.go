package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Veselin15/FactNode/internal/audit"
	facthandler "github.com/Veselin15/FactNode/internal/fact/handler"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	httpapi "github.com/Veselin15/FactNode/internal/http"
	"github.com/Veselin15/FactNode/internal/notification"
	notifhandler "github.com/Veselin15/FactNode/internal/notification/handler"
	"github.com/Veselin15/FactNode/internal/platform/config"
	"github.com/Veselin15/FactNode/internal/platform/httpserver"
	"github.com/Veselin15/FactNode/internal/platform/jwtauth"
	"github.com/Veselin15/FactNode/internal/platform/logger"
	platformmetrics "github.com/Veselin15/FactNode/internal/platform/metrics"
	"github.com/Veselin15/FactNode/internal/platform/postgres"
	platformredis "github.com/Veselin15/FactNode/internal/platform/redis"
	"github.com/Veselin15/FactNode/internal/reconcile"
	"github.com/Veselin15/FactNode/internal/reputation"
	rephandler "github.com/Veselin15/FactNode/internal/reputation/handler"
	repmetrics "github.com/Veselin15/FactNode/internal/reputation/metrics"
	repstore "github.com/Veselin15/FactNode/internal/reputation/store"
	"github.com/Veselin15/FactNode/internal/tally"
	votehandler "github.com/Veselin15/FactNode/internal/vote/handler"
	votemetrics "github.com/Veselin15/FactNode/internal/vote/metrics"
	voteservice "github.com/Veselin15/FactNode/internal/vote/service"
	votestore "github.com/Veselin15/FactNode/internal/vote/store"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Store selection: Postgres when configured, in-memory otherwise.
	// Redis, when present, takes over the reputation totals.
	var (
		facts      factstore.Store   = factstore.NewInMemory()
		votes      votestore.Store   = votestore.NewInMemory()
		scores     repstore.Store    = repstore.NewInMemory()
		auditStore audit.Store       = audit.NewInMemoryStore()
		inbox      notification.Store = notification.NewInMemoryStore()
	)
	if db != nil {
		facts = factstore.NewPostgres(db)
		votes = votestore.NewPostgres(db)
		scores = repstore.NewPostgres(db)
		auditStore = audit.NewPostgresStore(db)
		inbox = notification.NewPostgresStore(db)
	}
	if redisClient != nil {
		scores = repstore.NewRedis(redisClient)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := notification.Fanout{notification.NewStoreSink(inbox)}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := notification.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka sink setup failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close(context.Background())
		sinks = append(sinks, kafkaSink)
	}

	auditSvc := audit.NewService(auditStore)
	aggregator := tally.New(votes, facts, log)
	engine := reputation.NewEngine(facts, scores, auditSvc, sinks, log, repmetrics.New())
	reconciler := reconcile.NewWorker(aggregator, log, 256)
	voteSvc := voteservice.New(votes, facts, aggregator, engine, reconciler, log, votemetrics.New())

	router := httpapi.NewRouter(httpapi.Handlers{
		Facts:         facthandler.New(facts, log),
		Reputation:    rephandler.New(engine, auditSvc, log),
		Votes:         votehandler.New(voteSvc, log),
		Notifications: notifhandler.New(inbox, log),
	}, jwtauth.New(cfg.JWTSigningKey), platformmetrics.New(), log)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting factnode core", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := reconciler.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
