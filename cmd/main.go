package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pickmate/fulfillment-api/internal/cache"
	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/kafka"
	"github.com/pickmate/fulfillment-api/internal/logger"
	"github.com/pickmate/fulfillment-api/internal/repository/postgresql"
	"github.com/pickmate/fulfillment-api/internal/server"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

const (
	auditTopic         = "audit_logs"
	outboxMaxAttempts  = 5
	outboxPollInterval = 2 * time.Second
	outboxBatchSize    = 20
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	db.LoadEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	scanRepo := postgresql.NewScanRepo(database)
	orderRepo := postgresql.NewCompletedOrderRepo(database)
	bagRepo := postgresql.NewBagRepo(database)
	issueRepo := postgresql.NewPickIssueRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(outboxMaxAttempts)

	if adminUser, adminPass := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD"); adminUser != "" && adminPass != "" {
		if err := userRepo.EnsureSeedUser(ctx, adminUser, adminPass); err != nil {
			log.Fatal("failed to seed admin user", zap.Error(err))
		}
		log.Info("seed user ensured", zap.String("username", adminUser))
	}

	bagCache := cache.NewBagCache(bagRepo)
	if err := bagCache.LoadInitialData(ctx); err != nil {
		log.Warn("failed to warm bag cache, continuing cold", zap.Error(err))
	}

	fulfillment := storage.NewFulfillment(scanRepo, orderRepo, bagRepo, issueRepo, userRepo, bagCache)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: outboxPollInterval,
		BatchSize:    outboxBatchSize,
		MaxAttempts:  outboxMaxAttempts,
	}, log)

	auditSink := server.NewOutboxAuditSink(database, outboxRepo, auditTopic)
	auditManager := server.NewAuditManager(2, 5, 500*time.Millisecond, auditSink)

	srv := server.New(fulfillment, server.Config{Port: port, JWTSecret: jwtSecret}, auditManager, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx)
	})

	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("service exited with error", zap.Error(err))
	}
	log.Info("service stopped")
}
