package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vendorflow/internal/configs"
	httpdelivery "vendorflow/internal/delivery/http"
	"vendorflow/internal/delivery/kafka"
	"vendorflow/internal/jobs"
	"vendorflow/internal/mailer"
	"vendorflow/internal/repository"
	"vendorflow/internal/repository/cache"
	"vendorflow/internal/repository/postgres"
	"vendorflow/internal/service"
)

// @title vendorflow
// @version 1.0
// @description Vendor ordering backend: designers, their vendors and vendor orders, receiving against open customer demand and emailing orders to vendors. Designers are fed from the catalog over kafka.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeStore := openRepository(cfg)
	defer closeStore()

	pub, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaInventoryTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	m := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		Domain:   mailDomain(cfg.MailFrom),
	})

	svc := service.NewService(repo, m, kafka.NewInventoryPublisher(pub), service.Options{
		MultiVendorDesignerID: cfg.MultiVendorDesignerID,
		DesignersPerPage:      cfg.DesignersPerPage,
		FanoutLimit:           cfg.FanoutLimit,
		MailFrom:              cfg.MailFrom,
		MailCC:                cfg.MailCC,
		MailBCC:               cfg.MailBCC,
	})

	jobStore, closeJobs := openJobStore(cfg)
	defer closeJobs()
	runner := jobs.NewRunner(jobStore)

	consumer := kafka.NewConsumer(kafka.Config{
		Brokers: cfg.KafkaBrokersSlice(),
		GroupID: cfg.KafkaGroupID,
		Topic:   cfg.KafkaCatalogTopic,
		DLQ:     cfg.KafkaDLQTopic,
	}, svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Subscribe(ctx); err != nil {
			logrus.Errorf("consumer stopped: %v", err)
			cancel()
		}
	}()
	logrus.Printf("catalog subscription started on %s", cfg.KafkaCatalogTopic)

	h := httpdelivery.NewHandler(svc, runner, cfg.SoftTimeout)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	cancel()
	if err := consumer.Close(); err != nil {
		logrus.Errorf("consumer close: %s", err)
	}
	wg.Wait()

	if err := runner.Wait(shutdownCtx); err != nil {
		logrus.Errorf("pending jobs: %s", err)
	}
	logrus.Print("service stopped")
}

func openRepository(cfg configs.Config) (*repository.Repository, func()) {
	opts := []cache.Option{cache.WithTTL(cfg.DesignerCacheTTL)}

	if cfg.StoreDriver == "memory" {
		logrus.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemoryRepository(opts...), func() {}
	}

	db, err := postgres.ConnectDB(postgres.Config{URL: cfg.PgDSN()})
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	if err := postgres.Migrate(db); err != nil {
		_ = db.Close()
		logrus.Fatalf("postgres migrate: %s", err)
	}
	logrus.Print("connected to postgres")

	return repository.NewRepository(db, opts...), func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}
}

func openJobStore(cfg configs.Config) (jobs.Store, func()) {
	if cfg.JobStore == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		logrus.Printf("job status kept in redis at %s", cfg.RedisAddr)
		return jobs.NewRedisStore(client, cfg.JobTTL), func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("redis close: %v", err)
			}
		}
	}
	st := jobs.NewMemoryStore(cfg.JobTTL)
	return st, st.Close
}

func mailDomain(from string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 {
		return strings.TrimSuffix(from[i+1:], ">")
	}
	return ""
}
