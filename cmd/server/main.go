package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/adapter/httpapi"
	"github.com/autogy/listing-service/internal/adapter/messaging/nats"
	"github.com/autogy/listing-service/internal/adapter/repository/cache"
	"github.com/autogy/listing-service/internal/adapter/repository/mongodb"
	"github.com/autogy/listing-service/internal/adapter/repository/recent"
	"github.com/autogy/listing-service/internal/adapter/storage/s3"
	"github.com/autogy/listing-service/internal/config"
	"github.com/autogy/listing-service/internal/listing/usecase"
	"github.com/autogy/listing-service/internal/mailer"
	"github.com/autogy/listing-service/internal/platform/logger"
	"github.com/autogy/listing-service/internal/platform/tracer"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("service exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown, err := tracer.Init(ctx, "listing-service", cfg.Tracing.Endpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(db); err != nil {
			log.Warn("mongodb disconnect failed", zap.Error(err))
		}
	}()
	log.Info("connected to mongodb", zap.String("database", cfg.Mongo.Database))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("redis close failed", zap.Error(err))
		}
	}()

	publisher, err := nats.NewPublisher(cfg.NATS.URL, log)
	if err != nil {
		return err
	}
	defer publisher.Close()

	photoStorage, err := s3.NewPhotoStorage(ctx, s3.Config{
		Endpoint:   cfg.Storage.Endpoint,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Bucket:     cfg.Storage.Bucket,
		UseSSL:     cfg.Storage.UseSSL,
		PublicHost: cfg.Storage.PublicHost,
	}, log)
	if err != nil {
		return err
	}

	listingRepo := mongodb.NewListingRepository(db, log)
	dealerRepo := mongodb.NewDealerRepository(db, log)
	profileRepo := mongodb.NewProfileRepository(db, log)
	listingCache := cache.NewListingCache(redisClient, cfg.Redis.CacheTTL)
	recentRepo := recent.NewRecentRepository(redisClient)
	mail := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, log)

	catalogUC := usecase.NewCatalogUseCase(listingRepo, dealerRepo, recentRepo, listingCache, config.StoreReadTimeout, log)
	listingUC := usecase.NewListingUseCase(listingRepo, dealerRepo, listingCache, publisher, mail, log)
	favoriteUC := usecase.NewFavoriteUseCase(profileRepo, listingRepo, log)
	photoUC := usecase.NewPhotoUseCase(listingRepo, photoStorage, listingCache, log)
	dealerUC := usecase.NewDealerUseCase(dealerRepo, profileRepo, log)
	adminUC := usecase.NewAdminUseCase(dealerRepo, profileRepo, listingRepo, listingCache, mail, log)

	router := httpapi.NewRouter(httpapi.Handlers{
		Catalog:  httpapi.NewCatalogHandler(catalogUC, log),
		Listing:  httpapi.NewListingHandler(listingUC, photoUC, log),
		Favorite: httpapi.NewFavoriteHandler(favoriteUC, log),
		Dealer:   httpapi.NewDealerHandler(dealerUC, log),
		Admin:    httpapi.NewAdminHandler(adminUC, log),
	}, cfg.Auth.JWTSecret, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.Int("port", cfg.HTTP.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
