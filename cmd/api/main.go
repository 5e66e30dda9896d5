// @title           GlowMart Shop API
// @version         1.0
// @description     E-commerce backend: accounts, catalog, reviews.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/glowmart/shop-api/internal/api"
	"github.com/glowmart/shop-api/internal/core/service"
	"github.com/glowmart/shop-api/internal/infrastructure/config"
	"github.com/glowmart/shop-api/internal/infrastructure/db/mongo"
	"github.com/glowmart/shop-api/internal/infrastructure/db/redis"
	"github.com/glowmart/shop-api/internal/infrastructure/email"
	"github.com/glowmart/shop-api/internal/infrastructure/queue"
	"github.com/glowmart/shop-api/internal/infrastructure/recaptcha"
	"github.com/glowmart/shop-api/internal/infrastructure/storage"
	"github.com/glowmart/shop-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Datastores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	objectStore, err := storage.NewObjectStore(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init object store")
	}
	if err := objectStore.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure bucket failed")
	}

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	reviewRepo := mongo.NewReviewRepository(db)
	heroRepo := mongo.NewHeroRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user index creation failed")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("product index creation failed")
	}

	// --- Email delivery ---
	mailer := email.NewSMTPMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := queue.NewDispatcher(0, mailer, logger.Component("email-dispatcher"))

	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	dispatcher.Start(dispatcherCtx)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	captcha := recaptcha.NewVerifier(cfg.Recaptcha.Secret, logger.Component("recaptcha"))
	limiter := redis.NewLoginLimiter(rdb, 0, 0)

	authService := service.NewAuthService(userRepo, tokens, captcha, limiter, dispatcher, cfg.FrontendURL, log)
	productService := service.NewProductService(productRepo, categoryRepo, objectStore, log)
	categoryService := service.NewCategoryService(categoryRepo, objectStore, log)
	reviewService := service.NewReviewService(reviewRepo, log)
	heroService := service.NewHeroService(heroRepo, objectStore, log)

	// --- Seed data ---
	bootstrap := service.NewBootstrap(userRepo, categoryRepo, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Env, log)
	if err := bootstrap.EnsureDefaults(ctx); err != nil {
		log.Warn().Err(err).Msg("seeding defaults failed")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Tokens:      tokens,
		Products:    productService,
		Categories:  categoryService,
		Reviews:     reviewService,
		Heroes:      heroService,
		DB:          db,
		Redis:       rdb,
		FrontendURL: cfg.FrontendURL,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	waitForShutdown(log, e, stopDispatcher, mongoClient, rdb)
}

func waitForShutdown(log zerolog.Logger, e *echo.Echo, stopDispatcher context.CancelFunc, mongoClient *mongodriver.Client, rdb *goredis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	stopDispatcher()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("server exited cleanly")
}
