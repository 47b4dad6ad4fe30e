package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"camerashop-be/config"
	_ "camerashop-be/docs"
	"camerashop-be/internal/cache"
	"camerashop-be/internal/database"
	"camerashop-be/internal/events"
	"camerashop-be/internal/handlers"
	"camerashop-be/internal/logger"
	"camerashop-be/internal/lowstock"
	"camerashop-be/internal/middleware"
	"camerashop-be/internal/repository"
	"camerashop-be/internal/router"
	"camerashop-be/internal/service"
	gtransport "camerashop-be/internal/transport/grpc"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Camerashop Order API
// @Version 1.0
// @Description Checkout, cart, coupon and order management
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Event bus is optional (nil disables publishing)
	var bus service.EventBus
	if cfg.Kafka.Enabled {
		producer := events.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		bus = producer
		log.Info("kafka publishing enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	var idem handlers.IdempotencyStore
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
		} else {
			defer rc.Close()
			idem = cache.NewIdempotencyStore(rc.Client(), cfg.Redis.IdempotencyTTL)
		}
	}

	shipping := service.ShippingPolicy{FlatFee: cfg.Shipping.FlatFee, FreeThreshold: cfg.Shipping.FreeThreshold}
	orderSvc := service.NewOrderService(repos, shipping, bus, log)
	adminSvc := service.NewAdminOrderService(repos, bus, log)
	cartSvc := service.NewCartService(repos, log)
	couponSvc := service.NewCouponService(repos.Coupons)

	monitor := lowstock.NewMonitor(repos, cfg.LowStock.Threshold, log)
	scheduler := lowstock.NewScheduler(monitor, cfg.LowStock.Interval, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	debug := cfg.IsDev()
	verifier := middleware.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	r := router.Router(router.Handlers{
		Orders:  handlers.NewOrderHandler(orderSvc, idem, log, debug),
		Cart:    handlers.NewCartHandler(cartSvc, log, debug),
		Coupons: handlers.NewCouponHandler(couponSvc, log, debug),
		Admin:   handlers.NewAdminHandler(adminSvc, monitor, log, debug),
	}, verifier, log)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var health *gtransport.HealthServer
	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", cfg.GRPCHealthPort)
		if err != nil {
			log.Fatal("failed to listen for gRPC health", zap.Error(err))
		}
		health = gtransport.NewHealthServer(log)
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("failed to get sql.DB", zap.Error(err))
		}
		go health.Watch(ctx, sqlDB.PingContext, 15*time.Second)
		go func() {
			if err := health.Serve(lis); err != nil {
				log.Error("gRPC health server failed", zap.Error(err))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down...")

	scheduler.Stop()
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if health != nil {
		health.Stop()
	}
	log.Info("server stopped gracefully")
}
