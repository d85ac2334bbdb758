package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aclo-store/checkout-service/docs"
	"github.com/aclo-store/checkout-service/internal/app"
	"github.com/aclo-store/checkout-service/internal/config"
	"github.com/aclo-store/checkout-service/internal/events"
	"github.com/aclo-store/checkout-service/internal/handler"
	"github.com/aclo-store/checkout-service/internal/middleware"
	"github.com/aclo-store/checkout-service/internal/postgres"
	"github.com/aclo-store/checkout-service/internal/repo"
	"github.com/aclo-store/checkout-service/internal/service"
	"github.com/aclo-store/checkout-service/pkg/cache"
	"github.com/aclo-store/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           ACLO Checkout Service API
// @version         1.0
// @description     Checkout, order lifecycle and payment webhook API for the ACLO storefront
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewPublisher(logger, conf.Kafka)
	idgen := service.NewOrderIDGenerator(store)

	checkoutService := service.NewCheckoutService(
		logger, txManager, store, store, store, store, idgen, publisher, conf.Payment.ServerKey)
	orderService := service.NewOrderService(logger, store, orderCache, publisher)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(
		logger, checkoutService, orderService,
		middleware.Auth(conf.Auth.Secret), middleware.AdminOnly)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
