package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/refilllocal/directory/internal/server"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence"
	"github.com/refilllocal/directory/modules/directory/presentation/controllers"
	"github.com/refilllocal/directory/modules/directory/services"
	"github.com/refilllocal/directory/pkg/configuration"
	"github.com/refilllocal/directory/pkg/eventbus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	bus := eventbus.NewEventPublisher(logger)

	cityRepo := persistence.NewCityRepository()
	storeRepo := persistence.NewStoreRepository()
	reviewRepo := persistence.NewReviewRepository()
	operatorRepo := persistence.NewOperatorRepository()

	authService := services.NewAuthService(operatorRepo)
	cityService := services.NewCityService(cityRepo)
	storeService := services.NewStoreService(storeRepo)
	storeImports := services.NewStoreImportService(storeRepo, cityRepo, bus)
	reviewImports := services.NewReviewImportService(reviewRepo, storeRepo, bus)
	services.NewImportNotifier(logger).Register(bus)

	srv := server.New(&server.Options{
		Logger:        logger,
		Configuration: conf,
		Pool:          pool,
		Controllers: []server.Controller{
			controllers.NewCitiesController(cityService, storeService),
			controllers.NewImportController(storeImports, reviewImports, authService),
		},
	})

	stop, stopCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopCancel()
	go func() {
		<-stop.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown failed")
		}
	}()

	log.Printf("Listening on: %s\n", conf.Origin)
	if err := srv.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
	conf.Unload()
}
