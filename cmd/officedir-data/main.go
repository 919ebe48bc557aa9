package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"officedir-data/internal/config"
	"officedir-data/internal/database"
	httpapi "officedir-data/internal/http"
	"officedir-data/internal/logger"
	"officedir-data/internal/planimage"
	"officedir-data/internal/repository"
	"officedir-data/internal/schema"
	"officedir-data/internal/service"
	"officedir-data/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "officedir-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mgr := schema.NewManager(db, log)
	if err := mgr.Ensure(ctx); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}
	if cfg.SeedMock {
		if err := mgr.SeedIfEmpty(ctx); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	}

	// Sessions live in Redis when available; the in-memory store keeps a
	// single-process dev setup working without one.
	var sessions store.KV
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessions = store.NewRedisKV(redisClient)
		log.Info("session store: redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		sessions = store.NewMemoryKV()
		log.Info("session store: in-memory")
	}

	floorsRepo := repository.NewPostgresFloorsRepository(db)
	roomsRepo := repository.NewPostgresRoomsRepository(db)
	employeesRepo := repository.NewPostgresEmployeesRepository(db)
	taxonomyRepo := repository.NewPostgresTaxonomyRepository(db)
	importRepo := repository.NewPostgresImportRepository(db)

	var prober *planimage.Prober
	if cfg.ProbeImages {
		prober = planimage.NewProber(5 * time.Second)
	}

	floorSvc := service.NewFloorService(floorsRepo, prober, log)
	roomSvc := service.NewRoomService(roomsRepo, log)
	employeeSvc := service.NewEmployeeService(employeesRepo, taxonomyRepo, log)
	directorySvc := service.NewDirectoryService(employeesRepo, taxonomyRepo)
	importSvc := service.NewImportService(importRepo, log)
	exportSvc := service.NewExportService(employeesRepo, taxonomyRepo, log)
	authSvc := service.NewAuthService(employeesRepo, sessions, time.Duration(cfg.SessionTTL)*time.Second, log)

	router := httpapi.NewRouter(log)
	router.RegisterDirectoryRoutes(
		httpapi.NewFloorsHandler(floorSvc, log),
		httpapi.NewRoomsHandler(roomSvc, log),
		httpapi.NewEmployeesHandler(employeeSvc, directorySvc, log),
		httpapi.NewDirectoryHandler(directorySvc, log),
		httpapi.NewImportHandler(importSvc, log),
		httpapi.NewExportHandler(exportSvc, log),
		httpapi.NewAuthHandler(authSvc, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
