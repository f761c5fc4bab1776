package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"go.uber.org/zap"

	"trackstat/internal/app/config"
	httpapi "trackstat/internal/app/http"
	"trackstat/internal/app/http/handler"
	"trackstat/internal/domain/analytics"
	"trackstat/internal/domain/workitem"
	"trackstat/internal/infrastructure/async"
	"trackstat/internal/infrastructure/db/pg"
	"trackstat/internal/infrastructure/directory"
	"trackstat/internal/infrastructure/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping error", zap.Error(err))
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose dialect error", zap.Error(err))
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal("goose up error", zap.Error(err))
	}

	uow := pg.NewTxManager(db)

	eventBus := async.NewAsyncEventBus(ctx, 4, log)
	defer eventBus.Close()

	fetch := pg.NewWorkItemRepository(db)

	var dir workitem.ActorDirectory = directory.Noop{}
	if cfg.DirectoryURL != "" {
		dir = directory.NewClient(cfg.DirectoryURL, cfg.DirectoryTimeout)
	}

	analyticsSvc := analytics.NewService(uow, fetch, dir, eventBus, analytics.Options{
		DailyWorkloadFallback: cfg.DailyWorkloadFallback,
		IncludeActorBreakdown: cfg.IncludeActorBreakdown,
		IncludeDataDetailRows: cfg.IncludeDataDetailRows,
	})

	h := handler.New(analyticsSvc, log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
