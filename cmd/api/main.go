package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	httpadp "siged/internal/adapter/http"
	"siged/internal/adapter/middleware"
	"siged/internal/config"
	"siged/internal/domain/uow"
	"siged/internal/infrastructure/cache"
	"siged/internal/infrastructure/logger"
	"siged/internal/infrastructure/metrics"
	"siged/internal/usecase/application"
	"siged/internal/usecase/court"
	"siged/internal/usecase/detective"
	"siged/internal/usecase/level"
	"siged/internal/usecase/records"
	"siged/internal/usecase/report"
	"siged/internal/usecase/slip"
	"siged/internal/usecase/vip"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Production())
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server down")
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now := func() time.Time { return time.Now().In(loc) }

	u, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()
	if err := seedLevels(ctx, u, cfg.SeedLevels, log); err != nil {
		return err
	}

	m := metrics.New()
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover(), middleware.RequestLogger(log, m))

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
		e.Use(middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log))
	} else {
		log.Warn("REDIS_ADDR empty, idempotency disabled")
	}

	httpadp.Register(e, handlers(u, now, m), m.Handler())

	addr := ":" + cfg.AppPort
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": addr, "store": cfg.StoreDriver}).Info("server start up")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})
	return g.Wait()
}

func handlers(u uow.UnitOfWork, now func() time.Time, obs httpadp.Observer) httpadp.Handlers {
	return httpadp.Handlers{
		Root:         httpadp.NewHandler(records.NewUsecase(u)),
		Applications: httpadp.NewApplicationHandler(application.NewUsecase(u, now), obs),
		Detectives:   httpadp.NewDetectiveHandler(detective.NewUsecase(u, now), obs),
		Levels:       httpadp.NewLevelHandler(level.NewUsecase(u), obs),
		Reports:      httpadp.NewReportHandler(report.NewUsecase(u), obs),
		Slips:        httpadp.NewSlipHandler(slip.NewUsecase(u, now), obs),
		Courts:       httpadp.NewCourtHandler(court.NewUsecase(u), obs),
		Vip:          httpadp.NewVipHandler(vip.NewUsecase(u, now), obs),
	}
}
