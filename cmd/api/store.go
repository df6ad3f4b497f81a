package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"siged/internal/adapter/repository/gormrepo"
	"siged/internal/adapter/repository/jsonfile"
	"siged/internal/adapter/repository/locking"
	"siged/internal/adapter/repository/memory"
	"siged/internal/config"
	"siged/internal/domain/uow"
	"siged/internal/infrastructure/db"
	"siged/internal/usecase/level"

	levelDomain "siged/internal/domain/level"
)

// openStore builds the unit of work for cfg.StoreDriver. The returned func
// releases the underlying connection.
func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (uow.UnitOfWork, func(), error) {
	noop := func() {}
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return locking.New(memory.New(nil)), noop, nil
	case config.DriverFile:
		return locking.New(jsonfile.New(cfg.StorePath, log)), noop, nil
	case config.DriverMySQL, config.DriverPostgres, config.DriverSQLite:
		gdb, err := db.OpenGorm(cfg.StoreDriver, cfg.DSN(), log)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if err := gormrepo.NewDocumentRepository(gdb, gormrepo.DefaultName).Migrate(ctx); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("migrate documents: %w", err)
		}
		return gormrepo.NewGormUoW(gdb, gormrepo.DefaultName), closeDB, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// seedLevels fills the Level collection from SEED_LEVELS when it is empty.
func seedLevels(ctx context.Context, u uow.UnitOfWork, raw string, log logrus.FieldLogger) error {
	levels, err := levelDomain.ParseSeed(raw)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}
	seeded, err := level.NewUsecase(u).Seed(ctx, levels)
	if err != nil {
		return fmt.Errorf("seed levels: %w", err)
	}
	if seeded {
		log.WithField("levels", len(levels)).Info("levels seeded")
	}
	return nil
}
