package main

import (
	"log"

	"teeup_backend/internal/config"
	"teeup_backend/internal/platform/database"
	"teeup_backend/internal/platform/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := l.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}
	return l, cleanup, nil
}

// provideDB returns a nil *gorm.DB for the memory driver.
func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db, logger)
	}
	return db, cleanup, nil
}
