package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/teamhub-dev/teamhub/internal/auth"
	"github.com/teamhub-dev/teamhub/internal/handlers"
	"github.com/teamhub-dev/teamhub/internal/router"
	"github.com/teamhub-dev/teamhub/internal/storage"
	"github.com/teamhub-dev/teamhub/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using environment")
	}

	mode := auth.ModeFromEnv()

	if mode == auth.ModeToken {
		if err := auth.InitJWTSecret(); err != nil {
			logrus.Fatalf("Failed to initialize JWT secret: %v", err)
		}
	}

	dataDir := os.Getenv("TEAMHUB_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	persistence := storage.New(dataDir)
	s := store.New(persistence.Load(), persistence)

	h := handlers.New(s, mode)
	r := router.NewRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		logrus.Info("PORT not set, defaulting to 3000")
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":      port,
		"auth_mode": mode,
		"snapshot":  persistence.Path(),
	}).Info("TeamHub started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server shutdown: %v", err)
	}

	// Final save so the snapshot on disk matches the last in-memory state.
	if err := persistence.Save(s.Snapshot()); err != nil {
		logrus.Errorf("Final snapshot save failed: %v", err)
	}
}
