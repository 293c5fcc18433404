package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/esdrassantos06/tarevity-notification-core/loadtest/internal/stub"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	storage := stub.NewTaskStorage()
	handler := stub.NewHandler(storage)

	r := gin.Default()
	handler.Register(r)

	slog.Info("starting task stub", slog.String("port", port))

	if err := r.Run(":" + port); err != nil {
		slog.Error("task stub exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
