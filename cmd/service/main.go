package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/infra"
	"github.com/maverickkamal/scio-planning/internal/pkg/jwt"
	"github.com/maverickkamal/scio-planning/internal/pkg/tx"
	"github.com/maverickkamal/scio-planning/internal/pkg/validator"
	db "github.com/maverickkamal/scio-planning/internal/repository/postgres"
	"github.com/maverickkamal/scio-planning/internal/rest"
	"github.com/maverickkamal/scio-planning/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)
	replies := service.New(cfg)

	handler := rest.New(dbRepo, replies, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	router.Post("/chat", handler.AppendChat)
	router.Get("/chat", handler.GetChat)
	router.Post("/chat/rename", handler.RenameChat)
	router.Get("/chat/history", handler.GetHistory)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
