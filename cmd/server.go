package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"secondbrain/internal/config"
	"secondbrain/internal/core"
	"secondbrain/internal/db"
	"secondbrain/internal/http/handler"
	"secondbrain/internal/http/handler/middleware"
	"secondbrain/internal/http/payload"
	"secondbrain/internal/http/server"
	"secondbrain/internal/repository"
	"secondbrain/pkg/jwt"
	"secondbrain/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("secondbrain", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewBrainRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// brain service
	brain := core.NewBrain(logger, repo, jwtService)

	// handler
	brainHlr := handler.NewBrainHandler(
		logger,
		payload.DecodeValidator{},
		brain)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Signup, brainHlr.HandleSignup)
	mux.HandleFunc(handler.Signin, brainHlr.HandleSignin)
	mux.HandleFunc(handler.CreateContent, auth.Authorize(brainHlr.HandleCreateContent))
	mux.HandleFunc(handler.GetContent, auth.Authorize(brainHlr.HandleGetContent))
	mux.HandleFunc(handler.GetTags, brainHlr.HandleGetTags)
	mux.HandleFunc(handler.DeleteContent, auth.Authorize(brainHlr.HandleDeleteContent))
	mux.HandleFunc(handler.ShareBrain, auth.Authorize(brainHlr.HandleShareBrain))
	mux.HandleFunc(handler.GetSharedBrain, brainHlr.HandleGetSharedBrain)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
