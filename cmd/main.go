package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "typewise_alert/docs"
	"typewise_alert/internal/config"
	"typewise_alert/internal/handlers"
	"typewise_alert/internal/logger"
	"typewise_alert/internal/server"
	"typewise_alert/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Typewise Alert API
// @version      1.0
// @description  Classifies battery temperature readings and routes breach notifications.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(reportError(root.ErrOrStderr(), err))
	}
}

// reportError prints err the way the alert tooling reports failures and
// returns the process exit code.
func reportError(w io.Writer, err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		_, _ = fmt.Fprintln(w, service.Diagnostic(exit.err))
		return exit.code
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
	return 1
}

// exitError carries a diagnostic-worthy error and the exit code to use.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newServices(cfg config.Config, out, diag io.Writer, log *logger.Logger) *service.Service {
	return service.NewService(service.Deps{
		Out:  out,
		Diag: diag,
		Log:  log,
		Auth: service.AuthConfig{
			SigningKey:   cfg.Auth.SigningKey,
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
			TokenTTL:     cfg.Auth.TokenTTL,
		},
	})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM and then drains the server.
func waitForShutdown(srv *server.Server, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
