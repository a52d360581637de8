package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/pwmeter/internal/api/router"
	"github.com/5w1tchy/pwmeter/internal/config"
)

func main() {
	config.LoadDotEnv(".env", "../../.env")

	logger := lager.NewLogger("pwmeter-api")
	cfg, err := config.Load()
	if err != nil {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
		logger.Fatal("invalid-config", err)
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, cfg.LogLevel))

	for _, w := range cfg.Warnings() {
		logger.Info("hardening-warning", lager.Data{"warning": w})
	}

	rdb, err := newRedis(cfg)
	if err != nil {
		logger.Fatal("invalid-redis-config", err)
	}
	if rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatal("redis-connect-failed", err)
		}
		defer rdb.Close()
		logger.Info("redis-connected")
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.Router(cfg, rdb, logger),
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", lager.Data{"addr": cfg.Addr, "tls": cfg.TLSEnabled()})
		if cfg.TLSEnabled() {
			errCh <- server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			errCh <- server.ListenAndServe()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve-failed", err)
		}
	case sig := <-stop:
		logger.Info("shutting-down", lager.Data{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown-failed", err)
		}
	}
}

// newRedis returns nil when no Redis endpoint is configured.
func newRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL != "" {
		// full Upstash-style URL, e.g. rediss://default:<token>@host:port
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = time.Second
		opt.WriteTimeout = time.Second
		return redis.NewClient(opt), nil
	}
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	opt := &redis.Options{
		Addr:         cfg.RedisAddr,
		Username:     cfg.RedisUser,
		Password:     cfg.RedisPassword,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
	if cfg.RedisPassword != "" {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opt), nil
}
