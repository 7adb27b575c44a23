// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package server exposes the cipher as a small JSON API built on gin.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/payveri/affine/internal/logging"
)

// Options configure the API.
type Options struct {
	AllowOrigins []string
	StrictB      bool
	Version      string
	Debug        bool
}

// NewRouter builds the gin engine with CORS, recovery, request logging and
// all routes registered under /api/v1.
func NewRouter(opts Options) *gin.Engine {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	config := cors.DefaultConfig()
	if len(opts.AllowOrigins) > 0 {
		config.AllowOrigins = opts.AllowOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(config))

	h := NewCipherHandler(opts.StrictB, opts.Version)

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/encrypt", h.Encrypt)
		api.POST("/decrypt", h.Decrypt)

		keys := api.Group("/keys")
		{
			keys.GET("", h.ListKeys)
			keys.POST("/check", h.CheckKey)
		}
	}

	return router
}

// Run serves the API on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, opts Options) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logging.Infof("shutting down API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger sends one line per request to the shared logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
