package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/courtside/hoopsapi/config"
	"github.com/courtside/hoopsapi/dataset"
	"github.com/courtside/hoopsapi/handlers"
	applog "github.com/courtside/hoopsapi/logger"
	mw "github.com/courtside/hoopsapi/middleware"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	store := dataset.New(cfg.DataDir)
	if err := store.Load(context.Background()); err != nil {
		logger.Fatal("initial data load failed", zap.Error(err))
	}

	h := handlers.New(store, cfg.JWTKey(), cfg.AdminHash())

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/signin", h.Signin)

	api := e.Group("/api/:sport")
	api.GET("/seasons", h.Seasons)
	api.GET("/seasons/:year", h.SeasonDetail)
	api.GET("/games/:id", h.GameDetail)
	api.GET("/players", h.Players)
	api.GET("/players/:id", h.PlayerDetail)
	api.GET("/records/season", h.SeasonRecords)
	api.GET("/records/career", h.CareerRecords)
	api.GET("/records/game", h.GameRecords)

	// Admin – require valid JWT in Authorization header
	admin := e.Group("/admin", mw.JWT(cfg.JWTKey()))
	admin.POST("/:sport/boxscore", h.SubmitBoxScore)
	admin.GET("/:sport/export", h.ExportSeason)
	admin.POST("/reload", h.Reload)

	// The raw archive files stay fetchable, the site reads them directly.
	e.Static("/data", cfg.DataDir)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
