// Package main library lending API.
//
// @title           Library Lending API
// @version         1.0
// @description     Catalog, member and loan management for a small library.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"booklending/app/echoServer"
	authctrl "booklending/app/echoServer/controller/auth"
	bookctrl "booklending/app/echoServer/controller/book"
	loanctrl "booklending/app/echoServer/controller/loan"
	memberctrl "booklending/app/echoServer/controller/member"
	"booklending/app/echoServer/validation"
	"booklending/config"
	bookrepo "booklending/repository/book"
	loanrepo "booklending/repository/loan"
	memberrepo "booklending/repository/member"
	staffrepo "booklending/repository/staff"
	authsvc "booklending/service/auth"
	"booklending/service/fine"
	"booklending/service/lending"
	loansvc "booklending/service/loan"
	membersvc "booklending/service/member"
	"booklending/util/database"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	mr := memberrepo.New(db)
	lr := loanrepo.New(db)
	sr := staffrepo.New(db)

	// services
	ls := lending.New(br, log)
	ms := membersvc.New(mr)
	fs := loansvc.New(lr, fine.NewCalculator())
	as := authsvc.New(sr, cfg.JWTSecret)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: ls, V: v, Log: log}
	memberC := &memberctrl.Controller{Svc: ms, V: v, Log: log}
	loanC := &loanctrl.Controller{Lending: ls, Loans: fs, Members: mr, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Book:      bookC,
		Member:    memberC,
		Loan:      loanC,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
