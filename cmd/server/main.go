package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	_ "changex/docs" // swagger docs

	"changex/internal/auth"
	"changex/internal/cache"
	"changex/internal/config"
	"changex/internal/db"
	"changex/internal/handler"
	"changex/internal/model"
	"changex/internal/repository"
	"changex/internal/router"
	"changex/internal/service"
)

// @title Changex API
// @version 1.0
// @description Record-keeping backend for FCFA to USDT conversion transactions, suppliers and beneficiaries.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Fournisseur{},
		&model.Beneficiaire{},
	); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)
	fournisseurRepo := repository.NewFournisseurRepository(gormDB)
	beneficiaireRepo := repository.NewBeneficiaireRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	userService := service.NewUserService(userRepo, jwtService)
	transactionService := service.NewTransactionService(transactionRepo, cacheClient)
	fournisseurService := service.NewFournisseurService(fournisseurRepo, transactionRepo, cacheClient)
	beneficiaireService := service.NewBeneficiaireService(beneficiaireRepo, fournisseurRepo, cacheClient)
	calculService := service.NewCalculService()
	statsService := service.NewStatsService(transactionRepo, fournisseurRepo, beneficiaireRepo, cacheClient)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	fournisseurHandler := handler.NewFournisseurHandler(fournisseurService)
	beneficiaireHandler := handler.NewBeneficiaireHandler(beneficiaireService)
	calculHandler := handler.NewCalculHandler(calculService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Register(
		e,
		cfg,
		userHandler,
		transactionHandler,
		fournisseurHandler,
		beneficiaireHandler,
		calculHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	logrus.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server start: %v", err)
	}
}
