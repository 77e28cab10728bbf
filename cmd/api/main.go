package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "credit-approval-service/internal/adapter/http"
	idemp "credit-approval-service/internal/adapter/middleware"
	"credit-approval-service/internal/adapter/repository/mysql"
	"credit-approval-service/internal/config"
	"credit-approval-service/internal/domain/credit"
	"credit-approval-service/internal/infrastructure/cache"
	"credit-approval-service/internal/infrastructure/db"
	"credit-approval-service/internal/usecase/eligibility"
	"credit-approval-service/internal/usecase/origination"
	"credit-approval-service/internal/usecase/portfolio"
	"credit-approval-service/internal/usecase/registration"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	scorecard := credit.NewScorecard()

	h := httpadp.NewHandler()
	customerH := httpadp.NewCustomerHandler(registration.NewUsecase(customers))
	loanH := httpadp.NewLoanHandler(
		eligibility.NewUsecase(customers, loans, scorecard, nil),
		origination.NewUsecase(tx, scorecard, nil),
		portfolio.NewUsecase(customers, loans),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	idempTTL := time.Duration(cfg.IdempTTLSecs) * time.Second

	// routes
	e.GET("/health", h.Health)
	e.POST("/register", customerH.Register)
	e.POST("/check-eligibility", loanH.CheckEligibility)
	e.POST("/create-loan", loanH.CreateLoan, idemp.IdempotencyMiddleware(rdb, idempTTL))
	e.GET("/view-loan/:loan_id", loanH.ViewLoan)
	e.GET("/view-loans/:customer_id", loanH.ViewLoans)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
