package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"loanlink-backend/internal/adapter/gateway"
	httpadp "loanlink-backend/internal/adapter/http"
	mw "loanlink-backend/internal/adapter/middleware"
	"loanlink-backend/internal/adapter/repository/mysql"
	"loanlink-backend/internal/config"
	userDomain "loanlink-backend/internal/domain/user"
	"loanlink-backend/internal/infrastructure/cache"
	"loanlink-backend/internal/infrastructure/db"
	appUC "loanlink-backend/internal/usecase/application"
	loanUC "loanlink-backend/internal/usecase/loan"
	statsUC "loanlink-backend/internal/usecase/stats"
	userUC "loanlink-backend/internal/usecase/user"
	"loanlink-backend/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	defer func() { _ = db.Close(gdb) }()

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer func() { _ = rdb.Close() }()

	// repositories
	userRepo := mysql.NewUserRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)

	// usecases
	users := userUC.NewUsecase(userRepo)
	loans := loanUC.NewUsecase(loanRepo)
	apps := appUC.NewUsecase(appRepo, loanRepo)
	stats := statsUC.NewUsecase(userRepo, loanRepo, appRepo)

	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	stripeGW := gateway.NewStripeGateway(cfg.StripeSecretKey)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(users, issuer, httpadp.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure})
	userH := httpadp.NewUserHandler(users)
	loanH := httpadp.NewLoanHandler(loans)
	appH := httpadp.NewApplicationHandler(apps)
	statsH := httpadp.NewStatsHandler(stats)
	payH := httpadp.NewPaymentHandler(loans, stripeGW)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), echomw.CORSWithConfig(echomw.CORSConfig{
		AllowCredentials: true,
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
	}))

	authn := mw.Authenticate(issuer)
	admin := mw.RequireRoles(string(userDomain.RoleAdmin))
	staff := mw.RequireRoles(string(userDomain.RoleManager), string(userDomain.RoleAdmin))
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/auth/login", authH.Login)
	e.POST("/auth/logout", authH.Logout)

	e.POST("/users", userH.Register)
	e.GET("/users", userH.List, authn, admin)
	e.GET("/users/me", userH.Me, authn)
	e.PATCH("/users/:id/role", userH.SetRole, authn, admin)
	e.PATCH("/users/:id/status", userH.SetStatus, authn, admin)
	e.PUT("/users/profile", userH.UpdateProfile, authn)

	e.GET("/loans", loanH.List)
	e.GET("/loans/featured", loanH.Featured)
	e.GET("/loans/:id", loanH.Get)
	e.POST("/loans", loanH.Create, authn, staff)
	e.PUT("/loans/:id", loanH.Update, authn, staff)
	e.DELETE("/loans/:id", loanH.Delete, authn, staff)
	e.PATCH("/loans/toggle-home/:id", loanH.ToggleHome, authn, admin)

	e.POST("/applications", appH.Submit, authn)
	e.GET("/applications", appH.List, authn)
	e.GET("/applications/manager/:email", appH.ListByManager, authn, staff)
	e.PATCH("/applications/:id/status", appH.SetStatus, authn, staff)
	e.PATCH("/applications/:id/payment", appH.RecordPayment, authn, idemp)
	e.DELETE("/applications/:id", appH.Cancel, authn)

	e.POST("/payments/intent", payH.CreateIntent, authn)

	e.GET("/stats/admin", statsH.Admin, authn, admin)
	e.GET("/stats/manager/:email", statsH.Manager, authn, staff)
	e.GET("/stats/borrower/:email", statsH.Borrower, authn)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
