package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/auth"
	"github.com/Bhishaj9/redbull-backend/internal/config"
	"github.com/Bhishaj9/redbull-backend/internal/notify"
	"github.com/Bhishaj9/redbull-backend/internal/payment"
	"github.com/Bhishaj9/redbull-backend/internal/payout"
	"github.com/Bhishaj9/redbull-backend/internal/plan"
	"github.com/Bhishaj9/redbull-backend/internal/purchase"
	"github.com/Bhishaj9/redbull-backend/internal/recharge"
	"github.com/Bhishaj9/redbull-backend/internal/user"
	"github.com/Bhishaj9/redbull-backend/internal/wallet"
	"github.com/Bhishaj9/redbull-backend/internal/withdrawal"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Deps are the long-lived components shared with background workers.
type Deps struct {
	DB       *sqlx.DB
	Catalog  *plan.Catalog
	Payouts  *payout.Engine
	Notifier *notify.Service
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(ctx context.Context, cfg *config.Config, deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	cookies := auth.CookieOptions{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}
	gateway := payment.NewGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayBaseURL,
		cfg.Currency, config.TestGatewayKey, cfg.GatewayTimeout)

	userService := user.NewService(user.NewRepository(deps.DB), user.Options{
		JWTSecret:        cfg.JWTSecret,
		SignupBonusPaise: cfg.SignupBonusPaise,
		ReferralRate:     cfg.ReferralRate,
	})
	purchaseService := purchase.NewService(purchase.NewRepository(deps.DB), deps.Catalog, gateway, cfg.RazorpayKeySecret)
	withdrawalService := withdrawal.NewService(withdrawal.NewRepository(deps.DB), cfg.MinWithdrawalPaise, deps.Notifier)
	rechargeService := recharge.NewService(recharge.NewRepository(deps.DB), deps.Notifier)

	userHandler := user.NewHandler(userService, cookies)
	planHandler := plan.NewHandler(deps.Catalog)
	walletHandler := wallet.NewHandler(wallet.NewRepository(deps.DB))
	purchaseHandler := purchase.NewHandler(purchaseService)
	withdrawalHandler := withdrawal.NewHandler(withdrawalService)
	rechargeHandler := recharge.NewHandler(rechargeService)
	payoutHandler := payout.NewHandler(deps.Payouts)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	apiGroup := router.Group("/api")
	apiGroup.Use(RateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	apiGroup.GET("/health", Health)
	apiGroup.GET("/plans", planHandler.ListPlans)

	public := apiGroup.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/logout", userHandler.Logout)
	}

	protected := apiGroup.Group("")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret), user.RequireActiveUser(userService))
	{
		protected.GET("/auth/me", userHandler.Me)
		protected.GET("/auth/team", userHandler.Team)

		protected.POST("/account/withdraw-password", userHandler.SetWithdrawPassword)
		protected.PUT("/account/bank", userHandler.UpdateBank)

		protected.GET("/wallet", walletHandler.GetBalance)
		protected.GET("/wallet/transactions", walletHandler.ListTransactions)

		protected.POST("/purchases/buy", purchaseHandler.Buy)
		protected.POST("/purchases/create-order", purchaseHandler.CreateOrder)
		protected.POST("/purchases/verify", purchaseHandler.Verify)
		protected.GET("/purchases/my", purchaseHandler.ListMine)
		protected.GET("/purchases/plans", purchaseHandler.ListInstances)

		protected.POST("/withdraws/request", withdrawalHandler.Request)
		protected.GET("/withdraws/my", withdrawalHandler.ListMine)

		protected.POST("/recharges", rechargeHandler.Submit)
		protected.GET("/recharges/my", rechargeHandler.ListMine)
	}

	admin := apiGroup.Group("/admin")
	admin.Use(auth.AdminMiddleware(cfg.AdminPassword))
	{
		admin.GET("/users", userHandler.AdminList)
		admin.POST("/users/:id/block", userHandler.AdminToggleBlock)
		admin.DELETE("/users/:id", userHandler.AdminDelete)

		admin.GET("/withdraws", withdrawalHandler.AdminList)
		admin.POST("/withdraws/:id/process", withdrawalHandler.AdminProcess)

		admin.GET("/purchases", purchaseHandler.AdminList)

		admin.GET("/recharges", rechargeHandler.AdminList)
		admin.POST("/recharges/:id/process", rechargeHandler.AdminProcess)

		admin.POST("/plans", planHandler.CreatePlan)
		admin.POST("/payouts", payoutHandler.RunNow)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// corsMiddleware reflects the caller's origin so the cookie session works
// from the separately hosted frontend.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
