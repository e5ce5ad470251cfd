package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streamrent/streamrent/internal/config"
	financedomain "github.com/streamrent/streamrent/internal/finance/domain"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server exposes the domain store's operation contract over HTTP. It binds
// and converts request payloads only; the store performs no validation of
// its own.
type Server struct {
	log      *zap.Logger
	cfg      config.Config
	store    storedomain.Service
	finance  financedomain.Service
	sessions *sessionManager
}

type ServerParams struct {
	fx.In

	Log     *zap.Logger
	Cfg     config.Config
	Store   storedomain.Service
	Finance financedomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		log:      p.Log.Named("server"),
		cfg:      p.Cfg,
		store:    p.Store,
		finance:  p.Finance,
		sessions: newSessionManager(time.Duration(p.Cfg.SessionTTLMinutes) * time.Minute),
	}
}

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/login", s.Login)
	r.POST("/auth/logout", s.Logout)

	api := r.Group("/api/v1")
	api.Use(s.RequireSession())

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/customers/:id/sales", s.ListSalesByCustomer)
	api.GET("/customers/:id/recharges", s.ListRechargesByCustomer)

	api.POST("/providers", s.CreateProvider)
	api.GET("/providers", s.ListProviders)
	api.GET("/providers/:id", s.GetProviderByID)
	api.PATCH("/providers/:id", s.UpdateProvider)
	api.DELETE("/providers/:id", s.DeleteProvider)

	api.POST("/accounts", s.CreateAccount)
	api.GET("/accounts", s.ListAccounts)
	api.GET("/accounts/available", s.ListAvailableAccounts)
	api.GET("/accounts/:id", s.GetAccountByID)
	api.PATCH("/accounts/:id", s.UpdateAccount)
	api.DELETE("/accounts/:id", s.DeleteAccount)
	api.GET("/accounts/:id/sales", s.ListSalesByAccount)

	api.POST("/sales", s.CreateSale)
	api.GET("/sales", s.ListSales)
	api.GET("/sales/expiring", s.ListSalesExpiring)
	api.GET("/sales/:id", s.GetSaleByID)
	api.PATCH("/sales/:id", s.UpdateSale)
	api.POST("/sales/:id/cancel", s.CancelSale)
	api.POST("/sales/:id/renewals", s.RenewSale)

	api.POST("/recharges", s.CreateRecharge)
	api.GET("/recharges", s.ListRecharges)
	api.GET("/recharges/:id", s.GetRechargeByID)
	api.PATCH("/recharges/:id", s.UpdateRecharge)
	api.DELETE("/recharges/:id", s.DeleteRecharge)

	api.POST("/profiles", s.CreateProfile)
	api.GET("/profiles", s.ListProfiles)
	api.GET("/profiles/:id", s.GetProfileByID)
	api.PATCH("/profiles/:id", s.UpdateProfile)
	api.DELETE("/profiles/:id", s.DeleteProfile)

	api.POST("/payments", s.CreatePayment)
	api.GET("/payments", s.ListPayments)
	api.GET("/payments/:id", s.GetPaymentByID)
	api.PATCH("/payments/:id", s.UpdatePayment)
	api.DELETE("/payments/:id", s.DeletePayment)

	api.GET("/finance/summary", s.GetFinancialSummary)
}

func run(lc fx.Lifecycle, r *gin.Engine, s *Server, cfg config.Config, log *zap.Logger) {
	s.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)
