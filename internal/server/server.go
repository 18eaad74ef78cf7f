package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polisure/polisure/internal/application"
	applicationdomain "github.com/polisure/polisure/internal/application/domain"
	"github.com/polisure/polisure/internal/blog"
	blogdomain "github.com/polisure/polisure/internal/blog/domain"
	"github.com/polisure/polisure/internal/claim"
	claimdomain "github.com/polisure/polisure/internal/claim/domain"
	"github.com/polisure/polisure/internal/config"
	"github.com/polisure/polisure/internal/newsletter"
	newsletterdomain "github.com/polisure/polisure/internal/newsletter/domain"
	"github.com/polisure/polisure/internal/observability"
	obsmetrics "github.com/polisure/polisure/internal/observability/metrics"
	"github.com/polisure/polisure/internal/payment"
	paymentdomain "github.com/polisure/polisure/internal/payment/domain"
	"github.com/polisure/polisure/internal/policy"
	policydomain "github.com/polisure/polisure/internal/policy/domain"
	"github.com/polisure/polisure/internal/review"
	reviewdomain "github.com/polisure/polisure/internal/review/domain"
	"github.com/polisure/polisure/internal/upload"
	"github.com/polisure/polisure/internal/user"
	userdomain "github.com/polisure/polisure/internal/user/domain"
	"github.com/polisure/polisure/pkg/mongodb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	config.Module,
	observability.Module,
	mongodb.Module,
	user.Module,
	policy.Module,
	application.Module,
	claim.Module,
	payment.Module,
	review.Module,
	blog.Module,
	newsletter.Module,
	upload.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	userSvc       userdomain.Service
	policySvc     policydomain.Service
	appSvc        applicationdomain.Service
	claimSvc      claimdomain.Service
	paymentSvc    paymentdomain.Service
	reviewSvc     reviewdomain.Service
	blogSvc       blogdomain.Service
	newsletterSvc newsletterdomain.Service
	uploads       *upload.Store
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	UserSvc       userdomain.Service
	PolicySvc     policydomain.Service
	AppSvc        applicationdomain.Service
	ClaimSvc      claimdomain.Service
	PaymentSvc    paymentdomain.Service
	ReviewSvc     reviewdomain.Service
	BlogSvc       blogdomain.Service
	NewsletterSvc newsletterdomain.Service
	Uploads       *upload.Store
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		userSvc:       p.UserSvc,
		policySvc:     p.PolicySvc,
		appSvc:        p.AppSvc,
		claimSvc:      p.ClaimSvc,
		paymentSvc:    p.PaymentSvc,
		reviewSvc:     p.ReviewSvc,
		blogSvc:       p.BlogSvc,
		newsletterSvc: p.NewsletterSvc,
		uploads:       p.Uploads,
	}

	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Life Insurance Platform API Running!")
	})

	// -------- Users --------
	// The wildcard segment carries an email on the profile routes and an
	// ObjectID on the role-update and delete routes.
	r.GET("/users", s.ListUsers)
	r.POST("/users", s.CreateUser)
	r.GET("/users/:identifier", s.GetUserByEmail)
	r.GET("/users/:identifier/role", s.GetUserRole)
	r.PATCH("/users/:identifier", s.UpdateUserProfile)
	r.PATCH("/users/:identifier/role", s.UpdateUserRole)
	r.DELETE("/users/:identifier", s.DeleteUser)
	r.GET("/agents", s.ListAgents)

	// -------- Policies --------
	r.GET("/policies", s.ListPolicies)
	r.POST("/policies", s.CreatePolicy)
	r.GET("/policies/:id", s.GetPolicyByID)
	r.PUT("/policies/:id", s.UpdatePolicy)
	r.DELETE("/policies/:id", s.DeletePolicy)

	// -------- Applications --------
	r.GET("/applications", s.ListApplications)
	r.POST("/applications", s.CreateApplication)
	r.GET("/applications/:id", s.GetApplicationByID)
	r.PATCH("/applications/:id/status", s.UpdateApplicationStatus)
	r.PATCH("/applications/:id/assign-agent", s.AssignAgent)

	// Agent-scoped views of the same collection.
	r.GET("/agent/applications", s.ListAssignedApplications)
	r.PATCH("/agent/applications/:id/status", s.UpdateApplicationStatusAsAgent)

	// -------- Claims --------
	r.GET("/claims", s.ListClaims)
	r.POST("/claims", s.CreateClaim)
	r.PATCH("/claims/:id/status", s.UpdateClaimStatus)
	r.Static("/uploads", s.cfg.UploadDir)

	// -------- Payments --------
	r.GET("/payments", s.ListPayments)
	r.GET("/payments/summary", s.GetPaymentsSummary)
	r.GET("/payments/:id", s.GetPaymentByID)
	r.POST("/payments/create-intent", s.CreatePaymentIntent)
	r.POST("/payments/confirm", s.ConfirmPayment)

	// -------- Reviews --------
	r.GET("/reviews", s.ListReviews)
	r.POST("/reviews", s.CreateReview)

	// -------- Blogs --------
	r.GET("/blogs", s.ListBlogs)
	r.POST("/blogs", s.CreateBlog)
	r.PATCH("/blogs/:id", s.UpdateBlog)
	r.DELETE("/blogs/:id", s.DeleteBlog)
	r.PATCH("/blogs/:id/visit", s.IncrementBlogVisit)

	// -------- Newsletter --------
	r.POST("/newsletter", s.SubscribeNewsletter)
}
