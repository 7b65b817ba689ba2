package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edukamer/bootcamphub/internal/config"
	"edukamer/bootcamphub/internal/handler/middleware"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	authHandler *AuthHandler,
	referralHandler *ReferralHandler,
	leadHandler *LeadHandler,
	promotionHandler *PromotionHandler,
	studentHandler *StudentHandler,
	bootcampHandler *BootcampHandler,
	enrollmentHandler *EnrollmentHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Public referral surface: registration, lead capture and the referrer
	// lookup behind the capture page.
	referral := r.Group("/api/v1/referral")
	{
		referral.POST("/register", referralHandler.Register)
		referral.POST("/leads", referralHandler.SubmitLead)
		referral.GET("/code/:code", referralHandler.ReferrerInfo)
	}

	// Public catalog routes. Authenticated staff see inactive promotions too.
	catalog := r.Group("/api/v1")
	catalog.Use(middleware.OptionalJWTAuth(jwtManager))
	{
		catalog.GET("/promotions", promotionHandler.List)
		catalog.GET("/promotions/:id", promotionHandler.Get)
		catalog.GET("/bootcamps", bootcampHandler.List)
		catalog.GET("/bootcamps/:id", bootcampHandler.Get)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtManager))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		// Referrer dashboard
		protected.GET("/referral/leads", referralHandler.ListOwnLeads)
		protected.GET("/referral/stats", referralHandler.Stats)

		// Lead management
		protected.GET("/leads", leadHandler.List)
		protected.GET("/leads/:id", leadHandler.Get)
		protected.PUT("/leads/:id", leadHandler.Update)

		// Student records
		protected.POST("/students", studentHandler.Create)
		protected.GET("/students", studentHandler.List)
		protected.GET("/students/:id", studentHandler.Get)
		protected.PUT("/students/:id", studentHandler.Update)
		protected.DELETE("/students/:id", studentHandler.Delete)

		// Bootcamp sessions
		protected.POST("/bootcamps", bootcampHandler.Create)
		protected.PUT("/bootcamps/:id", bootcampHandler.Update)
		protected.DELETE("/bootcamps/:id", bootcampHandler.Delete)

		// Enrollments
		protected.POST("/enrollments", enrollmentHandler.Create)
		protected.GET("/enrollments", enrollmentHandler.List)
		protected.GET("/enrollments/:id", enrollmentHandler.Get)
		protected.PUT("/enrollments/:id", enrollmentHandler.Update)
		protected.DELETE("/enrollments/:id", enrollmentHandler.Delete)

		// Lead deletion and promotion mutations are reserved for staff roles.
		staff := protected.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.DELETE("/leads/:id", leadHandler.Delete)

			staff.POST("/promotions", promotionHandler.Create)
			staff.PUT("/promotions/:id", promotionHandler.Update)
			staff.DELETE("/promotions/:id", promotionHandler.Delete)
		}
	}

	return r
}
