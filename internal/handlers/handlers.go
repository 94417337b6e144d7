package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"jamiifund/admin/internal/cache"
	"jamiifund/admin/internal/config"
	"jamiifund/admin/internal/middleware"
	"jamiifund/admin/internal/repository"
	"jamiifund/admin/internal/service"
	"jamiifund/admin/internal/session"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	authService *service.AuthService
	cookies     session.CookieStore
	db          *pgxpool.Pool
	cache       *redis.Client
	statsCache  *cache.StatsCache
	admins      *repository.AdminRepository
	users       *repository.UserRepository
	campaigns   *repository.CampaignRepository
	posts       *repository.BlogRepository
	activities  *repository.ActivityRepository
	stats       *repository.StatsRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, cfg *config.AppConfig) HandlerSet {
	adminRepo := repository.NewAdminRepository(db)
	auth := service.NewAuthService(adminRepo, cfg.Security, log)
	cookies := session.NewCookieStore(
		cfg.Security.CookieName,
		int(cfg.Security.TokenTTL.Seconds()),
		cfg.Security.CookieSecure && cfg.IsProduction(),
	)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		authService: auth,
		cookies:     cookies,
		db:          db,
		cache:       redisClient,
		statsCache:  cache.NewStatsCache(redisClient, cfg.Stats.CacheTTL),
		admins:      adminRepo,
		users:       repository.NewUserRepository(db),
		campaigns:   repository.NewCampaignRepository(db),
		posts:       repository.NewBlogRepository(db),
		activities:  repository.NewActivityRepository(db),
		stats:       repository.NewStatsRepository(db),
	}
}

// Cookies exposes the cookie settings so the server can hand them to the
// page gate; both sides must agree on the cookie name and attributes.
func (h HandlerSet) Cookies() session.CookieStore {
	return h.cookies
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	admin := router.Group("/admin")
	admin.POST("/login", h.Login)
	admin.POST("/logout", h.Logout)
	admin.GET("/session", h.Session)

	protected := router.Group("/admin")
	protected.Use(middleware.RequireAdmin(h.cfg.Security.JWTSecret, h.cookies))
	{
		protected.GET("/stats", h.DashboardStats)
		protected.GET("/activity", h.RecentActivity)
		protected.GET("/funds", h.FundsReport)

		protected.GET("/users/pending", h.ListPendingUsers)
		protected.PATCH("/users/:id/verification", h.UpdateUserVerification)

		protected.GET("/campaigns", h.ListCampaigns)
		protected.GET("/campaigns/pending", h.ListPendingCampaigns)
		protected.PATCH("/campaigns/:id", h.UpdateCampaign)
		protected.PATCH("/campaigns/:id/status", h.UpdateCampaignStatus)
		protected.DELETE("/campaigns/:id", h.DeleteCampaign)

		protected.PATCH("/admins/:id/active", h.UpdateAdminStatus)

		protected.GET("/posts", h.ListPosts)
		protected.POST("/posts", h.CreatePost)
		protected.PATCH("/posts/:id", h.UpdatePost)
		protected.DELETE("/posts/:id", h.DeletePost)
	}
}
