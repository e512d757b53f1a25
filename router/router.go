package router

import (
	"net/http"
	"strings"
	"time"

	"budgetapp/api"
	"budgetapp/config"
	_ "budgetapp/docs"
	"budgetapp/identity"
	"budgetapp/logger"
	"budgetapp/middleware"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logger.Logger) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	// 请求体中的数字保留原文，金额按定点数解析
	binding.EnableDecoderUseNumber = true

	r := gin.New()
	// 带或不带结尾斜杠的路径都直接处理
	r.RedirectTrailingSlash = false
	r.Use(logger.GinMiddleware(log), gin.Recovery())
	r.Use(CORSMiddleware(cfg.Server.CORSOrigins))

	jwt := middleware.NewJWT(cfg.JWT)

	var mailer service.WelcomeMailer
	if cfg.Email.Enabled {
		mailer = service.NewEmailService(cfg.Email)
	}
	authService := service.NewAuthService(db, jwt, mailer, log)
	overviewService := service.NewOverviewService(db)

	authHandler := api.NewAuthHandler(authService)
	categoryHandler := api.NewCategoryHandler(service.NewCategoryService(db))
	transactionHandler := api.NewTransactionHandler(service.NewTransactionService(db))
	budgetHandler := api.NewBudgetHandler(service.NewBudgetService(db))
	overviewHandler := api.NewOverviewHandler(overviewService, service.NewChartService(overviewService))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", api.Health)

	apiGroup := r.Group("/api")
	apiGroup.GET("/health", api.Health)

	// 认证相关路由（无需登录，按 IP 限流）
	auth := apiGroup.Group("/auth")
	{
		limited := middleware.LoginRateLimit(cfg.Security.LoginRateLimit, time.Minute)
		auth.POST("/register", limited, authHandler.Register)
		auth.POST("/login", limited, authHandler.Login)
	}

	// 需要 JWT 认证的路由
	authorized := apiGroup.Group("")
	authorized.Use(middleware.JWTAuth(jwt, identity.NewResolver(authService)))
	{
		authorized.GET("/auth/me", authHandler.Me)

		categories := authorized.Group("/categories")
		both(categories, http.MethodGet, categoryHandler.List)
		both(categories, http.MethodPost, categoryHandler.Create)

		transactions := authorized.Group("/transactions")
		both(transactions, http.MethodGet, transactionHandler.List)
		both(transactions, http.MethodPost, transactionHandler.Create)
		transactions.GET("/export", transactionHandler.Export)

		budgets := authorized.Group("/budgets")
		both(budgets, http.MethodGet, budgetHandler.List)
		both(budgets, http.MethodPost, budgetHandler.Create)
		budgets.GET("/summary", budgetHandler.Summary)
		budgets.PUT("/:id", budgetHandler.Update)
		budgets.PATCH("/:id", budgetHandler.Update)
		budgets.DELETE("/:id", budgetHandler.Delete)

		overview := authorized.Group("/overview")
		both(overview, http.MethodGet, overviewHandler.Get)
		overview.GET("/chart", overviewHandler.Chart)
	}

	return r
}

// both 同时注册不带和带结尾斜杠的集合路径
func both(g *gin.RouterGroup, method string, h gin.HandlerFunc) {
	g.Handle(method, "", h)
	g.Handle(method, "/", h)
}

// CORSMiddleware CORS 跨域中间件
// origins 为空或包含 "*" 时允许任意来源
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok || allowAll {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Vary", "Origin")
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
