package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauth "github.com/zhangwei/bookshop/internal/application/auth"
	appauthor "github.com/zhangwei/bookshop/internal/application/author"
	appbook "github.com/zhangwei/bookshop/internal/application/book"
	appcategory "github.com/zhangwei/bookshop/internal/application/category"
	appdiscount "github.com/zhangwei/bookshop/internal/application/discount"
	apporder "github.com/zhangwei/bookshop/internal/application/order"
	appreview "github.com/zhangwei/bookshop/internal/application/review"
	"github.com/zhangwei/bookshop/internal/domain/token"
	"github.com/zhangwei/bookshop/internal/domain/user"
	"github.com/zhangwei/bookshop/internal/infrastructure/config"
	"github.com/zhangwei/bookshop/internal/infrastructure/eventbus"
	"github.com/zhangwei/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/zhangwei/bookshop/internal/infrastructure/persistence/redis"
	"github.com/zhangwei/bookshop/internal/interface/http/handler"
	"github.com/zhangwei/bookshop/internal/interface/http/middleware"
	"github.com/zhangwei/bookshop/pkg/jwt"
	"github.com/zhangwei/bookshop/pkg/metrics"
	"github.com/zhangwei/bookshop/pkg/mq"
	"github.com/zhangwei/bookshop/pkg/response"
	"github.com/zhangwei/bookshop/pkg/tracing"
)

const serviceName = "bookshop-api"

// main 主程序入口
// 依赖注入手动组装:Repository ← Service ← UseCase ← Handler
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	log.Printf("配置加载成功: port=%d, mode=%s, db=%s:%d/%s",
		cfg.Server.Port, cfg.Server.Mode, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 链路追踪(可选)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(serviceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("关闭链路追踪失败: %v", err)
			}
		}()
	}

	// 4. 数据库
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. Redis(可选,仅用作黑名单缓存,DB仍是权威数据源)
	var tokenCache token.Cache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		defer redisClient.Close()
		tokenCache = redis.NewBlacklistCache(redisClient)
	}

	// 6. RabbitMQ(可选,订单事件发布)
	var mqPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer mqPublisher.Close()
	}
	events := eventbus.NewPublisher(mqPublisher)

	// 7. 依赖注入(手动组装)

	// 基础设施层
	txManager := mysql.NewTxManager(db)
	userRepo := mysql.NewUserRepository(db)
	tokenRepo := mysql.NewTokenRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	discountRepo := mysql.NewDiscountRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	tokenService := token.NewService(tokenRepo, tokenCache)

	// 应用层
	authUseCase := appauth.NewUseCase(userService, userRepo, tokenService, jwtManager)
	authorUseCase := appauthor.NewUseCase(authorRepo)
	categoryUseCase := appcategory.NewUseCase(categoryRepo)
	bookUseCase := appbook.NewUseCase(bookRepo, categoryRepo, authorRepo)
	discountUseCase := appdiscount.NewUseCase(discountRepo, bookRepo, txManager)
	reviewUseCase := appreview.NewUseCase(reviewRepo, bookRepo)
	orderUseCase := apporder.NewUseCase(orderRepo, bookRepo, discountRepo, txManager, events)

	// 接口层
	authHandler := handler.NewAuthHandler(authUseCase)
	authorHandler := handler.NewAuthorHandler(authorUseCase)
	categoryHandler := handler.NewCategoryHandler(categoryUseCase)
	bookHandler := handler.NewBookHandler(bookUseCase)
	discountHandler := handler.NewDiscountHandler(discountUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)
	orderHandler := handler.NewOrderHandler(orderUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, tokenService, userRepo)

	// 8. 黑名单过期Token定期清理
	go appauth.StartPurgeLoop(ctx, tokenService, cfg.Cleanup.Interval)

	// 9. Gin引擎与路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(serviceName))
	}

	registerRoutes(r, &handlers{
		auth:     authHandler,
		author:   authorHandler,
		category: categoryHandler,
		book:     bookHandler,
		discount: discountHandler,
		review:   reviewHandler,
		order:    orderHandler,
	}, authMiddleware)

	// 10. 启动服务(优雅关闭)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("服务启动: http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号,开始优雅关闭...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭HTTP服务失败: %v", err)
	}
	log.Println("服务已退出")
}

// handlers 路由注册用的处理器集合
type handlers struct {
	auth     *handler.AuthHandler
	author   *handler.AuthorHandler
	category *handler.CategoryHandler
	book     *handler.BookHandler
	discount *handler.DiscountHandler
	review   *handler.ReviewHandler
	order    *handler.OrderHandler
}

// registerRoutes 注册路由
// 公开接口:图书/作者/分类/书评的读操作与注册登录;
// 写操作需要登录,目录管理与折扣/订单状态管理需要管理员
func registerRoutes(r *gin.Engine, h *handlers, auth *middleware.AuthMiddleware) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证模块
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", h.auth.Signup)
			authGroup.POST("/token", h.auth.Login)
			authGroup.POST("/refresh", h.auth.Refresh)
			authGroup.POST("/logout", auth.RequireAuth(), h.auth.Logout)
			authGroup.GET("/me", auth.RequireAuth(), h.auth.Me)
		}

		// 作者模块(读公开,写管理员)
		authors := v1.Group("/authors")
		{
			authors.GET("", h.author.List)
			authors.GET("/all", h.author.ListAll)
			authors.GET("/:id", h.author.Get)

			admin := authors.Group("", auth.RequireAuth(), auth.RequireAdmin())
			{
				admin.POST("", h.author.Create)
				admin.PUT("/:id", h.author.Update)
				admin.DELETE("/:id", h.author.Delete)
			}
		}

		// 分类模块(读公开,写管理员)
		categories := v1.Group("/categories")
		{
			categories.GET("", h.category.List)
			categories.GET("/all", h.category.ListAll)
			categories.GET("/:id", h.category.Get)

			admin := categories.Group("", auth.RequireAuth(), auth.RequireAdmin())
			{
				admin.POST("", h.category.Create)
				admin.PUT("/:id", h.category.Update)
				admin.DELETE("/:id", h.category.Delete)
			}
		}

		// 图书模块(读公开,写管理员)
		books := v1.Group("/books")
		{
			books.GET("", h.book.List)
			books.GET("/recommended", h.book.Recommended)
			books.GET("/popular", h.book.Popular)
			books.GET("/top-discounted", h.book.TopDiscounted)
			books.GET("/:id", h.book.Get)

			admin := books.Group("", auth.RequireAuth(), auth.RequireAdmin())
			{
				admin.POST("", h.book.Create)
				admin.PUT("/:id", h.book.Update)
				admin.DELETE("/:id", h.book.Delete)
			}
		}

		// 折扣模块(读公开,写管理员)
		discounts := v1.Group("/discounts")
		{
			discounts.GET("", h.discount.List)
			discounts.GET("/:id", h.discount.Get)

			admin := discounts.Group("", auth.RequireAuth(), auth.RequireAdmin())
			{
				admin.POST("", h.discount.Create)
				admin.PUT("/:id", h.discount.Update)
				admin.DELETE("/:id", h.discount.Delete)
			}
		}

		// 书评模块(读公开,写需登录)
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", h.review.List)
			reviews.GET("/stats/:book_id", h.review.Stats)
			reviews.GET("/:id", h.review.Get)

			authed := reviews.Group("", auth.RequireAuth())
			{
				authed.POST("", h.review.Create)
				authed.PUT("/:id", h.review.Update)
				authed.DELETE("/:id", h.review.Delete)
			}
		}

		// 订单模块(全部需登录,状态管理需管理员)
		orders := v1.Group("/orders", auth.RequireAuth())
		{
			orders.POST("", h.order.Create)
			orders.GET("", h.order.List)
			orders.GET("/:id", h.order.Get)
			orders.POST("/:id/cancel", h.order.Cancel)
			orders.PUT("/:id/status", auth.RequireAdmin(), h.order.UpdateStatus)
		}
	}
}
