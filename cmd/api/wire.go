//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// Wire在编译期生成依赖组装代码:
//
//	wire gen ./cmd/api
//
// 生成的wire_gen.go提供InitializeApp(),与main.go中的手动组装等价。
// Redis/MQ这类可选依赖由自定义Provider按配置开关决定。
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

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
	"github.com/zhangwei/bookshop/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	provideTokenCache,
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewTxManager,
	wire.Bind(new(appdiscount.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
	mysql.NewUserRepository,
	mysql.NewTokenRepository,
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewBookRepository,
	mysql.NewDiscountRepository,
	mysql.NewReviewRepository,
	mysql.NewOrderRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	token.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauth.NewUseCase,
	appauthor.NewUseCase,
	appcategory.NewUseCase,
	appbook.NewUseCase,
	appdiscount.NewUseCase,
	appreview.NewUseCase,
	apporder.NewUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewDiscountHandler,
	handler.NewReviewHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideTokenCache 按配置创建黑名单缓存
// Redis未启用时返回nil,token.Service自动退化为纯DB查询
func provideTokenCache(cfg *config.Config) (token.Cache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewBlacklistCache(client), nil
}

// provideEventPublisher 按配置创建事件发布器
// MQ未启用时发布器为空操作
func provideEventPublisher(cfg *config.Config) (*eventbus.Publisher, error) {
	if !cfg.MQ.Enabled {
		return eventbus.NewPublisher(nil), nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, err
	}
	return eventbus.NewPublisher(publisher), nil
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	discountHandler *handler.DiscountHandler,
	reviewHandler *handler.ReviewHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())

	registerRoutes(r, &handlers{
		auth:     authHandler,
		author:   authorHandler,
		category: categoryHandler,
		book:     bookHandler,
		discount: discountHandler,
		review:   reviewHandler,
		order:    orderHandler,
	}, authMiddleware)

	return r
}

// InitializeApp 组装整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
