package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zhangwei/bookshop/internal/domain/token"
	"github.com/zhangwei/bookshop/internal/domain/user"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/jwt"
	"github.com/zhangwei/bookshop/pkg/response"
)

// Context键
const (
	ctxKeyUserID  = "user_id"
	ctxKeyEmail   = "email"
	ctxKeyIsAdmin = "is_admin"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Bearer Token并验证签名/有效期
// 2. 按jti检查黑名单(已登出的Token拒绝访问)
// 3. 加载用户档案注入Context(用户被删则Token作废)
// 4. 所有凭证类失败统一401,不区分失败原因
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	tokenService token.Service
	userRepo     user.Repository
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, tokenService token.Service, userRepo user.Repository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := ExtractBearerToken(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		// Refresh Token只能用于刷新接口
		if claims.IsRefresh() {
			response.Error(c, apperrors.ErrInvalidCredentials)
			c.Abort()
			return
		}

		blacklisted, err := m.tokenService.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrInvalidCredentials)
			c.Abort()
			return
		}

		u, err := m.userRepo.FindByEmail(c.Request.Context(), claims.Email())
		if err != nil {
			response.Error(c, apperrors.ErrInvalidCredentials)
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, u.ID)
		c.Set(ctxKeyEmail, u.Email)
		c.Set(ctxKeyIsAdmin, u.Admin)

		c.Next()
	}
}

// RequireAdmin 要求管理员权限
// 必须挂在RequireAuth之后
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Error(c, apperrors.ErrNotAdmin)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ExtractBearerToken 从Authorization头提取Token
// 格式：Authorization: Bearer <token>
func ExtractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetUserID 从Context获取当前登录用户ID,未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxKeyUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetEmail 从Context获取当前登录用户邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ctxKeyEmail); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

// IsAdmin 当前用户是否为管理员
func IsAdmin(c *gin.Context) bool {
	if isAdmin, exists := c.Get(ctxKeyIsAdmin); exists {
		if b, ok := isAdmin.(bool); ok {
			return b
		}
	}
	return false
}
