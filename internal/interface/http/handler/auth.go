package handler

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/zhangwei/bookshop/internal/application/auth"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	"github.com/zhangwei/bookshop/internal/interface/http/middleware"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// AuthHandler 认证HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
type AuthHandler struct {
	authUseCase *appauth.UseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authUseCase *appauth.UseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Signup 用户注册
// @Summary      用户注册
// @Description  创建新用户账号
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "注册信息"
// @Success      200 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	u, err := h.authUseCase.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// Login 用户登录
// @Summary      用户登录
// @Description  表单提交邮箱密码(username字段承载邮箱),返回Access+Refresh Token
// @Tags         认证
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "邮箱"
// @Param        password formData string true "密码"
// @Success      200 {object} response.Response{data=dto.TokenResponse} "登录成功"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	})
}

// Refresh 刷新Token
// @Summary      刷新Token
// @Description  用Refresh Token换取新的Access Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=dto.TokenResponse} "刷新成功"
// @Failure      401 {object} response.Response "Token无效或已吊销"
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	pair, err := h.authUseCase.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	})
}

// Logout 登出
// @Summary      登出
// @Description  吊销当前Access Token,可选一并吊销Refresh Token
// @Tags         认证
// @Security     BearerAuth
// @Produce      json
// @Param        X-Refresh-Token header string false "可选的Refresh Token,携带时一并吊销"
// @Success      200 {object} response.Response "登出成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken, ok := middleware.ExtractBearerToken(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	refreshToken := c.GetHeader("X-Refresh-Token")

	if err := h.authUseCase.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Me 当前用户信息
// @Summary      当前用户信息
// @Tags         认证
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.authUseCase.CurrentUser(c.Request.Context(), middleware.GetEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}
