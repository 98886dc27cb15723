package dto

import "github.com/zhangwei/bookshop/internal/domain/user"

// SignupRequest HTTP注册请求
// 说明：HTTP层的DTO,包含参数验证tag;
// 密码强度等业务规则在领域服务中二次校验
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=70" example:"reader@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=50"`
	FirstName string `json:"first_name" binding:"required,max=50" example:"伟"`
	LastName  string `json:"last_name" binding:"required,max=50" example:"张"`
}

// LoginRequest HTTP登录请求
// OAuth2密码模式风格:表单提交,username字段承载邮箱
type LoginRequest struct {
	Username string `form:"username" binding:"required" example:"reader@example.com"`
	Password string `form:"password" binding:"required"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse Token响应
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"bearer"`
}

// UserResponse 用户响应(不包含密码)
type UserResponse struct {
	ID        uint   `json:"id" example:"1"`
	Email     string `json:"email" example:"reader@example.com"`
	FirstName string `json:"first_name" example:"伟"`
	LastName  string `json:"last_name" example:"张"`
	Admin     bool   `json:"admin" example:"false"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// NewUserResponse 领域实体→HTTP响应
func NewUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
		CreatedAt: formatTime(u.CreatedAt),
	}
}
