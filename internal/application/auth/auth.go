package auth

import (
	"context"

	"github.com/zhangwei/bookshop/internal/domain/token"
	"github.com/zhangwei/bookshop/internal/domain/user"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/jwt"
)

// UseCase 认证用例
// 设计说明：
// 1. 注册/登录走user领域服务,Token签发走pkg/jwt
// 2. 登出按jti吊销Token(DB权威+Redis缓存,见token.Service)
// 3. 所有凭证类失败统一返回ErrInvalidCredentials,不泄露具体原因
type UseCase struct {
	userService  user.Service
	userRepo     user.Repository
	tokenService token.Service
	jwtManager   *jwt.Manager
}

// NewUseCase 创建认证用例
func NewUseCase(
	userService user.Service,
	userRepo user.Repository,
	tokenService token.Service,
	jwtManager *jwt.Manager,
) *UseCase {
	return &UseCase{
		userService:  userService,
		userRepo:     userRepo,
		tokenService: tokenService,
		jwtManager:   jwtManager,
	}
}

// Signup 用户注册
// 邮箱重复返回ErrEmailDuplicate(409)
func (uc *UseCase) Signup(ctx context.Context, email, password, firstName, lastName string) (*user.User, error) {
	return uc.userService.Register(ctx, email, password, firstName, lastName)
}

// Login 登录,签发Access+Refresh Token对
func (uc *UseCase) Login(ctx context.Context, email, password string) (*jwt.TokenPair, error) {
	u, err := uc.userService.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.jwtManager.GenerateTokenPair(u.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Token失败")
	}

	return pair, nil
}

// Refresh 用Refresh Token换新的Access Token
// 校验:签名有效、token_type=refresh、未被吊销、用户仍存在;
// Refresh Token原样返回(不滚动续期)
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := uc.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	blacklisted, err := uc.tokenService.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, apperrors.ErrInvalidCredentials
	}

	u, err := uc.userRepo.FindByEmail(ctx, claims.Email())
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := uc.jwtManager.GenerateAccessToken(u.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Token失败")
	}

	return &jwt.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Logout 登出
// 吊销Access Token的jti;携带了Refresh Token时一并吊销
func (uc *UseCase) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := uc.jwtManager.ParseToken(accessToken)
	if err != nil {
		return err
	}

	if err := uc.tokenService.Blacklist(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return err
	}

	if refreshToken != "" {
		refreshClaims, err := uc.jwtManager.ParseRefreshToken(refreshToken)
		// 无效的Refresh Token静默忽略,Access Token已吊销即达成登出目的
		if err == nil {
			if err := uc.tokenService.Blacklist(ctx, refreshClaims.ID, refreshClaims.ExpiresAtTime()); err != nil {
				return err
			}
		}
	}

	return nil
}

// CurrentUser 按邮箱取当前用户档案
func (uc *UseCase) CurrentUser(ctx context.Context, email string) (*user.User, error) {
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return u, nil
}
