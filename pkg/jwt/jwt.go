package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// TokenTypeRefresh Refresh Token的类型标记
// Access Token不携带token_type字段，凭此区分两类Token，
// 防止Refresh Token被直接当作Access Token使用
const TokenTypeRefresh = "refresh"

// Manager JWT管理器
// 设计说明：
// 1. 使用双Token机制：Access Token（短期）+ Refresh Token（长期）
// 2. Claims只携带sub（用户邮箱）、exp、jti，Refresh Token额外携带token_type
// 3. jti为每个Token的唯一标识，登出时按jti拉黑
type Manager struct {
	secret             string        // JWT签名密钥
	accessTokenExpire  time.Duration // Access Token有效期
	refreshTokenExpire time.Duration // Refresh Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire, refreshTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:             secret,
		accessTokenExpire:  accessTokenExpire,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// Claims 自定义JWT Claims
// sub、exp、jti由RegisteredClaims提供，TokenType仅Refresh Token携带
type Claims struct {
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// Email 返回sub声明（用户邮箱）
func (c *Claims) Email() string {
	return c.Subject
}

// IsRefresh 判断是否为Refresh Token
func (c *Claims) IsRefresh() bool {
	return c.TokenType == TokenTypeRefresh
}

// ExpiresAtTime 返回过期时间（零值表示无exp声明）
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenPair Token对（Access + Refresh）
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // 固定为"bearer"
}

// GenerateAccessToken 生成Access Token
func (m *Manager) GenerateAccessToken(email string) (string, error) {
	return m.sign(email, m.accessTokenExpire, "")
}

// GenerateTokenPair 生成Token对
// 两个Token各自携带独立的jti，可以分别拉黑
func (m *Manager) GenerateTokenPair(email string) (*TokenPair, error) {
	accessToken, err := m.sign(email, m.accessTokenExpire, "")
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.sign(email, m.refreshTokenExpire, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// sign 签发Token
func (m *Manager) sign(email string, expire time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(), // jti
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "签发Token失败")
	}
	return signed, nil
}

// ParseToken 解析并验证Token
// 签名非法、已过期、sub缺失一律返回ErrInvalidCredentials，
// 不向调用方区分失败原因（防止凭证枚举）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidCredentials
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	return claims, nil
}

// ParseRefreshToken 解析Refresh Token
// 普通Access Token没有token_type标记，不能用于刷新
func (m *Manager) ParseRefreshToken(tokenString string) (*Claims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefresh() {
		return nil, apperrors.ErrInvalidCredentials
	}
	return claims, nil
}
