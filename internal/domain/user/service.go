package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// Service 用户领域服务
// 设计说明:
// 1. Service包含不属于单个实体的业务逻辑(密码加密、身份验证)
// 2. Service依赖Repository接口,不依赖具体实现(依赖倒置)
// 3. Service不处理HTTP请求,只处理业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)

	// Authenticate 邮箱+密码验证身份
	// 任何失败(用户不存在、密码错误)都返回ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证明文密码与哈希是否匹配
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则:
// 1. 邮箱格式校验
// 2. 密码长度8-50位
// 3. 姓/名最长50字符
// 4. 密码bcrypt加密(cost=12),邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	if len(password) < 8 || len(password) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "密码长度应为8-50个字符")
	}

	if len(firstName) > 50 || len(lastName) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "姓名最长50个字符")
	}

	// bcrypt自动加盐,cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(email, string(hashedPassword), firstName, lastName)

	// 并发注册同邮箱时由UNIQUE索引兜底,Repository转换为ErrEmailDuplicate
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate 验证身份
// 用户不存在与密码错误返回同一个错误,响应体无法区分两种情况
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.ValidatePassword(u.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// ValidatePassword 验证密码
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return ErrInvalidCredentials
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// isValidEmail 邮箱格式校验
// 简单正则,生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	if len(email) > 70 {
		return false
	}
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
