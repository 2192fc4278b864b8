package service

import (
	"errors"
	"sync"
	"time"

	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session 已认证会话
// 通过不透明的 bearer token 引用
type Session struct {
	AccountID uint   `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Token     string `json:"-"`
}

// AuthService 认证服务
// 单会话模型：进程内只保留一个在线会话，再次登录静默替换前一个。
// 会话槽是仓库之外唯一的共享可变状态，用互斥锁保护。
type AuthService struct {
	cfg         *config.Config
	accountRepo repository.AccountRepository

	mu      sync.Mutex
	current *Session
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{
		cfg:         cfg,
		accountRepo: accountRepo,
	}
}

// JWTClaims JWT 声明
type JWTClaims struct {
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(accountID uint, username, role string) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := JWTClaims{
		AccountID: accountID,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti 保证每次登录签出的 token 都不同；
			// 时间戳只有秒级精度，单靠它无法区分同一秒内的两次登录
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// Login 博主登录
// 只认唯一账号的凭据对，其余一律返回 ErrInvalidCredentials
func (s *AuthService) Login(username, password string) (*Session, time.Time, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		return nil, time.Time{}, err
	}
	if account == nil {
		return nil, time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := time.Now()
	account.LastLoginAt = &now
	if err := s.accountRepo.Update(account); err != nil {
		return nil, time.Time{}, err
	}

	session := &Session{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role,
		Token:     token,
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, expiresAt, nil
}

// Logout 退出登录，幂等
// token 与在线会话不符（含已退出）时不报错
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Token == token {
		s.current = nil
	}
}

// Current 返回在线会话，未登录时返回 nil
func (s *AuthService) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// Validate 解析 bearer token
// 仅当 token 合法且与在线会话一致时返回会话，否则返回 nil
func (s *AuthService) Validate(token string) *Session {
	if token == "" {
		return nil
	}
	if _, err := s.ParseJWT(token); err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Token != token {
		return nil
	}
	session := *s.current
	return &session
}
