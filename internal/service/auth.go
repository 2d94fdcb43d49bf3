package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"message_board/internal/apperrors"
	"message_board/internal/metrics"
	"message_board/internal/utils"
)

type AuthConfig struct {
	Username   string
	Password   string
	Secret     string
	TTL        time.Duration
	BcryptCost int // 0 代表 bcrypt.DefaultCost
}

// AuthService 驗證唯一的管理員帳號並簽發 session token
type AuthService struct {
	username     []byte
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	metrics      *metrics.Metrics
	now          func() time.Time
}

// passwordDigest 先取 SHA-256 再交給 bcrypt，bcrypt 只看前 72 bytes
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// NewAuthService 在啟動時把設定的密碼做 bcrypt 雜湊，記憶體中不保留明文。
// 設定值與登入時送出的欄位一樣會先去除前後空白。
func NewAuthService(cfg AuthConfig, m *metrics.Metrics) (*AuthService, error) {
	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Password = strings.TrimSpace(cfg.Password)
	if cfg.Username == "" || cfg.Password == "" || strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("%w: admin credentials and session secret", apperrors.ErrMissingConfig)
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(cfg.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &AuthService{
		username:     []byte(cfg.Username),
		passwordHash: hash,
		secret:       []byte(cfg.Secret),
		ttl:          cfg.TTL,
		metrics:      m,
		now:          time.Now,
	}, nil
}

// Login 比對帳密，成功時回傳 session token。
// 帳號與密碼都一定會比對，錯誤時不透露是哪一個欄位錯。
func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	userOK := subtle.ConstantTimeCompare([]byte(username), s.username) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, passwordDigest(password)) == nil

	if !userOK || !passOK {
		s.metrics.AdminLogins.WithLabelValues("failure").Inc()
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.secret, true, s.ttl, s.now())
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.metrics.AdminLogins.WithLabelValues("success").Inc()
	return token, nil
}

// Authorize 判斷 session token 是否帶有有效的 admin 旗標
func (s *AuthService) Authorize(token string) bool {
	if token == "" {
		return false
	}

	claims, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return false
	}

	return claims.Admin
}

// SessionTTL 回傳 session 的有效時間
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}
