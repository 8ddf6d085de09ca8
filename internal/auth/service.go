package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/alazarbeyenenew2/fileshare/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "auth_token"

const tokenIssuer = "fileshare"

// Service issues and validates admin session tokens. The deployment has a
// single admin credential; sessions are short-lived signed tokens rather
// than a content-less marker cookie.
type Service struct {
	cfg     config.AuthConfig
	nowFunc func() time.Time
	parser  *jwt.Parser
}

// NewService creates a Service from the auth configuration.
func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		cfg:     cfg,
		nowFunc: time.Now,
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

// Login checks the supplied credentials against the configured admin
// credential and returns a signed session token with its expiry.
func (s *Service) Login(username, password string) (string, time.Time, error) {
	if err := s.checkCredentials(username, password); err != nil {
		return "", time.Time{}, err
	}

	now := s.nowFunc()
	expiresAt := now.Add(s.cfg.SessionTTL)

	claims := jwt.MapClaims{
		"sub": s.cfg.AdminUsername,
		"iss": tokenIssuer,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// ValidateToken verifies the session token signature and expiry.
func (s *Service) ValidateToken(tokenString string) error {
	if strings.TrimSpace(tokenString) == "" {
		return ErrUnauthorized
	}

	parsed, err := s.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrUnauthorized
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return ErrUnauthorized
	}
	if time.Unix(int64(expFloat), 0).Before(s.nowFunc()) {
		return ErrUnauthorized
	}

	return nil
}

// Production reports whether cookies should carry the Secure attribute.
func (s *Service) Production() bool {
	return s.cfg.Production
}

// SessionTTL returns the configured session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

func (s *Service) checkCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1

	var passOK bool
	if s.cfg.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
