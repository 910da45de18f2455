package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials indicates the username/password pair did not match
// the operator account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken indicates the bearer token failed verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// Service verifies the single operator account and issues session tokens.
// Credentials never leave the server: the client only ever sees the bcrypt
// comparison result and a signed token.
type Service struct {
	username     string
	passwordHash []byte
	secret       []byte
	tokenTTL     time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewService wires an auth service instance. passwordHash must be a bcrypt
// hash of the operator password.
func NewService(username, passwordHash, secret string, tokenTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Login checks the credentials and returns a signed HS256 token plus its
// lifetime in seconds.
func (s *Service) Login(username, password string) (string, int64, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userMatch || passErr != nil {
		s.logger.Warn("rejected login attempt", zap.String("username", username))
		return "", 0, ErrInvalidCredentials
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("operator logged in", zap.String("username", username))
	return token, int64(s.tokenTTL.Seconds()), nil
}

// Verify parses and validates a bearer token, returning its subject.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
