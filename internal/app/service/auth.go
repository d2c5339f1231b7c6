package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shiptracker/internal/app/ds"
)

// credentialChecker is the only thing AuthService needs from the credential
// store, so providers can be swapped without touching session lifecycle.
type credentialChecker interface {
	Authenticate(ctx context.Context, login, password string) (*ds.User, error)
}

type sessionStore interface {
	SaveSession(ctx context.Context, sessionID string, session ds.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*ds.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type AuthService struct {
	creds    credentialChecker
	sessions sessionStore
	jwtKey   []byte
	ttl      time.Duration
}

func NewAuthService(creds credentialChecker, sessions sessionStore, jwtKey string, ttl time.Duration) *AuthService {
	return &AuthService{
		creds:    creds,
		sessions: sessions,
		jwtKey:   []byte(jwtKey),
		ttl:      ttl,
	}
}

// Login проверяет учётные данные и создаёт новую сессию. Сессия пишется в
// Redis ДО возврата токена: следующий запрос с этим токеном уже аутентифицирован.
// Повторный логин не трогает существующие сессии пользователя.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := s.creds.Authenticate(ctx, login, password)
	if err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	if err := s.sessions.SaveSession(ctx, sessionID, ds.Session{Login: user.Login, Role: user.Role}, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	claims := &ds.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user.Login,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		Role: user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", fmt.Errorf("jwt sign error: %w", err)
	}
	return tokenStr, nil
}

// Logout гасит сессию. Уже недействительный токен не ошибка.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}

// CurrentPrincipal возвращает логин и роль владельца сессии.
// Redis решает: удалённая на logout сессия делает токен недействительным.
func (s *AuthService) CurrentPrincipal(ctx context.Context, token string) (*ds.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ds.ErrUnauthenticated
	}
	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ds.ErrUnauthenticated) {
			return nil, ds.ErrUnauthenticated
		}
		return nil, err
	}
	return session, nil
}

func (s *AuthService) parseToken(tokenStr string) (*ds.SessionClaims, error) {
	claims := &ds.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
