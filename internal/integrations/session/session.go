package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("session: invalid token")
)

// Claims полезная нагрузка сессионного токена
type Claims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет сессионные токены (HS256)
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создает менеджер сессий
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выпускает токен для пользователя
func (m *Manager) Issue(actor domain.Actor) (string, error) {
	now := m.now()
	claims := Claims{
		UID:  strconv.FormatInt(actor.UserID, 10),
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет токен и возвращает личность пользователя
func (m *Manager) Parse(tokenString string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return domain.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Actor{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.UID, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, ErrInvalidToken
	}

	return domain.Actor{UserID: userID, Role: domain.ParseRole(claims.Role)}, nil
}
