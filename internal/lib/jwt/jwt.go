package jwt

import (
	"errors"
	"fmt"
	"time"

	"studio_cms/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims содержимое токена администратора: Subject = id администратора,
// ID = уникальный идентификатор токена для отзыва.
type Claims struct {
	Email string           `json:"email"`
	Role  models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// NewToken выпускает HS256-токен для администратора.
func NewToken(admin models.Admin, secret []byte, duration time.Duration, now time.Time) (string, *Claims, error) {
	const op = "lib.jwt.NewToken"

	claims := &Claims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.Hex(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokenString, claims, nil
}

// ParseToken проверяет подпись и срок действия. Любая ошибка сводится к ErrInvalidToken.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	const op = "lib.jwt.ParseToken"

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%s: %w: missing subject or id", op, ErrInvalidToken)
	}

	return claims, nil
}
