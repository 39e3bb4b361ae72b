package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/transport/http/dto/response"
)

const principalKey = "principal"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Principal, error)
}

// AdminOnly пропускает запрос только с действительным cookie администратора.
// На любой отказ отвечает одинаковым 401, не раскрывая причину;
// сбой хранилища передаётся обработчику ошибок echo.
func AdminOnly(authenticator Authenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			principal, err := authenticator.Authenticate(c.Request().Context(), token)
			if errors.Is(err, auth.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, response.Unauthorized())
			}
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)

			return next(c)
		}
	}
}

// PrincipalFrom возвращает администратора, установленного AdminOnly
func PrincipalFrom(c echo.Context) (models.Principal, bool) {
	p, ok := c.Get(principalKey).(models.Principal)
	return p, ok
}
