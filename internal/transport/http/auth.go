package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/metrics"
	"studio_cms/internal/middleware"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/transport/http/dto/request"
	"studio_cms/internal/transport/http/dto/response"
)

// Login godoc
// @Summary Вход администратора
// @Description Проверяет email и пароль, устанавливает cookie admin_token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Данные для входа"
// @Success 200 {object} models.Principal "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Неверный email или пароль"
// @Failure 429 {string} string "Слишком много попыток"
// @Router /api/auth/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := bindValid(c, log, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	token, principal, err := r.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, response.Unauthorized())
		}

		metrics.AuthAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(r.adminCookie(token, int(r.Auth.TokenTTL().Seconds())))

	log.Info("admin logged in", slog.String("email", principal.Email))

	return c.JSON(http.StatusOK, principal)
}

// Me godoc
// @Summary Текущий администратор
// @Tags auth
// @Produce json
// @Security AdminCookie
// @Success 200 {object} models.Principal
// @Failure 401 {object} response.ErrorResponse "Нет действительного cookie"
// @Router /api/auth/me [get]
func (r *Routers) Me(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.Unauthorized())
	}

	return c.JSON(http.StatusOK, principal)
}

// Logout godoc
// @Summary Выход администратора
// @Description Отзывает токен и очищает cookie. Отвечает 200 и без cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/auth/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	var token string
	if cookie, err := c.Cookie(AdminCookie); err == nil {
		token = cookie.Value
	}

	c.SetCookie(r.adminCookie("", -1))

	if err := r.Auth.Logout(c.Request().Context(), token); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		return err
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("logged out"))
}

// adminCookie одинаковые атрибуты при установке и очистке, иначе браузер
// не сопоставит cookie
func (r *Routers) adminCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     AdminCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
