package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/storage"
	"studio_cms/internal/transport/http/dto/response"
)

// HandleError единственное место, где ошибки слоёв превращаются в HTTP-ответ.
// Подключается как echo.HTTPErrorHandler.
func (r *Routers) HandleError(err error, c echo.Context) {
	const op = "http.routers.HandleError"

	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)

	if status >= http.StatusInternalServerError {
		r.log.Error("request failed",
			slog.String("op", op),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			sl.Err(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		r.log.Error("failed to write error response", slog.String("op", op), sl.Err(err))
	}
}

func errorResponse(err error) (int, response.ErrorResponse) {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, response.ErrorResponseWithDetails(ve.Reason, ve.Details())
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		// ошибки самого echo: разбор тела, неизвестный маршрут, 405.
		// Тело не в JSON (415) считается таким же некорректным запросом.
		if he.Code == http.StatusBadRequest || he.Code == http.StatusUnsupportedMediaType {
			return http.StatusBadRequest, response.InvalidRequest(fmt.Sprint(he.Message))
		}
		return he.Code, response.ErrorResponseWithDetails(fmt.Sprint(he.Message), "")
	}

	switch {
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.Unauthorized()
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, response.NotFound()
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, response.Conflict()
	}

	return http.StatusInternalServerError, response.Internal()
}
