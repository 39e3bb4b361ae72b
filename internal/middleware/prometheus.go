package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/metrics"
)

// PrometheusMetrics считает запросы и их длительность по шаблону маршрута
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// ошибка отдаётся обработчику echo сразу, чтобы записать итоговый статус
		if err := next(c); err != nil {
			c.Error(err)
		}

		duration := time.Since(start).Seconds()

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(duration)

		return nil
	}
}
