package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/widget"
)

type WhatsAppWidget struct {
	URL     string `json:"url"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// WhatsApp godoc
// @Summary Ссылка на чат WhatsApp
// @Description Номер берётся из настроек сайта, иначе из конфигурации.
// @Tags widgets
// @Produce json
// @Success 200 {object} WhatsAppWidget
// @Router /api/widgets/whatsapp [get]
func (r *Routers) WhatsApp(c echo.Context) error {
	w, err := r.whatsApp(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, w)
}

// WhatsAppHTML godoc
// @Summary Кнопка WhatsApp
// @Description HTML-фрагмент для вставки на страницу.
// @Tags widgets
// @Produce html
// @Success 200 {string} string
// @Router /api/widgets/whatsapp.html [get]
func (r *Routers) WhatsAppHTML(c echo.Context) error {
	w, err := r.whatsApp(c)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return widget.WhatsAppButton(w.Phone, w.Message).Render(c.Response())
}

func (r *Routers) whatsApp(c echo.Context) (WhatsAppWidget, error) {
	const op = "http.routers.whatsApp"

	log := r.log.With(
		slog.String("op", op),
	)

	phone := r.cfg.WhatsAppPhone

	setting, err := r.Settings.GetSingleton(c.Request().Context())
	if err != nil {
		log.Error("failed to load settings", sl.Err(err))
		return WhatsAppWidget{}, err
	}
	if setting.WhatsAppNumber != "" {
		phone = setting.WhatsAppNumber
	}

	return WhatsAppWidget{
		URL:     widget.WhatsAppURL(phone, r.cfg.WhatsAppMessage),
		Phone:   phone,
		Message: r.cfg.WhatsAppMessage,
	}, nil
}
