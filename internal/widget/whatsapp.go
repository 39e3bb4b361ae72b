// Package widget собирает кнопку WhatsApp для публичного сайта.
package widget

import (
	"net/url"
	"strings"
	"unicode"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const waBase = "https://wa.me/"

// иконка WhatsApp, 24x24
const iconPath = "M12.04 2C6.58 2 2.13 6.45 2.13 11.91c0 1.75.46 3.45 1.32 4.95L2.05 22l5.25-1.38a9.9 9.9 0 0 0 4.74 1.21h.01c5.46 0 9.91-4.45 9.91-9.91A9.85 9.85 0 0 0 12.04 2zm5.8 14.03c-.24.69-1.42 1.32-1.96 1.37-.5.05-1.13.07-1.82-.11-.42-.13-.96-.31-1.65-.61-2.9-1.25-4.8-4.17-4.94-4.36-.14-.19-1.18-1.57-1.18-3 0-1.43.75-2.13 1.02-2.42.26-.29.58-.36.77-.36h.55c.18 0 .42-.07.65.5.24.58.82 2 .89 2.14.07.15.12.32.02.51-.1.19-.14.31-.29.48-.14.17-.3.38-.43.51-.14.14-.29.3-.13.59.17.29.74 1.22 1.58 1.97 1.09.97 2 1.27 2.29 1.42.29.14.46.12.63-.07.17-.2.72-.84.91-1.13.19-.29.38-.24.65-.14.26.1 1.68.79 1.97.94.29.14.48.21.55.33.07.12.07.69-.17 1.38z"

// WhatsAppURL ссылка wa.me на номер с заготовленным сообщением.
// Из номера остаются только цифры.
func WhatsAppURL(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if message == "" {
		return waBase + digits
	}

	// wa.me ожидает пробел как %20, а не +
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return waBase + digits + "?text=" + text
}

// WhatsAppButton плавающая кнопка, открывающая чат в новой вкладке
func WhatsAppButton(phone, message string) g.Node {
	return A(
		Class("whatsapp-button"),
		Href(WhatsAppURL(phone, message)),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Aria("label", "Chat on WhatsApp"),
		g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("width", "28"),
			g.Attr("height", "28"),
			g.Attr("fill", "currentColor"),
			Aria("hidden", "true"),
			g.El("path", g.Attr("d", iconPath)),
		),
	)
}
