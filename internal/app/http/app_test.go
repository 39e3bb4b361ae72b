package httpapp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"studio_cms/internal/app"
	httpapp "studio_cms/internal/app/http"
	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/logger/handlers/slogdiscard"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/repository"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/storage"
	"studio_cms/internal/storage/memory"
	redisapp "studio_cms/internal/storage/redis"
	httprouters "studio_cms/internal/transport/http"
)

const (
	adminEmail    = "owner@studio.test"
	adminPassword = "correct-horse-battery"
	frontOrigin   = "https://studio.example"
)

type IntegrationTestSuite struct {
	suite.Suite

	server *httptest.Server
	client *http.Client
	repo   *repository.Repository
	opts   httpapp.Options
}

func (s *IntegrationTestSuite) SetupTest() {
	s.opts = httpapp.Options{
		AllowedOrigins:  []string{frontOrigin},
		LoginPerMinute:  100,
		SubmitPerMinute: 100,
	}
	s.start()
}

func (s *IntegrationTestSuite) start() {
	log := slogdiscard.NewDiscardLogger()

	v := validate.New()
	s.repo = repository.NewRepository(memory.New(repository.UniqueIndexes()...), v)

	mr := miniredis.RunT(s.T())
	redisClient := redisapp.NewClient(mr.Addr(), "", 0)
	s.T().Cleanup(func() { _ = redisClient.Close() })

	authService := auth.New(log, s.repo.Admins, repository.NewRedisTokenRepo(redisClient), "integration-secret", time.Hour)

	_, err := authService.RegisterAdmin(context.Background(), adminEmail, adminPassword, models.RoleAdmin)
	s.Require().NoError(err)

	routers := httprouters.NewRouter(log, httprouters.Config{
		WhatsAppPhone:   "+91 98765 43210",
		WhatsAppMessage: "Hi! I'd like to book a shoot",
	}, app.NewServices(log, s.repo, authService))

	srv := httpapp.New(log, s.opts, v, routers, authService, s.repo)
	srv.BuildRouters()

	s.server = httptest.NewServer(srv.Handler())
	s.T().Cleanup(s.server.Close)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) request(method, path, body string, headers ...string) (int, http.Header, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, resp.Header, data
}

func (s *IntegrationTestSuite) login() {
	status, _, _ := s.request(http.MethodPost, "/api/auth/login",
		`{"email":"`+adminEmail+`","password":"`+adminPassword+`"}`)
	s.Require().Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) decode(data []byte, out any) {
	s.Require().NoError(json.Unmarshal(data, out), string(data))
}

func (s *IntegrationTestSuite) TestAuthFlow() {
	unauthorized := `{"status":"error","error":"unauthorized"}`

	status, _, body := s.request(http.MethodGet, "/api/auth/me", "")
	s.Equal(http.StatusUnauthorized, status)
	s.JSONEq(unauthorized, string(body))

	status, _, body = s.request(http.MethodGet, "/api/auth/me", "", "Cookie", httprouters.AdminCookie+"=garbage")
	s.Equal(http.StatusUnauthorized, status)
	s.JSONEq(unauthorized, string(body), "malformed cookie must look like a missing one")

	status, _, _ = s.request(http.MethodPost, "/api/auth/login", `{"email":"`+adminEmail+`","password":"wrong-password"}`)
	s.Equal(http.StatusUnauthorized, status)

	s.login()

	var token string
	for _, c := range s.client.Jar.Cookies(mustURL(s.server.URL)) {
		if c.Name == httprouters.AdminCookie {
			token = c.Value
		}
	}
	s.Require().NotEmpty(token)

	status, _, body = s.request(http.MethodGet, "/api/auth/me", "")
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`{"email":"`+adminEmail+`","role":"admin"}`, string(body))

	status, _, _ = s.request(http.MethodPost, "/api/auth/logout", "")
	s.Equal(http.StatusOK, status)

	status, _, _ = s.request(http.MethodGet, "/api/auth/me", "")
	s.Equal(http.StatusUnauthorized, status)

	// отозванный токен не принимается, даже если клиент его сохранил
	status, _, body = s.request(http.MethodGet, "/api/auth/me", "", "Cookie", httprouters.AdminCookie+"="+token)
	s.Equal(http.StatusUnauthorized, status)
	s.JSONEq(unauthorized, string(body))
}

func (s *IntegrationTestSuite) TestWritesRequireAdmin() {
	status, _, _ := s.request(http.MethodPost, "/api/gallery", `{"imageUrl":"https://cdn.test/a.jpg","category":"wedding"}`)
	s.Equal(http.StatusUnauthorized, status)

	status, _, _ = s.request(http.MethodGet, "/api/testimonials/all", "")
	s.Equal(http.StatusUnauthorized, status)

	docs, err := s.repo.Gallery.List(context.Background(), storage.Query{})
	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *IntegrationTestSuite) TestCreateThenList() {
	s.login()

	url := gofakeit.URL()
	status, _, body := s.request(http.MethodPost, "/api/gallery",
		`{"imageUrl":"`+url+`","category":"wedding","title":"First look"}`)
	s.Require().Equal(http.StatusCreated, status)

	var created models.Gallery
	s.decode(body, &created)
	s.False(created.ID.IsZero())
	s.False(created.CreatedAt.IsZero())

	status, _, body = s.request(http.MethodGet, "/api/gallery", "")
	s.Require().Equal(http.StatusOK, status)

	var list []models.Gallery
	s.decode(body, &list)
	s.Require().Len(list, 1)
	s.Equal(created.ID, list[0].ID)
	s.Equal(url, list[0].ImageURL)
	s.Equal("First look", list[0].Title)
}

func (s *IntegrationTestSuite) TestValidationNeverPersists() {
	s.login()

	status, _, body := s.request(http.MethodPost, "/api/gallery", `{"category":"wedding"}`)
	s.Equal(http.StatusBadRequest, status)

	var errBody map[string]any
	s.decode(body, &errBody)
	s.Equal("error", errBody["status"])
	s.Equal("imageUrl is required", errBody["error"])

	status, _, _ = s.request(http.MethodPost, "/api/gallery", `{"imageUrl":`)
	s.Equal(http.StatusBadRequest, status)

	status, _, body = s.request(http.MethodGet, "/api/gallery", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))
}

func (s *IntegrationTestSuite) TestEmptyArraysAreNotNull() {
	s.login()

	status, _, body := s.request(http.MethodPost, "/api/media",
		`{"type":"image","category":"wedding","url":"https://cdn.test/m.jpg"}`)
	s.Require().Equal(http.StatusCreated, status)

	var created map[string]any
	s.decode(body, &created)
	s.Equal([]any{}, created["tags"])
}

func (s *IntegrationTestSuite) TestSectionUpsertByKey() {
	s.login()

	status, _, _ := s.request(http.MethodPost, "/api/sections", `{"key":"intro","title":"First","order":2}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, _ = s.request(http.MethodPost, "/api/sections", `{"key":"intro","title":"Second","order":1}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, _ = s.request(http.MethodPost, "/api/sections", `{"key":"cta","title":"Book now","order":0}`)
	s.Require().Equal(http.StatusCreated, status)

	status, _, body := s.request(http.MethodGet, "/api/sections", "")
	s.Require().Equal(http.StatusOK, status)

	var sections []models.Section
	s.decode(body, &sections)
	s.Require().Len(sections, 2)
	s.Equal("cta", sections[0].Key)
	s.Equal("intro", sections[1].Key)
	s.Equal("Second", sections[1].Title)

	status, _, body = s.request(http.MethodPut, "/api/sections/intro", `{"subtitle":"Hello"}`)
	s.Require().Equal(http.StatusOK, status)
	var updated models.Section
	s.decode(body, &updated)
	s.Equal("Second", updated.Title)
	s.Equal("Hello", updated.Subtitle)

	status, _, _ = s.request(http.MethodPut, "/api/sections/missing", `{"title":"x"}`)
	s.Equal(http.StatusNotFound, status)

	status, _, _ = s.request(http.MethodPost, "/api/sections", `{"key":"Not A Slug"}`)
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestUpdateMissingNeverCreates() {
	s.login()

	status, _, _ := s.request(http.MethodPut, "/api/reels/"+primitiveHex(), `{"title":"Ghost"}`)
	s.Equal(http.StatusNotFound, status)

	status, _, _ = s.request(http.MethodPut, "/api/reels/not-an-id", `{"title":"Ghost"}`)
	s.Equal(http.StatusNotFound, status)

	status, _, body := s.request(http.MethodGet, "/api/reels", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))
}

func (s *IntegrationTestSuite) TestDeleteGallery() {
	s.login()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		status, _, body := s.request(http.MethodPost, "/api/gallery", `{"imageUrl":"`+gofakeit.URL()+`","category":"portrait"}`)
		s.Require().Equal(http.StatusCreated, status)

		var g models.Gallery
		s.decode(body, &g)
		ids = append(ids, g.ID.Hex())
	}

	status, _, _ := s.request(http.MethodDelete, "/api/gallery/"+ids[1], "")
	s.Equal(http.StatusOK, status)

	status, _, _ = s.request(http.MethodDelete, "/api/gallery/"+ids[1], "")
	s.Equal(http.StatusNotFound, status)

	status, _, body := s.request(http.MethodGet, "/api/gallery", "")
	s.Require().Equal(http.StatusOK, status)

	var rest []models.Gallery
	s.decode(body, &rest)
	s.Require().Len(rest, 2)
	s.Equal(ids[2], rest[0].ID.Hex())
	s.Equal(ids[0], rest[1].ID.Hex())
}

func (s *IntegrationTestSuite) TestHighlightsAndFeatured() {
	s.login()

	for i, highlight := range []bool{true, false, true} {
		body := `{"imageUrl":"https://cdn.test/` + string(rune('a'+i)) + `.jpg","category":"wedding","isHighlight":` + boolStr(highlight) + `}`
		status, _, _ := s.request(http.MethodPost, "/api/gallery", body)
		s.Require().Equal(http.StatusCreated, status)
	}

	status, _, body := s.request(http.MethodGet, "/api/gallery/highlights", "")
	s.Require().Equal(http.StatusOK, status)

	var highlights []models.Gallery
	s.decode(body, &highlights)
	s.Require().Len(highlights, 2)
	s.Equal("https://cdn.test/c.jpg", highlights[0].ImageURL)
	s.Equal("https://cdn.test/a.jpg", highlights[1].ImageURL)
	for _, g := range highlights {
		s.True(g.IsHighlight)
	}

	story := func(title string, featured bool) string {
		return `{"title":"` + title + `","eventType":"wedding","coverImage":{"url":"https://cdn.test/cover.jpg"},"isFeatured":` + boolStr(featured) + `}`
	}
	for _, body := range []string{story("One", true), story("Two", false), story("Three", true)} {
		status, _, _ := s.request(http.MethodPost, "/api/stories", body)
		s.Require().Equal(http.StatusCreated, status)
	}

	status, _, body = s.request(http.MethodGet, "/api/stories/featured", "")
	s.Require().Equal(http.StatusOK, status)

	var featured []models.Story
	s.decode(body, &featured)
	s.Require().Len(featured, 2)
	s.Equal("Three", featured[0].Title)
	s.Equal("One", featured[1].Title)

	status, _, body = s.request(http.MethodGet, "/api/stories/"+featured[0].ID.Hex(), "")
	s.Require().Equal(http.StatusOK, status)
	var one models.Story
	s.decode(body, &one)
	s.Equal("Three", one.Title)
}

func (s *IntegrationTestSuite) TestTestimonialModeration() {
	status, headers, body := s.request(http.MethodPost, "/api/testimonials",
		`{"clientName":"Asha","quote":"Beautiful work","approved":true}`, "Origin", frontOrigin)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(frontOrigin, headers.Get("Access-Control-Allow-Origin"))

	var submitted models.Testimonial
	s.decode(body, &submitted)
	s.False(submitted.Approved)

	status, _, body = s.request(http.MethodGet, "/api/testimonials", "")
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))

	s.login()

	status, _, _ = s.request(http.MethodPut, "/api/testimonials/"+submitted.ID.Hex(), `{"approved":true}`)
	s.Require().Equal(http.StatusOK, status)

	status, _, body = s.request(http.MethodGet, "/api/testimonials", "")
	s.Require().Equal(http.StatusOK, status)

	var approved []models.Testimonial
	s.decode(body, &approved)
	s.Require().Len(approved, 1)
	s.Equal("Asha", approved[0].ClientName)
}

func (s *IntegrationTestSuite) TestCORSPreflight() {
	status, headers, body := s.request(http.MethodOptions, "/api/testimonials", "",
		"Origin", frontOrigin,
		"Access-Control-Request-Method", http.MethodPost,
	)
	s.Equal(http.StatusNoContent, status)
	s.Empty(body)
	s.Equal(frontOrigin, headers.Get("Access-Control-Allow-Origin"))
	s.Contains(headers.Get("Access-Control-Allow-Methods"), http.MethodPost)

	status, _, body = s.request(http.MethodOptions, "/api/reviews", "")
	s.Equal(http.StatusNoContent, status)
	s.Empty(body)

	// чужой origin не получает разрешающий заголовок
	_, headers, _ = s.request(http.MethodGet, "/api/testimonials", "", "Origin", "https://evil.example")
	s.Empty(headers.Get("Access-Control-Allow-Origin"))
}

func (s *IntegrationTestSuite) TestSingletons() {
	status, _, body := s.request(http.MethodGet, "/api/settings", "")
	s.Require().Equal(http.StatusOK, status)

	var def models.Setting
	s.decode(body, &def)
	s.Equal(models.Counters{}, def.Counters)

	s.login()

	status, _, _ = s.request(http.MethodPost, "/api/settings", `{"counters":{"weddings":10},"whatsappNumber":"+1 555 123 4567"}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, _ = s.request(http.MethodPost, "/api/settings", `{"counters":{"weddings":12,"cities":3},"whatsappNumber":"+1 555 123 4567"}`)
	s.Require().Equal(http.StatusCreated, status)

	all, err := s.repo.Settings.List(context.Background(), storage.Query{})
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(12, all[0].Counters.Weddings)
	s.Equal(3, all[0].Counters.Cities)

	status, _, _ = s.request(http.MethodPost, "/api/settings", `{"counters":{"weddings":-1}}`)
	s.Equal(http.StatusBadRequest, status)

	status, _, body = s.request(http.MethodGet, "/api/widgets/whatsapp", "")
	s.Require().Equal(http.StatusOK, status)

	var w httprouters.WhatsAppWidget
	s.decode(body, &w)
	s.Equal("+1 555 123 4567", w.Phone)
	s.Equal("https://wa.me/15551234567?text=Hi%21%20I%27d%20like%20to%20book%20a%20shoot", w.URL)

	status, _, body = s.request(http.MethodGet, "/api/footer", "")
	s.Require().Equal(http.StatusOK, status)
	var footer models.Footer
	s.decode(body, &footer)
	s.Empty(footer.Email)
}

func (s *IntegrationTestSuite) TestRepeatedUpsertKeepsOmittedFields() {
	s.login()

	status, _, _ := s.request(http.MethodPost, "/api/sections", `{"key":"hero-copy","title":"A","order":3,"extra":{"x":1}}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, body := s.request(http.MethodPost, "/api/sections", `{"key":"hero-copy","title":"B"}`)
	s.Require().Equal(http.StatusCreated, status)

	var section models.Section
	s.decode(body, &section)
	s.Equal("B", section.Title)
	s.Equal(3, section.Order)
	s.Equal(map[string]any{"x": float64(1)}, section.Extra)

	status, _, _ = s.request(http.MethodPost, "/api/settings", `{"whatsappNumber":"+1 555 123 4567","counters":{"weddings":5}}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, _ = s.request(http.MethodPost, "/api/settings", `{"counters":{"cities":2}}`)
	s.Require().Equal(http.StatusCreated, status)

	status, _, body = s.request(http.MethodGet, "/api/settings", "")
	s.Require().Equal(http.StatusOK, status)
	var setting models.Setting
	s.decode(body, &setting)
	s.Equal(5, setting.Counters.Weddings)
	s.Equal(2, setting.Counters.Cities)
	s.Equal("+1 555 123 4567", setting.WhatsAppNumber)

	status, _, body = s.request(http.MethodGet, "/api/widgets/whatsapp", "")
	s.Require().Equal(http.StatusOK, status)
	var w httprouters.WhatsAppWidget
	s.decode(body, &w)
	s.Equal("+1 555 123 4567", w.Phone)

	status, _, _ = s.request(http.MethodPost, "/api/footer", `{"email":"hello@studio.test","socialLinks":{"instagram":"https://instagram.com/studio"}}`)
	s.Require().Equal(http.StatusCreated, status)
	status, _, _ = s.request(http.MethodPost, "/api/footer", `{"phone":"+1 555 000 1111"}`)
	s.Require().Equal(http.StatusCreated, status)

	status, _, body = s.request(http.MethodGet, "/api/footer", "")
	s.Require().Equal(http.StatusOK, status)
	var footer models.Footer
	s.decode(body, &footer)
	s.Equal("hello@studio.test", footer.Email)
	s.Equal("+1 555 000 1111", footer.Phone)
	s.Equal("https://instagram.com/studio", footer.SocialLinks.Instagram)
}

func (s *IntegrationTestSuite) TestHeroDefaultsActive() {
	s.login()

	status, _, body := s.request(http.MethodPost, "/api/hero",
		`{"title":"Stories in light","type":"video","mediaUrl":"https://cdn.test/hero.mp4"}`)
	s.Require().Equal(http.StatusCreated, status)

	var hero models.Hero
	s.decode(body, &hero)
	s.True(hero.IsActive)

	status, _, _ = s.request(http.MethodPost, "/api/hero",
		`{"title":"Bad","type":"gif","mediaUrl":"https://cdn.test/hero.gif"}`)
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestReviewsArePublicAndModerated() {
	status, _, _ := s.request(http.MethodPost, "/api/reviews", `{"clientName":"Ravi","rating":6,"comment":"Too good"}`)
	s.Equal(http.StatusBadRequest, status)

	status, _, _ = s.request(http.MethodPost, "/api/reviews", `{"clientName":"Ravi","rating":5,"comment":"Wonderful"}`)
	s.Require().Equal(http.StatusCreated, status)

	status, _, body := s.request(http.MethodGet, "/api/reviews", "")
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))

	s.login()

	status, _, body = s.request(http.MethodGet, "/api/reviews/all", "")
	s.Require().Equal(http.StatusOK, status)
	var all []models.Review
	s.decode(body, &all)
	s.Len(all, 1)
}

func (s *IntegrationTestSuite) TestHealthAndMetrics() {
	status, _, body := s.request(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"status":"success","message":"ok"}`, string(body))

	status, _, body = s.request(http.MethodGet, "/health/db", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"status":"success","data":{"storage":"ok"}}`, string(body))

	status, _, body = s.request(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, status)
	s.Contains(string(body), "studio_cms_http_requests_total")
}

func (s *IntegrationTestSuite) TestLoginRateLimit() {
	s.opts.LoginPerMinute = 1
	s.start()

	body := `{"email":"` + adminEmail + `","password":"wrong-password"}`

	status, _, _ := s.request(http.MethodPost, "/api/auth/login", body)
	s.Equal(http.StatusUnauthorized, status)

	status, _, _ = s.request(http.MethodPost, "/api/auth/login", body)
	s.Equal(http.StatusTooManyRequests, status)
}
