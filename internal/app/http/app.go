package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/arl/statsviz"
	"github.com/go-chi/httprate"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	mw "studio_cms/internal/middleware"
	httprouters "studio_cms/internal/transport/http"
	"studio_cms/internal/transport/http/dto/response"
)

type CustomValidator struct {
	validator *validate.Validator
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Pinger проверка доступности хранилища для /health/db
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Debug          bool
	AllowedOrigins []string
	// 0 отключает ограничение
	LoginPerMinute  int
	SubmitPerMinute int
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	auth    mw.Authenticator
	db      Pinger
	opts    Options
}

func New(log *slog.Logger, opts Options, v *validate.Validator, routers *httprouters.Routers, auth mw.Authenticator, db Pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: v}
	e.HTTPErrorHandler = routers.HandleError

	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout

	e.Use(middleware.Recover())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	e.Use(mw.PrometheusMetrics)

	mux := http.NewServeMux()
	if opts.Debug {
		if err := statsviz.Register(mux); err != nil {
			log.Warn("statsviz start with error", sl.Err(err))
		}
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		auth:    auth,
		db:      db,
		opts:    opts,
	}
}

// Handler для тестов через httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessMessage("ok"))
}

// healthDB проверяет хранилище; соединение поднимается при первой проверке
func (s *Server) healthDB(c echo.Context) error {
	const op = "http.Server.healthDB"

	if err := s.db.Ping(c.Request().Context()); err != nil {
		s.log.Warn("storage is unavailable", slog.String("op", op), sl.Err(err))

		return c.JSON(http.StatusServiceUnavailable, response.ErrorResponseWithDetails("storage unavailable", ""))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"storage": "ok"}))
}

func perMinute(limit int) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echo.WrapMiddleware(httprate.LimitByIP(limit, time.Minute))
}

func preflight(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) BuildRouters() {
	r := s.routers

	admin := mw.AdminOnly(s.auth, httprouters.AdminCookie)
	login := perMinute(s.opts.LoginPerMinute)
	submit := perMinute(s.opts.SubmitPerMinute)

	// публичные ресурсы для отдельного фронтенда
	cors := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.opts.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})

	s.e.GET("/healthz", s.health)
	s.e.GET("/health/db", s.healthDB)
	s.e.GET("/metrics", echoprometheus.NewHandler())
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	if s.opts.Debug {
		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
		}
	}

	api := s.e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.Login, login)
		authGroup.GET("/me", r.Me, admin)
		authGroup.POST("/logout", r.Logout)
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", r.ListGallery)
		gallery.GET("/highlights", r.ListGalleryHighlights)
		gallery.POST("", r.CreateGallery, admin)
		gallery.PUT("/:id", r.UpdateGallery, admin)
		gallery.DELETE("/:id", r.DeleteGallery, admin)
	}

	media := api.Group("/media")
	{
		media.GET("", r.ListMedia)
		media.POST("", r.CreateMedia, admin)
		media.PUT("/:id", r.UpdateMedia, admin)
	}

	reels := api.Group("/reels")
	{
		reels.GET("", r.ListReels)
		reels.POST("", r.CreateReel, admin)
		reels.PUT("/:id", r.UpdateReel, admin)
	}

	stories := api.Group("/stories")
	{
		stories.GET("", r.ListStories)
		stories.GET("/featured", r.ListFeaturedStories)
		stories.GET("/:id", r.GetStory)
		stories.POST("", r.CreateStory, admin)
		stories.PUT("/:id", r.UpdateStory, admin)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", r.ListTestimonials, cors)
		testimonials.POST("", r.SubmitTestimonial, cors, submit)
		testimonials.OPTIONS("", preflight, cors)
		testimonials.GET("/all", r.ListAllTestimonials, admin)
		testimonials.PUT("/:id", r.UpdateTestimonial, admin)
	}

	sections := api.Group("/sections")
	{
		sections.GET("", r.ListSections)
		sections.POST("", r.SaveSection, admin)
		sections.PUT("/:key", r.UpdateSection, admin)
	}

	api.GET("/settings", r.GetSettings)
	api.POST("/settings", r.SaveSettings, admin)
	api.GET("/footer", r.GetFooter)
	api.POST("/footer", r.SaveFooter, admin)

	about := api.Group("/about")
	{
		about.GET("", r.ListAbout)
		about.POST("", r.CreateAbout, admin)
		about.PUT("/:id", r.UpdateAbout, admin)
	}

	hero := api.Group("/hero")
	{
		hero.GET("", r.ListHero)
		hero.POST("", r.CreateHero, admin)
		hero.PUT("/:id", r.UpdateHero, admin)
	}

	ourStory := api.Group("/our-story")
	{
		ourStory.GET("", r.ListOurStory)
		ourStory.POST("", r.CreateOurStory, admin)
		ourStory.PUT("/:id", r.UpdateOurStory, admin)
	}

	weddingStories := api.Group("/wedding-stories")
	{
		weddingStories.GET("", r.ListWeddingStories)
		weddingStories.GET("/:id", r.GetWeddingStory)
		weddingStories.POST("", r.CreateWeddingStory, admin)
		weddingStories.PUT("/:id", r.UpdateWeddingStory, admin)
	}

	weddingGallery := api.Group("/wedding-gallery")
	{
		weddingGallery.GET("", r.ListWeddingGallery)
		weddingGallery.POST("", r.CreateWeddingGalleryImage, admin)
		weddingGallery.PUT("/:id", r.UpdateWeddingGalleryImage, admin)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.ListReviews, cors)
		reviews.POST("", r.SubmitReview, cors, submit)
		reviews.OPTIONS("", preflight, cors)
		reviews.GET("/all", r.ListAllReviews, admin)
		reviews.PUT("/:id", r.UpdateReview, admin)
	}

	services := api.Group("/services")
	{
		services.GET("", r.ListServices)
		services.POST("", r.CreateService, admin)
		services.PUT("/:id", r.UpdateService, admin)
	}

	films := api.Group("/films")
	{
		films.GET("", r.ListFilms)
		films.POST("", r.CreateFilm, admin)
		films.PUT("/:id", r.UpdateFilm, admin)
	}

	widgets := api.Group("/widgets")
	{
		widgets.GET("/whatsapp", r.WhatsApp, cors)
		widgets.OPTIONS("/whatsapp", preflight, cors)
		widgets.GET("/whatsapp.html", r.WhatsAppHTML, cors)
		widgets.OPTIONS("/whatsapp.html", preflight, cors)
	}
}
