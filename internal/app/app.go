package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapp "studio_cms/internal/app/http"
	"studio_cms/internal/config"
	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/repository"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/services/content"
	"studio_cms/internal/storage"
	"studio_cms/internal/storage/memory"
	"studio_cms/internal/storage/mongodb"
	"studio_cms/internal/storage/postgresql"
	redisapp "studio_cms/internal/storage/redis"
	httprouters "studio_cms/internal/transport/http"
)

// byOrder ручной порядок, равные order по времени создания
var byOrder = []storage.SortField{{Field: "order"}, {Field: "createdAt"}}

type App struct {
	HTTPServer *httpapp.Server

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisapp.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	store, err := NewStore(cfg.Storage)
	if err != nil {
		panic(err)
	}

	v := validate.New()
	repo := repository.NewRepository(store, v)

	tokens, redisClient := newTokenRepo(log, cfg.Redis)

	authService := auth.New(log, repo.Admins, tokens, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	routers := httprouters.NewRouter(log, httprouters.Config{
		CookieSecure:    cfg.SecureCookies(),
		WhatsAppPhone:   cfg.WhatsApp.Phone,
		WhatsAppMessage: cfg.WhatsApp.Message,
	}, NewServices(log, repo, authService))

	server := httpapp.New(log, httpapp.Options{
		Host:            cfg.HTTP.Host,
		Port:            cfg.HTTP.Port,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		Debug:           cfg.HTTP.Debug,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		LoginPerMinute:  cfg.RateLimit.LoginPerMinute,
		SubmitPerMinute: cfg.RateLimit.SubmitPerMinute,
	}, v, routers, authService, repo)

	return &App{
		HTTPServer: server,
		log:        log,
		repo:       repo,
		redis:      redisClient,
	}
}

// NewStore выбирает хранилище документов. Подключение откладывается
// до первого запроса.
func NewStore(cfg config.StorageConfig) (storage.Store, error) {
	indexes := repository.UniqueIndexes()

	switch cfg.Driver {
	case config.DriverMongo:
		return mongodb.New(cfg.MongoURI, cfg.MongoDatabase, cfg.ConnectTimeout, indexes...), nil
	case config.DriverPostgres:
		return postgresql.New(cfg.PostgresDSN, indexes...), nil
	case config.DriverMemory:
		return memory.New(indexes...), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// NewServices собирает сервисы всех ресурсов сайта
func NewServices(log *slog.Logger, repo *repository.Repository, authService *auth.Auth) httprouters.Services {
	return httprouters.Services{
		Auth:         authService,
		Gallery:      content.New[models.Gallery](log, "gallery", repo.Gallery),
		Media:        content.New[models.Media](log, "media", repo.Media),
		Reels:        content.New[models.Reel](log, "reels", repo.Reels),
		Stories:      content.New[models.Story](log, "stories", repo.Stories),
		Testimonials: content.New[models.Testimonial](log, "testimonials", repo.Testimonials),
		Sections: content.New[models.Section](log, "sections", repo.Sections,
			content.WithSort[models.Section](byOrder...)),
		Settings: content.New[models.Setting](log, "settings", repo.Settings,
			content.WithSingleton(models.SettingID, func() models.Setting { return *models.DefaultSetting() })),
		Footer: content.New[models.Footer](log, "footer", repo.Footers,
			content.WithSingleton(models.FooterID, func() models.Footer { return *models.DefaultFooter() })),
		About: content.New[models.About](log, "about", repo.Abouts),
		Hero: content.New[models.Hero](log, "hero", repo.Heroes,
			content.WithSort[models.Hero](byOrder...)),
		OurStory:       content.New[models.OurStory](log, "our-story", repo.OurStories),
		WeddingStories: content.New[models.WeddingStory](log, "wedding-stories", repo.WeddingStories),
		WeddingGallery: content.New[models.WeddingGalleryImage](log, "wedding-gallery", repo.WeddingGallery,
			content.WithSort[models.WeddingGalleryImage](byOrder...)),
		Reviews: content.New[models.Review](log, "reviews", repo.Reviews),
		StudioServices: content.New[models.Service](log, "services", repo.Services,
			content.WithSort[models.Service](byOrder...)),
		Films: content.New[models.Film](log, "films", repo.Films),
	}
}

// newTokenRepo Redis, если задан адрес, иначе память процесса
func newTokenRepo(log *slog.Logger, cfg config.RedisConf) (auth.TokenRepository, *redisapp.Client) {
	if cfg.RedisAddr == "" {
		log.Info("redis is not configured, revoked tokens are kept in memory")

		return repository.NewMemoryTokenRepo(10 * time.Minute), nil
	}

	client := redisapp.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// клиент переподключается сам, сбой при старте не фатален
	if err := client.HealthCheck(ctx); err != nil {
		log.Warn("redis is unavailable", slog.String("addr", cfg.RedisAddr), sl.Err(err))
	}

	return repository.NewRedisTokenRepo(client), client
}

func (a *App) Stop() {
	const op = "app.Stop"

	log := a.log.With(slog.String("op", op))

	if err := a.HTTPServer.Stop(); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.repo.Close(ctx); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Error("failed to close redis", sl.Err(err))
		}
	}
}
