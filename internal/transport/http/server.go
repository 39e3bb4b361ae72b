package http

import (
	"context"
	"log/slog"
	"time"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/storage"

	_ "studio_cms/docs"
)

const AdminCookie = "admin_token"

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, models.Principal, error)
	Logout(ctx context.Context, token string) error
	TokenTTL() time.Duration
}

// ContentService операции над коллекцией документов одного типа
type ContentService[T any] interface {
	List(ctx context.Context, f storage.Filter, limit int64) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, doc T) (T, error)
	Update(ctx context.Context, id string, patch map[string]any) (T, error)
}

type GalleryService interface {
	ContentService[models.Gallery]
	Delete(ctx context.Context, id string) error
}

type SectionService interface {
	List(ctx context.Context, f storage.Filter, limit int64) ([]models.Section, error)
	UpdateByKey(ctx context.Context, field, value string, patch map[string]any) (models.Section, error)
	UpsertByKey(ctx context.Context, field, value string, patch map[string]any) (models.Section, error)
}

type SingletonService[T any] interface {
	GetSingleton(ctx context.Context) (T, error)
	UpsertSingleton(ctx context.Context, patch map[string]any) (T, error)
}

// Services зависимости обработчиков
type Services struct {
	Auth           AuthService
	Gallery        GalleryService
	Media          ContentService[models.Media]
	Reels          ContentService[models.Reel]
	Stories        ContentService[models.Story]
	Testimonials   ContentService[models.Testimonial]
	Sections       SectionService
	Settings       SingletonService[models.Setting]
	Footer         SingletonService[models.Footer]
	About          ContentService[models.About]
	Hero           ContentService[models.Hero]
	OurStory       ContentService[models.OurStory]
	WeddingStories ContentService[models.WeddingStory]
	WeddingGallery ContentService[models.WeddingGalleryImage]
	Reviews        ContentService[models.Review]
	StudioServices ContentService[models.Service]
	Films          ContentService[models.Film]
}

type Config struct {
	// CookieSecure выставляет Secure у cookie администратора
	CookieSecure    bool
	WhatsAppPhone   string
	WhatsAppMessage string
}

type Routers struct {
	log *slog.Logger
	cfg Config

	Services
}

func NewRouter(log *slog.Logger, cfg Config, services Services) *Routers {
	return &Routers{
		log:      log,
		cfg:      cfg,
		Services: services,
	}
}
