package repository

import (
	"context"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

// коллекции
const (
	AdminsCollection               = "admins"
	GalleriesCollection            = "galleries"
	MediaCollection                = "media"
	ReelsCollection                = "reels"
	StoriesCollection              = "stories"
	TestimonialsCollection         = "testimonials"
	SectionsCollection             = "sections"
	SettingsCollection             = "settings"
	FootersCollection              = "footers"
	AboutsCollection               = "abouts"
	HeroesCollection               = "heroes"
	OurStoriesCollection           = "ourstories"
	WeddingStoriesCollection       = "weddingstories"
	WeddingGalleryImagesCollection = "weddinggalleryimages"
	ReviewsCollection              = "reviews"
	ServicesCollection             = "services"
	FilmsCollection                = "films"
)

// UniqueIndexes уникальные поля, которые должно обеспечивать хранилище
func UniqueIndexes() []storage.UniqueIndex {
	return []storage.UniqueIndex{
		{Collection: AdminsCollection, Field: "email"},
		{Collection: SectionsCollection, Field: "key"},
	}
}

type Repository struct {
	store storage.Store

	Admins *AdminRepo

	Gallery        *Repo[models.Gallery, *models.Gallery]
	Media          *Repo[models.Media, *models.Media]
	Reels          *Repo[models.Reel, *models.Reel]
	Stories        *Repo[models.Story, *models.Story]
	Testimonials   *Repo[models.Testimonial, *models.Testimonial]
	Sections       *Repo[models.Section, *models.Section]
	Settings       *Repo[models.Setting, *models.Setting]
	Footers        *Repo[models.Footer, *models.Footer]
	Abouts         *Repo[models.About, *models.About]
	Heroes         *Repo[models.Hero, *models.Hero]
	OurStories     *Repo[models.OurStory, *models.OurStory]
	WeddingStories *Repo[models.WeddingStory, *models.WeddingStory]
	WeddingGallery *Repo[models.WeddingGalleryImage, *models.WeddingGalleryImage]
	Reviews        *Repo[models.Review, *models.Review]
	Services       *Repo[models.Service, *models.Service]
	Films          *Repo[models.Film, *models.Film]
}

func NewRepository(store storage.Store, v *validate.Validator) *Repository {
	return &Repository{
		store: store,

		Admins: NewAdminRepo(NewRepo[models.Admin](store.Collection(AdminsCollection), v)),

		Gallery:        NewRepo[models.Gallery](store.Collection(GalleriesCollection), v),
		Media:          NewRepo[models.Media](store.Collection(MediaCollection), v),
		Reels:          NewRepo[models.Reel](store.Collection(ReelsCollection), v),
		Stories:        NewRepo[models.Story](store.Collection(StoriesCollection), v),
		Testimonials:   NewRepo[models.Testimonial](store.Collection(TestimonialsCollection), v),
		Sections:       NewRepo[models.Section](store.Collection(SectionsCollection), v),
		Settings:       NewRepo[models.Setting](store.Collection(SettingsCollection), v),
		Footers:        NewRepo[models.Footer](store.Collection(FootersCollection), v),
		Abouts:         NewRepo[models.About](store.Collection(AboutsCollection), v),
		Heroes:         NewRepo[models.Hero](store.Collection(HeroesCollection), v),
		OurStories:     NewRepo[models.OurStory](store.Collection(OurStoriesCollection), v),
		WeddingStories: NewRepo[models.WeddingStory](store.Collection(WeddingStoriesCollection), v),
		WeddingGallery: NewRepo[models.WeddingGalleryImage](store.Collection(WeddingGalleryImagesCollection), v),
		Reviews:        NewRepo[models.Review](store.Collection(ReviewsCollection), v),
		Services:       NewRepo[models.Service](store.Collection(ServicesCollection), v),
		Films:          NewRepo[models.Film](store.Collection(FilmsCollection), v),
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) Close(ctx context.Context) error {
	return r.store.Close(ctx)
}
