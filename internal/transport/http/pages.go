package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/storage"
	"studio_cms/internal/transport/http/dto"
)

// ListAbout godoc
// @Summary Блоки "о нас"
// @Tags about
// @Produce json
// @Success 200 {array} models.About
// @Router /api/about [get]
func (r *Routers) ListAbout(c echo.Context) error {
	const op = "http.routers.ListAbout"

	return list(c, r.log.With(slog.String("op", op)), r.About, storage.Filter{})
}

// CreateAbout godoc
// @Summary Добавить блок "о нас"
// @Tags about
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateAboutRequest true "Блок"
// @Success 201 {object} models.About
// @Failure 400 {object} response.ErrorResponse
// @Router /api/about [post]
func (r *Routers) CreateAbout(c echo.Context) error {
	const op = "http.routers.CreateAbout"

	return create[models.About, dto.CreateAboutRequest](c, r.log.With(slog.String("op", op)), r.About)
}

// UpdateAbout godoc
// @Summary Изменить блок "о нас"
// @Tags about
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateAboutRequest true "Изменяемые поля"
// @Success 200 {object} models.About
// @Failure 404 {object} response.ErrorResponse
// @Router /api/about/{id} [put]
func (r *Routers) UpdateAbout(c echo.Context) error {
	const op = "http.routers.UpdateAbout"

	return update[models.About, dto.UpdateAboutRequest](c, r.log.With(slog.String("op", op)), r.About)
}

// ListHero godoc
// @Summary Слайды главного экрана
// @Description Отсортированы по order. active=true оставляет только включённые.
// @Tags hero
// @Produce json
// @Param active query bool false "Только активные"
// @Success 200 {array} models.Hero
// @Router /api/hero [get]
func (r *Routers) ListHero(c echo.Context) error {
	const op = "http.routers.ListHero"

	f, err := filterFrom(c).Bool("active", "isActive").Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Hero, f)
}

// CreateHero godoc
// @Summary Добавить слайд
// @Description isActive по умолчанию true.
// @Tags hero
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateHeroRequest true "Слайд"
// @Success 201 {object} models.Hero
// @Failure 400 {object} response.ErrorResponse
// @Router /api/hero [post]
func (r *Routers) CreateHero(c echo.Context) error {
	const op = "http.routers.CreateHero"

	return create[models.Hero, dto.CreateHeroRequest](c, r.log.With(slog.String("op", op)), r.Hero)
}

// UpdateHero godoc
// @Summary Изменить слайд
// @Tags hero
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateHeroRequest true "Изменяемые поля"
// @Success 200 {object} models.Hero
// @Failure 404 {object} response.ErrorResponse
// @Router /api/hero/{id} [put]
func (r *Routers) UpdateHero(c echo.Context) error {
	const op = "http.routers.UpdateHero"

	return update[models.Hero, dto.UpdateHeroRequest](c, r.log.With(slog.String("op", op)), r.Hero)
}

// ListOurStory godoc
// @Summary Блок "наша история"
// @Tags our-story
// @Produce json
// @Success 200 {array} models.OurStory
// @Router /api/our-story [get]
func (r *Routers) ListOurStory(c echo.Context) error {
	const op = "http.routers.ListOurStory"

	return list(c, r.log.With(slog.String("op", op)), r.OurStory, storage.Filter{})
}

// CreateOurStory godoc
// @Summary Добавить блок "наша история"
// @Tags our-story
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateOurStoryRequest true "Блок"
// @Success 201 {object} models.OurStory
// @Failure 400 {object} response.ErrorResponse
// @Router /api/our-story [post]
func (r *Routers) CreateOurStory(c echo.Context) error {
	const op = "http.routers.CreateOurStory"

	return create[models.OurStory, dto.CreateOurStoryRequest](c, r.log.With(slog.String("op", op)), r.OurStory)
}

// UpdateOurStory godoc
// @Summary Изменить блок "наша история"
// @Tags our-story
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateOurStoryRequest true "Изменяемые поля"
// @Success 200 {object} models.OurStory
// @Failure 404 {object} response.ErrorResponse
// @Router /api/our-story/{id} [put]
func (r *Routers) UpdateOurStory(c echo.Context) error {
	const op = "http.routers.UpdateOurStory"

	return update[models.OurStory, dto.UpdateOurStoryRequest](c, r.log.With(slog.String("op", op)), r.OurStory)
}

// ListWeddingStories godoc
// @Summary Свадебные истории
// @Tags wedding-stories
// @Produce json
// @Param featured query bool false "Только избранные"
// @Success 200 {array} models.WeddingStory
// @Router /api/wedding-stories [get]
func (r *Routers) ListWeddingStories(c echo.Context) error {
	const op = "http.routers.ListWeddingStories"

	f, err := filterFrom(c).Bool("featured", "isFeatured").Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.WeddingStories, f)
}

// GetWeddingStory godoc
// @Summary Свадебная история по ID
// @Tags wedding-stories
// @Produce json
// @Param id path string true "ID документа"
// @Success 200 {object} models.WeddingStory
// @Failure 404 {object} response.ErrorResponse
// @Router /api/wedding-stories/{id} [get]
func (r *Routers) GetWeddingStory(c echo.Context) error {
	return get(c, r.WeddingStories)
}

// CreateWeddingStory godoc
// @Summary Добавить свадебную историю
// @Tags wedding-stories
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateWeddingStoryRequest true "История"
// @Success 201 {object} models.WeddingStory
// @Failure 400 {object} response.ErrorResponse
// @Router /api/wedding-stories [post]
func (r *Routers) CreateWeddingStory(c echo.Context) error {
	const op = "http.routers.CreateWeddingStory"

	return create[models.WeddingStory, dto.CreateWeddingStoryRequest](c, r.log.With(slog.String("op", op)), r.WeddingStories)
}

// UpdateWeddingStory godoc
// @Summary Изменить свадебную историю
// @Tags wedding-stories
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateWeddingStoryRequest true "Изменяемые поля"
// @Success 200 {object} models.WeddingStory
// @Failure 404 {object} response.ErrorResponse
// @Router /api/wedding-stories/{id} [put]
func (r *Routers) UpdateWeddingStory(c echo.Context) error {
	const op = "http.routers.UpdateWeddingStory"

	return update[models.WeddingStory, dto.UpdateWeddingStoryRequest](c, r.log.With(slog.String("op", op)), r.WeddingStories)
}

// ListWeddingGallery godoc
// @Summary Свадебная галерея
// @Tags wedding-gallery
// @Produce json
// @Param photoType query string false "bride, groom, couple, ceremony, candid, decor"
// @Param weddingStoryId query string false "ID свадебной истории"
// @Success 200 {array} models.WeddingGalleryImage
// @Failure 400 {object} response.ErrorResponse
// @Router /api/wedding-gallery [get]
func (r *Routers) ListWeddingGallery(c echo.Context) error {
	const op = "http.routers.ListWeddingGallery"

	f, err := filterFrom(c).
		Str("photoType", "photoType").
		ObjectID("weddingStoryId", "weddingStoryId").
		Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.WeddingGallery, f)
}

// CreateWeddingGalleryImage godoc
// @Summary Добавить фото в свадебную галерею
// @Tags wedding-gallery
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateWeddingGalleryImageRequest true "Фото"
// @Success 201 {object} models.WeddingGalleryImage
// @Failure 400 {object} response.ErrorResponse
// @Router /api/wedding-gallery [post]
func (r *Routers) CreateWeddingGalleryImage(c echo.Context) error {
	const op = "http.routers.CreateWeddingGalleryImage"

	return create[models.WeddingGalleryImage, dto.CreateWeddingGalleryImageRequest](c, r.log.With(slog.String("op", op)), r.WeddingGallery)
}

// UpdateWeddingGalleryImage godoc
// @Summary Изменить фото свадебной галереи
// @Tags wedding-gallery
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateWeddingGalleryImageRequest true "Изменяемые поля"
// @Success 200 {object} models.WeddingGalleryImage
// @Failure 404 {object} response.ErrorResponse
// @Router /api/wedding-gallery/{id} [put]
func (r *Routers) UpdateWeddingGalleryImage(c echo.Context) error {
	const op = "http.routers.UpdateWeddingGalleryImage"

	return update[models.WeddingGalleryImage, dto.UpdateWeddingGalleryImageRequest](c, r.log.With(slog.String("op", op)), r.WeddingGallery)
}

// ListReviews godoc
// @Summary Одобренные оценки клиентов
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Router /api/reviews [get]
func (r *Routers) ListReviews(c echo.Context) error {
	const op = "http.routers.ListReviews"

	f, err := filterFrom(c).Fixed("approved", true).Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Reviews, f)
}

// ListAllReviews godoc
// @Summary Все оценки, включая ожидающие модерации
// @Tags reviews
// @Produce json
// @Security AdminCookie
// @Success 200 {array} models.Review
// @Router /api/reviews/all [get]
func (r *Routers) ListAllReviews(c echo.Context) error {
	const op = "http.routers.ListAllReviews"

	return list(c, r.log.With(slog.String("op", op)), r.Reviews, storage.Filter{})
}

// SubmitReview godoc
// @Summary Оставить оценку
// @Description Публичная форма, новая оценка не одобрена.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Оценка"
// @Success 201 {object} models.Review
// @Failure 400 {object} response.ErrorResponse
// @Router /api/reviews [post]
func (r *Routers) SubmitReview(c echo.Context) error {
	const op = "http.routers.SubmitReview"

	return create[models.Review, dto.CreateReviewRequest](c, r.log.With(slog.String("op", op)), r.Reviews)
}

// UpdateReview godoc
// @Summary Изменить или одобрить оценку
// @Tags reviews
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateReviewRequest true "Изменяемые поля"
// @Success 200 {object} models.Review
// @Failure 404 {object} response.ErrorResponse
// @Router /api/reviews/{id} [put]
func (r *Routers) UpdateReview(c echo.Context) error {
	const op = "http.routers.UpdateReview"

	return update[models.Review, dto.UpdateReviewRequest](c, r.log.With(slog.String("op", op)), r.Reviews)
}

// ListServices godoc
// @Summary Услуги студии
// @Tags services
// @Produce json
// @Param serviceType query string false "Тип услуги"
// @Success 200 {array} models.Service
// @Router /api/services [get]
func (r *Routers) ListServices(c echo.Context) error {
	const op = "http.routers.ListServices"

	f, err := filterFrom(c).Str("serviceType", "serviceType").Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.StudioServices, f)
}

// CreateService godoc
// @Summary Добавить услугу
// @Tags services
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateServiceRequest true "Услуга"
// @Success 201 {object} models.Service
// @Failure 400 {object} response.ErrorResponse
// @Router /api/services [post]
func (r *Routers) CreateService(c echo.Context) error {
	const op = "http.routers.CreateService"

	return create[models.Service, dto.CreateServiceRequest](c, r.log.With(slog.String("op", op)), r.StudioServices)
}

// UpdateService godoc
// @Summary Изменить услугу
// @Tags services
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateServiceRequest true "Изменяемые поля"
// @Success 200 {object} models.Service
// @Failure 404 {object} response.ErrorResponse
// @Router /api/services/{id} [put]
func (r *Routers) UpdateService(c echo.Context) error {
	const op = "http.routers.UpdateService"

	return update[models.Service, dto.UpdateServiceRequest](c, r.log.With(slog.String("op", op)), r.StudioServices)
}

// ListFilms godoc
// @Summary Свадебные фильмы
// @Tags films
// @Produce json
// @Param featured query bool false "Только избранные"
// @Success 200 {array} models.Film
// @Router /api/films [get]
func (r *Routers) ListFilms(c echo.Context) error {
	const op = "http.routers.ListFilms"

	f, err := filterFrom(c).Bool("featured", "isFeatured").Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Films, f)
}

// CreateFilm godoc
// @Summary Добавить фильм
// @Tags films
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateFilmRequest true "Фильм"
// @Success 201 {object} models.Film
// @Failure 400 {object} response.ErrorResponse
// @Router /api/films [post]
func (r *Routers) CreateFilm(c echo.Context) error {
	const op = "http.routers.CreateFilm"

	return create[models.Film, dto.CreateFilmRequest](c, r.log.With(slog.String("op", op)), r.Films)
}

// UpdateFilm godoc
// @Summary Изменить фильм
// @Tags films
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateFilmRequest true "Изменяемые поля"
// @Success 200 {object} models.Film
// @Failure 404 {object} response.ErrorResponse
// @Router /api/films/{id} [put]
func (r *Routers) UpdateFilm(c echo.Context) error {
	const op = "http.routers.UpdateFilm"

	return update[models.Film, dto.UpdateFilmRequest](c, r.log.With(slog.String("op", op)), r.Films)
}
