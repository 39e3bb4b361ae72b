package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/storage"
	"studio_cms/internal/transport/http/dto"
	"studio_cms/internal/transport/http/dto/response"
)

// ListGallery godoc
// @Summary Галерея
// @Description Фотографии галереи, новые первыми.
// @Tags gallery
// @Produce json
// @Param category query string false "Категория"
// @Param limit query int false "Максимум документов"
// @Success 200 {array} models.Gallery
// @Failure 400 {object} response.ErrorResponse
// @Router /api/gallery [get]
func (r *Routers) ListGallery(c echo.Context) error {
	const op = "http.routers.ListGallery"

	f, err := filterFrom(c).Str("category", "category").Build()
	if err != nil {
		return err
	}

	return list[models.Gallery](c, r.log.With(slog.String("op", op)), r.Gallery, f)
}

// ListGalleryHighlights godoc
// @Summary Избранные фотографии галереи
// @Tags gallery
// @Produce json
// @Success 200 {array} models.Gallery
// @Router /api/gallery/highlights [get]
func (r *Routers) ListGalleryHighlights(c echo.Context) error {
	const op = "http.routers.ListGalleryHighlights"

	f, err := filterFrom(c).Fixed("isHighlight", true).Build()
	if err != nil {
		return err
	}

	return list[models.Gallery](c, r.log.With(slog.String("op", op)), r.Gallery, f)
}

// CreateGallery godoc
// @Summary Добавить фотографию в галерею
// @Tags gallery
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateGalleryRequest true "Фотография"
// @Success 201 {object} models.Gallery
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse
// @Router /api/gallery [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	return create[models.Gallery, dto.CreateGalleryRequest](c, r.log.With(slog.String("op", op)), r.Gallery)
}

// UpdateGallery godoc
// @Summary Изменить фотографию галереи
// @Tags gallery
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateGalleryRequest true "Изменяемые поля"
// @Success 200 {object} models.Gallery
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gallery/{id} [put]
func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	return update[models.Gallery, dto.UpdateGalleryRequest](c, r.log.With(slog.String("op", op)), r.Gallery)
}

// DeleteGallery godoc
// @Summary Удалить фотографию галереи
// @Tags gallery
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gallery/{id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	if err := r.Gallery.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("deleted"))
}

// ListMedia godoc
// @Summary Медиафайлы
// @Tags media
// @Produce json
// @Param type query string false "image или video"
// @Param category query string false "Категория"
// @Param tag query []string false "Любой из тегов" collectionFormat(multi)
// @Param homepage query bool false "Только для главной"
// @Success 200 {array} models.Media
// @Router /api/media [get]
func (r *Routers) ListMedia(c echo.Context) error {
	const op = "http.routers.ListMedia"

	f, err := filterFrom(c).
		Str("type", "type").
		Str("category", "category").
		Tags("tag", "tags").
		Bool("homepage", "isHomepage").
		Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Media, f)
}

// CreateMedia godoc
// @Summary Добавить медиафайл
// @Tags media
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateMediaRequest true "Медиафайл"
// @Success 201 {object} models.Media
// @Failure 400 {object} response.ErrorResponse
// @Router /api/media [post]
func (r *Routers) CreateMedia(c echo.Context) error {
	const op = "http.routers.CreateMedia"

	return create[models.Media, dto.CreateMediaRequest](c, r.log.With(slog.String("op", op)), r.Media)
}

// UpdateMedia godoc
// @Summary Изменить медиафайл
// @Tags media
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateMediaRequest true "Изменяемые поля"
// @Success 200 {object} models.Media
// @Failure 404 {object} response.ErrorResponse
// @Router /api/media/{id} [put]
func (r *Routers) UpdateMedia(c echo.Context) error {
	const op = "http.routers.UpdateMedia"

	return update[models.Media, dto.UpdateMediaRequest](c, r.log.With(slog.String("op", op)), r.Media)
}

// ListReels godoc
// @Summary Короткие видео
// @Tags reels
// @Produce json
// @Param homepage query bool false "Только для главной"
// @Success 200 {array} models.Reel
// @Router /api/reels [get]
func (r *Routers) ListReels(c echo.Context) error {
	const op = "http.routers.ListReels"

	f, err := filterFrom(c).Bool("homepage", "showOnHomepage").Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Reels, f)
}

// CreateReel godoc
// @Summary Добавить видео
// @Tags reels
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateReelRequest true "Видео"
// @Success 201 {object} models.Reel
// @Failure 400 {object} response.ErrorResponse
// @Router /api/reels [post]
func (r *Routers) CreateReel(c echo.Context) error {
	const op = "http.routers.CreateReel"

	return create[models.Reel, dto.CreateReelRequest](c, r.log.With(slog.String("op", op)), r.Reels)
}

// UpdateReel godoc
// @Summary Изменить видео
// @Tags reels
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateReelRequest true "Изменяемые поля"
// @Success 200 {object} models.Reel
// @Failure 404 {object} response.ErrorResponse
// @Router /api/reels/{id} [put]
func (r *Routers) UpdateReel(c echo.Context) error {
	const op = "http.routers.UpdateReel"

	return update[models.Reel, dto.UpdateReelRequest](c, r.log.With(slog.String("op", op)), r.Reels)
}

// ListStories godoc
// @Summary Истории съёмок
// @Tags stories
// @Produce json
// @Param homepage query bool false "Только для главной"
// @Param tag query []string false "Любой из тегов" collectionFormat(multi)
// @Success 200 {array} models.Story
// @Router /api/stories [get]
func (r *Routers) ListStories(c echo.Context) error {
	const op = "http.routers.ListStories"

	f, err := filterFrom(c).
		Bool("homepage", "showOnHomepage").
		Tags("tag", "tags").
		Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Stories, f)
}

// ListFeaturedStories godoc
// @Summary Избранные истории
// @Tags stories
// @Produce json
// @Success 200 {array} models.Story
// @Router /api/stories/featured [get]
func (r *Routers) ListFeaturedStories(c echo.Context) error {
	const op = "http.routers.ListFeaturedStories"

	f, err := filterFrom(c).Fixed("isFeatured", true).Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Stories, f)
}

// GetStory godoc
// @Summary История по ID
// @Tags stories
// @Produce json
// @Param id path string true "ID документа"
// @Success 200 {object} models.Story
// @Failure 404 {object} response.ErrorResponse
// @Router /api/stories/{id} [get]
func (r *Routers) GetStory(c echo.Context) error {
	return get(c, r.Stories)
}

// CreateStory godoc
// @Summary Добавить историю
// @Tags stories
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.CreateStoryRequest true "История"
// @Success 201 {object} models.Story
// @Failure 400 {object} response.ErrorResponse
// @Router /api/stories [post]
func (r *Routers) CreateStory(c echo.Context) error {
	const op = "http.routers.CreateStory"

	return create[models.Story, dto.CreateStoryRequest](c, r.log.With(slog.String("op", op)), r.Stories)
}

// UpdateStory godoc
// @Summary Изменить историю
// @Tags stories
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateStoryRequest true "Изменяемые поля"
// @Success 200 {object} models.Story
// @Failure 404 {object} response.ErrorResponse
// @Router /api/stories/{id} [put]
func (r *Routers) UpdateStory(c echo.Context) error {
	const op = "http.routers.UpdateStory"

	return update[models.Story, dto.UpdateStoryRequest](c, r.log.With(slog.String("op", op)), r.Stories)
}

// ListTestimonials godoc
// @Summary Одобренные отзывы
// @Tags testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Router /api/testimonials [get]
func (r *Routers) ListTestimonials(c echo.Context) error {
	const op = "http.routers.ListTestimonials"

	f, err := filterFrom(c).Fixed("approved", true).Build()
	if err != nil {
		return err
	}

	return list(c, r.log.With(slog.String("op", op)), r.Testimonials, f)
}

// ListAllTestimonials godoc
// @Summary Все отзывы, включая ожидающие модерации
// @Tags testimonials
// @Produce json
// @Security AdminCookie
// @Success 200 {array} models.Testimonial
// @Router /api/testimonials/all [get]
func (r *Routers) ListAllTestimonials(c echo.Context) error {
	const op = "http.routers.ListAllTestimonials"

	return list(c, r.log.With(slog.String("op", op)), r.Testimonials, storage.Filter{})
}

// SubmitTestimonial godoc
// @Summary Оставить отзыв
// @Description Публичная форма. Отзыв появляется на сайте после одобрения.
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Отзыв"
// @Success 201 {object} models.Testimonial
// @Failure 400 {object} response.ErrorResponse
// @Router /api/testimonials [post]
func (r *Routers) SubmitTestimonial(c echo.Context) error {
	const op = "http.routers.SubmitTestimonial"

	return create[models.Testimonial, dto.CreateTestimonialRequest](c, r.log.With(slog.String("op", op)), r.Testimonials)
}

// UpdateTestimonial godoc
// @Summary Изменить или одобрить отзыв
// @Tags testimonials
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "ID документа"
// @Param request body dto.UpdateTestimonialRequest true "Изменяемые поля"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} response.ErrorResponse
// @Router /api/testimonials/{id} [put]
func (r *Routers) UpdateTestimonial(c echo.Context) error {
	const op = "http.routers.UpdateTestimonial"

	return update[models.Testimonial, dto.UpdateTestimonialRequest](c, r.log.With(slog.String("op", op)), r.Testimonials)
}

// ListSections godoc
// @Summary Секции страниц
// @Description Отсортированы по order по возрастанию.
// @Tags sections
// @Produce json
// @Success 200 {array} models.Section
// @Router /api/sections [get]
func (r *Routers) ListSections(c echo.Context) error {
	docs, err := r.Sections.List(c.Request().Context(), storage.Filter{}, 0)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, docs)
}

// SaveSection godoc
// @Summary Создать секцию или изменить переданные поля по ключу
// @Tags sections
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.SectionRequest true "Секция"
// @Success 201 {object} models.Section
// @Failure 400 {object} response.ErrorResponse
// @Router /api/sections [post]
func (r *Routers) SaveSection(c echo.Context) error {
	const op = "http.routers.SaveSection"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SectionRequest
	if err := bindValid(c, log, &req); err != nil {
		return err
	}

	section, err := r.Sections.UpsertByKey(c.Request().Context(), "key", req.Key, req.Patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, section)
}

// UpdateSection godoc
// @Summary Изменить секцию по ключу
// @Tags sections
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param key path string true "Ключ секции"
// @Param request body dto.UpdateSectionRequest true "Изменяемые поля"
// @Success 200 {object} models.Section
// @Failure 404 {object} response.ErrorResponse
// @Router /api/sections/{key} [put]
func (r *Routers) UpdateSection(c echo.Context) error {
	const op = "http.routers.UpdateSection"

	log := r.log.With(
		slog.String("op", op),
		slog.String("key", c.Param("key")),
	)

	var req dto.UpdateSectionRequest
	if err := bindValid(c, log, &req); err != nil {
		return err
	}

	section, err := r.Sections.UpdateByKey(c.Request().Context(), "key", c.Param("key"), req.Patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, section)
}

// GetSettings godoc
// @Summary Настройки сайта
// @Description Пока настройки не сохранялись, возвращаются значения по умолчанию.
// @Tags settings
// @Produce json
// @Success 200 {object} models.Setting
// @Router /api/settings [get]
func (r *Routers) GetSettings(c echo.Context) error {
	setting, err := r.Settings.GetSingleton(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, setting)
}

// SaveSettings godoc
// @Summary Сохранить настройки сайта
// @Description Меняются только переданные поля, в том числе отдельные счётчики.
// @Tags settings
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.SettingRequest true "Настройки"
// @Success 201 {object} models.Setting
// @Failure 400 {object} response.ErrorResponse
// @Router /api/settings [post]
func (r *Routers) SaveSettings(c echo.Context) error {
	const op = "http.routers.SaveSettings"

	var req dto.SettingRequest
	if err := bindValid(c, r.log.With(slog.String("op", op)), &req); err != nil {
		return err
	}

	setting, err := r.Settings.UpsertSingleton(c.Request().Context(), req.Patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, setting)
}

// GetFooter godoc
// @Summary Подвал сайта
// @Tags footer
// @Produce json
// @Success 200 {object} models.Footer
// @Router /api/footer [get]
func (r *Routers) GetFooter(c echo.Context) error {
	footer, err := r.Footer.GetSingleton(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, footer)
}

// SaveFooter godoc
// @Summary Сохранить подвал сайта
// @Description Меняются только переданные поля.
// @Tags footer
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.FooterRequest true "Подвал"
// @Success 201 {object} models.Footer
// @Failure 400 {object} response.ErrorResponse
// @Router /api/footer [post]
func (r *Routers) SaveFooter(c echo.Context) error {
	const op = "http.routers.SaveFooter"

	var req dto.FooterRequest
	if err := bindValid(c, r.log.With(slog.String("op", op)), &req); err != nil {
		return err
	}

	footer, err := r.Footer.UpsertSingleton(c.Request().Context(), req.Patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, footer)
}
