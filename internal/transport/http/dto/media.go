package dto

import "studio_cms/internal/domain/models"

type CreateMediaRequest struct {
	Type       models.MediaType `json:"type" validate:"required,oneof=image video"`
	Category   string           `json:"category" validate:"required"`
	URL        string           `json:"url" validate:"required,url"`
	PublicID   string           `json:"publicId"`
	Tags       []string         `json:"tags"`
	IsHomepage bool             `json:"isHomepage"`
}

func (r CreateMediaRequest) ToModel() models.Media {
	return models.Media{
		Type:       r.Type,
		Category:   r.Category,
		URL:        r.URL,
		PublicID:   r.PublicID,
		Tags:       r.Tags,
		IsHomepage: r.IsHomepage,
	}
}

type UpdateMediaRequest struct {
	Type       *models.MediaType `json:"type" validate:"omitnil,oneof=image video"`
	Category   *string           `json:"category" validate:"omitnil,min=1"`
	URL        *string           `json:"url" validate:"omitnil,url"`
	PublicID   *string           `json:"publicId"`
	Tags       *[]string         `json:"tags"`
	IsHomepage *bool             `json:"isHomepage"`
}

func (r UpdateMediaRequest) Patch() map[string]any { return patchOf(r) }

type CreateReelRequest struct {
	Title          string `json:"title" validate:"required"`
	VideoURL       string `json:"videoUrl" validate:"required,url"`
	PublicID       string `json:"publicId"`
	ThumbnailURL   string `json:"thumbnailUrl" validate:"omitempty,url"`
	ShowOnHomepage bool   `json:"showOnHomepage"`
}

func (r CreateReelRequest) ToModel() models.Reel {
	return models.Reel{
		Title:          r.Title,
		VideoURL:       r.VideoURL,
		PublicID:       r.PublicID,
		ThumbnailURL:   r.ThumbnailURL,
		ShowOnHomepage: r.ShowOnHomepage,
	}
}

type UpdateReelRequest struct {
	Title          *string `json:"title" validate:"omitnil,min=1"`
	VideoURL       *string `json:"videoUrl" validate:"omitnil,url"`
	PublicID       *string `json:"publicId"`
	ThumbnailURL   *string `json:"thumbnailUrl" validate:"omitnil,url|eq="`
	ShowOnHomepage *bool   `json:"showOnHomepage"`
}

func (r UpdateReelRequest) Patch() map[string]any { return patchOf(r) }

type CreateFilmRequest struct {
	Title       string       `json:"title" validate:"required"`
	CoupleNames string       `json:"coupleNames"`
	VideoURL    string       `json:"videoUrl" validate:"required,url"`
	PublicID    string       `json:"publicId"`
	Thumbnail   models.Asset `json:"thumbnail"`
	Location    string       `json:"location"`
	IsFeatured  bool         `json:"isFeatured"`
}

func (r CreateFilmRequest) ToModel() models.Film {
	return models.Film{
		Title:       r.Title,
		CoupleNames: r.CoupleNames,
		VideoURL:    r.VideoURL,
		PublicID:    r.PublicID,
		Thumbnail:   r.Thumbnail,
		Location:    r.Location,
		IsFeatured:  r.IsFeatured,
	}
}

type UpdateFilmRequest struct {
	Title       *string       `json:"title" validate:"omitnil,min=1"`
	CoupleNames *string       `json:"coupleNames"`
	VideoURL    *string       `json:"videoUrl" validate:"omitnil,url"`
	PublicID    *string       `json:"publicId"`
	Thumbnail   *models.Asset `json:"thumbnail"`
	Location    *string       `json:"location"`
	IsFeatured  *bool         `json:"isFeatured"`
}

func (r UpdateFilmRequest) Patch() map[string]any { return patchOf(r) }
