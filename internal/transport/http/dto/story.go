package dto

import (
	"time"

	"studio_cms/internal/domain/models"
)

type CreateStoryRequest struct {
	Title          string                 `json:"title" validate:"required"`
	EventType      string                 `json:"eventType" validate:"required"`
	Location       string                 `json:"location"`
	Description    string                 `json:"description"`
	CoverImage     models.RequiredAsset   `json:"coverImage"`
	Gallery        []models.RequiredAsset `json:"gallery" validate:"dive"`
	Videos         []models.RequiredAsset `json:"videos" validate:"dive"`
	Tags           []string               `json:"tags"`
	IsFeatured     bool                   `json:"isFeatured"`
	ShowOnHomepage bool                   `json:"showOnHomepage"`
}

func (r CreateStoryRequest) ToModel() models.Story {
	return models.Story{
		Title:          r.Title,
		EventType:      r.EventType,
		Location:       r.Location,
		Description:    r.Description,
		CoverImage:     r.CoverImage,
		Gallery:        r.Gallery,
		Videos:         r.Videos,
		Tags:           r.Tags,
		IsFeatured:     r.IsFeatured,
		ShowOnHomepage: r.ShowOnHomepage,
	}
}

type UpdateStoryRequest struct {
	Title          *string                 `json:"title" validate:"omitnil,min=1"`
	EventType      *string                 `json:"eventType" validate:"omitnil,min=1"`
	Location       *string                 `json:"location"`
	Description    *string                 `json:"description"`
	CoverImage     *models.RequiredAsset   `json:"coverImage"`
	Gallery        *[]models.RequiredAsset `json:"gallery" validate:"omitnil,dive"`
	Videos         *[]models.RequiredAsset `json:"videos" validate:"omitnil,dive"`
	Tags           *[]string               `json:"tags"`
	IsFeatured     *bool                   `json:"isFeatured"`
	ShowOnHomepage *bool                   `json:"showOnHomepage"`
}

func (r UpdateStoryRequest) Patch() map[string]any { return patchOf(r) }

type CreateWeddingStoryRequest struct {
	CoupleNames string                 `json:"coupleNames" validate:"required"`
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	WeddingDate *time.Time             `json:"weddingDate"`
	Location    string                 `json:"location"`
	CoverImage  models.RequiredAsset   `json:"coverImage"`
	Images      []models.RequiredAsset `json:"images" validate:"dive"`
	IsFeatured  bool                   `json:"isFeatured"`
}

func (r CreateWeddingStoryRequest) ToModel() models.WeddingStory {
	return models.WeddingStory{
		CoupleNames: r.CoupleNames,
		Title:       r.Title,
		Description: r.Description,
		WeddingDate: r.WeddingDate,
		Location:    r.Location,
		CoverImage:  r.CoverImage,
		Images:      r.Images,
		IsFeatured:  r.IsFeatured,
	}
}

type UpdateWeddingStoryRequest struct {
	CoupleNames *string                 `json:"coupleNames" validate:"omitnil,min=1"`
	Title       *string                 `json:"title" validate:"omitnil,min=1"`
	Description *string                 `json:"description"`
	WeddingDate *time.Time              `json:"weddingDate"`
	Location    *string                 `json:"location"`
	CoverImage  *models.RequiredAsset   `json:"coverImage"`
	Images      *[]models.RequiredAsset `json:"images" validate:"omitnil,dive"`
	IsFeatured  *bool                   `json:"isFeatured"`
}

func (r UpdateWeddingStoryRequest) Patch() map[string]any { return patchOf(r) }

type CreateOurStoryRequest struct {
	Heading    string       `json:"heading" validate:"required"`
	Paragraphs []string     `json:"paragraphs" validate:"required,min=1"`
	Image      models.Asset `json:"image"`
	Signature  string       `json:"signature"`
}

func (r CreateOurStoryRequest) ToModel() models.OurStory {
	return models.OurStory{
		Heading:    r.Heading,
		Paragraphs: r.Paragraphs,
		Image:      r.Image,
		Signature:  r.Signature,
	}
}

type UpdateOurStoryRequest struct {
	Heading    *string       `json:"heading" validate:"omitnil,min=1"`
	Paragraphs *[]string     `json:"paragraphs" validate:"omitnil,min=1"`
	Image      *models.Asset `json:"image"`
	Signature  *string       `json:"signature"`
}

func (r UpdateOurStoryRequest) Patch() map[string]any { return patchOf(r) }
