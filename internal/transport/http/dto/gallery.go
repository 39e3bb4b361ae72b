package dto

import "studio_cms/internal/domain/models"

type CreateGalleryRequest struct {
	Title         string `json:"title"`
	ImageURL      string `json:"imageUrl" validate:"required,url"`
	ImagePublicID string `json:"imagePublicId"`
	Category      string `json:"category" validate:"required"`
	IsHighlight   bool   `json:"isHighlight"`
	Order         int    `json:"order"`
}

func (r CreateGalleryRequest) ToModel() models.Gallery {
	return models.Gallery{
		Title:         r.Title,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Category:      r.Category,
		IsHighlight:   r.IsHighlight,
		Order:         r.Order,
	}
}

type UpdateGalleryRequest struct {
	Title         *string `json:"title"`
	ImageURL      *string `json:"imageUrl" validate:"omitnil,url"`
	ImagePublicID *string `json:"imagePublicId"`
	Category      *string `json:"category" validate:"omitnil,min=1"`
	IsHighlight   *bool   `json:"isHighlight"`
	Order         *int    `json:"order"`
}

func (r UpdateGalleryRequest) Patch() map[string]any { return patchOf(r) }

type CreateWeddingGalleryImageRequest struct {
	ImageURL       string           `json:"imageUrl" validate:"required,url"`
	PublicID       string           `json:"publicId"`
	PhotoType      models.PhotoType `json:"photoType" validate:"required,oneof=bride groom couple ceremony candid decor"`
	WeddingStoryID string           `json:"weddingStoryId" validate:"omitempty,objectid"`
	Order          int              `json:"order"`
}

func (r CreateWeddingGalleryImageRequest) ToModel() models.WeddingGalleryImage {
	return models.WeddingGalleryImage{
		ImageURL:       r.ImageURL,
		PublicID:       r.PublicID,
		PhotoType:      r.PhotoType,
		WeddingStoryID: objectIDPtr(r.WeddingStoryID),
		Order:          r.Order,
	}
}

type UpdateWeddingGalleryImageRequest struct {
	ImageURL       *string           `json:"imageUrl" validate:"omitnil,url"`
	PublicID       *string           `json:"publicId"`
	PhotoType      *models.PhotoType `json:"photoType" validate:"omitnil,oneof=bride groom couple ceremony candid decor"`
	WeddingStoryID *string           `json:"weddingStoryId" validate:"omitnil,objectid|eq="`
	Order          *int              `json:"order"`
}

func (r UpdateWeddingGalleryImageRequest) Patch() map[string]any {
	patch := patchOf(r)
	if r.WeddingStoryID != nil {
		patch["weddingStoryId"] = objectIDPtr(*r.WeddingStoryID)
	}
	return patch
}
