package dto

import "studio_cms/internal/domain/models"

// SectionRequest тело POST /api/sections: создаёт секцию с ключом или
// меняет переданные поля существующей
type SectionRequest struct {
	Key      string          `json:"key" validate:"required,slug"`
	Title    *string         `json:"title"`
	Subtitle *string         `json:"subtitle"`
	Content  *string         `json:"content"`
	Images   *[]models.Asset `json:"images" validate:"omitnil,dive"`
	Extra    *map[string]any `json:"extra"`
	Order    *int            `json:"order"`
}

// Patch без ключа: ключ адресует документ
func (r SectionRequest) Patch() map[string]any { return patchOf(r) }

// UpdateSectionRequest ключ берётся из пути и не меняется
type UpdateSectionRequest struct {
	Title    *string         `json:"title"`
	Subtitle *string         `json:"subtitle"`
	Content  *string         `json:"content"`
	Images   *[]models.Asset `json:"images" validate:"omitnil,dive"`
	Extra    *map[string]any `json:"extra"`
	Order    *int            `json:"order"`
}

func (r UpdateSectionRequest) Patch() map[string]any { return patchOf(r) }

type CreateAboutRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Image       models.Asset `json:"image"`
	Highlights  []string     `json:"highlights"`
}

func (r CreateAboutRequest) ToModel() models.About {
	return models.About{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Highlights:  r.Highlights,
	}
}

type UpdateAboutRequest struct {
	Title       *string       `json:"title" validate:"omitnil,min=1"`
	Description *string       `json:"description" validate:"omitnil,min=1"`
	Image       *models.Asset `json:"image"`
	Highlights  *[]string     `json:"highlights"`
}

func (r UpdateAboutRequest) Patch() map[string]any { return patchOf(r) }

type CreateHeroRequest struct {
	Title    string           `json:"title" validate:"required"`
	Subtitle string           `json:"subtitle"`
	Type     models.MediaType `json:"type" validate:"required,oneof=image video"`
	MediaURL string           `json:"mediaUrl" validate:"required,url"`
	PublicID string           `json:"publicId"`
	IsActive *bool            `json:"isActive"`
	Order    int              `json:"order"`
}

func (r CreateHeroRequest) ToModel() models.Hero {
	return models.Hero{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Type:     r.Type,
		MediaURL: r.MediaURL,
		PublicID: r.PublicID,
		IsActive: orTrue(r.IsActive),
		Order:    r.Order,
	}
}

type UpdateHeroRequest struct {
	Title    *string           `json:"title" validate:"omitnil,min=1"`
	Subtitle *string           `json:"subtitle"`
	Type     *models.MediaType `json:"type" validate:"omitnil,oneof=image video"`
	MediaURL *string           `json:"mediaUrl" validate:"omitnil,url"`
	PublicID *string           `json:"publicId"`
	IsActive *bool             `json:"isActive"`
	Order    *int              `json:"order"`
}

func (r UpdateHeroRequest) Patch() map[string]any { return patchOf(r) }

type CreateServiceRequest struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description" validate:"required"`
	ServiceType models.ServiceType `json:"serviceType" validate:"required,oneof=photography videography photo-video album drone"`
	Price       string             `json:"price"`
	Features    []string           `json:"features"`
	Image       models.Asset       `json:"image"`
	Order       int                `json:"order"`
}

func (r CreateServiceRequest) ToModel() models.Service {
	return models.Service{
		Title:       r.Title,
		Description: r.Description,
		ServiceType: r.ServiceType,
		Price:       r.Price,
		Features:    r.Features,
		Image:       r.Image,
		Order:       r.Order,
	}
}

type UpdateServiceRequest struct {
	Title       *string             `json:"title" validate:"omitnil,min=1"`
	Description *string             `json:"description" validate:"omitnil,min=1"`
	ServiceType *models.ServiceType `json:"serviceType" validate:"omitnil,oneof=photography videography photo-video album drone"`
	Price       *string             `json:"price"`
	Features    *[]string           `json:"features"`
	Image       *models.Asset       `json:"image"`
	Order       *int                `json:"order"`
}

func (r UpdateServiceRequest) Patch() map[string]any { return patchOf(r) }
