package dto

import "studio_cms/internal/domain/models"

// CreateTestimonialRequest публичная форма отзыва. Поле approved не
// принимается: новый отзыв всегда ждёт модерации.
type CreateTestimonialRequest struct {
	ClientName string       `json:"clientName" validate:"required"`
	Quote      string       `json:"quote" validate:"required"`
	Image      models.Asset `json:"image"`
	EventType  string       `json:"eventType"`
}

func (r CreateTestimonialRequest) ToModel() models.Testimonial {
	return models.Testimonial{
		ClientName: r.ClientName,
		Quote:      r.Quote,
		Image:      r.Image,
		EventType:  r.EventType,
		Approved:   false,
	}
}

type UpdateTestimonialRequest struct {
	ClientName *string       `json:"clientName" validate:"omitnil,min=1"`
	Quote      *string       `json:"quote" validate:"omitnil,min=1"`
	Image      *models.Asset `json:"image"`
	EventType  *string       `json:"eventType"`
	Approved   *bool         `json:"approved"`
}

func (r UpdateTestimonialRequest) Patch() map[string]any { return patchOf(r) }

type CreateReviewRequest struct {
	ClientName string `json:"clientName" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required"`
	EventType  string `json:"eventType"`
}

func (r CreateReviewRequest) ToModel() models.Review {
	return models.Review{
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		EventType:  r.EventType,
		Approved:   false,
	}
}

type UpdateReviewRequest struct {
	ClientName *string `json:"clientName" validate:"omitnil,min=1"`
	Rating     *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Comment    *string `json:"comment" validate:"omitnil,min=1"`
	EventType  *string `json:"eventType"`
	Approved   *bool   `json:"approved"`
}

func (r UpdateReviewRequest) Patch() map[string]any { return patchOf(r) }
