package models

import "time"

// Story история съёмки: обложка, фото, видео
type Story struct {
	Base           `bson:",inline"`
	Title          string          `json:"title" bson:"title" validate:"required"`
	EventType      string          `json:"eventType" bson:"eventType" validate:"required"`
	Location       string          `json:"location" bson:"location"`
	Description    string          `json:"description" bson:"description"`
	CoverImage     RequiredAsset   `json:"coverImage" bson:"coverImage"`
	Gallery        []RequiredAsset `json:"gallery" bson:"gallery" validate:"dive"`
	Videos         []RequiredAsset `json:"videos" bson:"videos" validate:"dive"`
	Tags           []string        `json:"tags" bson:"tags"`
	IsFeatured     bool            `json:"isFeatured" bson:"isFeatured"`
	ShowOnHomepage bool            `json:"showOnHomepage" bson:"showOnHomepage"`
}

func (s *Story) Normalize() {
	s.Gallery = orEmpty(s.Gallery)
	s.Videos = orEmpty(s.Videos)
	s.Tags = orEmpty(s.Tags)
}

// WeddingStory история свадьбы пары
type WeddingStory struct {
	Base        `bson:",inline"`
	CoupleNames string          `json:"coupleNames" bson:"coupleNames" validate:"required"`
	Title       string          `json:"title" bson:"title" validate:"required"`
	Description string          `json:"description" bson:"description"`
	WeddingDate *time.Time      `json:"weddingDate,omitempty" bson:"weddingDate,omitempty"`
	Location    string          `json:"location" bson:"location"`
	CoverImage  RequiredAsset   `json:"coverImage" bson:"coverImage"`
	Images      []RequiredAsset `json:"images" bson:"images" validate:"dive"`
	IsFeatured  bool            `json:"isFeatured" bson:"isFeatured"`
}

func (w *WeddingStory) Normalize() {
	w.Images = orEmpty(w.Images)
}

// OurStory блок "наша история" студии
type OurStory struct {
	Base       `bson:",inline"`
	Heading    string   `json:"heading" bson:"heading" validate:"required"`
	Paragraphs []string `json:"paragraphs" bson:"paragraphs" validate:"required,min=1"`
	Image      Asset    `json:"image" bson:"image"`
	Signature  string   `json:"signature" bson:"signature"`
}

func (o *OurStory) Normalize() {
	o.Paragraphs = orEmpty(o.Paragraphs)
}
