package models

// Gallery фотография в общей галерее сайта
type Gallery struct {
	Base          `bson:",inline"`
	Title         string `json:"title" bson:"title"`
	ImageURL      string `json:"imageUrl" bson:"imageUrl" validate:"required,url"`
	ImagePublicID string `json:"imagePublicId" bson:"imagePublicId"`
	Category      string `json:"category" bson:"category" validate:"required"`
	IsHighlight   bool   `json:"isHighlight" bson:"isHighlight"`
	Order         int    `json:"order" bson:"order"`
}

// WeddingGalleryImage фотография свадебной галереи
type WeddingGalleryImage struct {
	Base           `bson:",inline"`
	ImageURL       string    `json:"imageUrl" bson:"imageUrl" validate:"required,url"`
	PublicID       string    `json:"publicId" bson:"publicId"`
	PhotoType      PhotoType `json:"photoType" bson:"photoType" validate:"required,oneof=bride groom couple ceremony candid decor"`
	WeddingStoryID *ObjectID `json:"weddingStoryId,omitempty" bson:"weddingStoryId,omitempty"`
	Order          int       `json:"order" bson:"order"`
}

type PhotoType string

const (
	PhotoTypeBride    PhotoType = "bride"
	PhotoTypeGroom    PhotoType = "groom"
	PhotoTypeCouple   PhotoType = "couple"
	PhotoTypeCeremony PhotoType = "ceremony"
	PhotoTypeCandid   PhotoType = "candid"
	PhotoTypeDecor    PhotoType = "decor"
)
