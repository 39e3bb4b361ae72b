package models

// Section блок контента страницы, адресуется уникальным ключом
type Section struct {
	Base     `bson:",inline"`
	Key      string         `json:"key" bson:"key" validate:"required"`
	Title    string         `json:"title" bson:"title"`
	Subtitle string         `json:"subtitle" bson:"subtitle"`
	Content  string         `json:"content" bson:"content"`
	Images   []Asset        `json:"images" bson:"images" validate:"dive"`
	Extra    map[string]any `json:"extra" bson:"extra"`
	Order    int            `json:"order" bson:"order"`
}

func (s *Section) Normalize() {
	s.Images = orEmpty(s.Images)
	if s.Extra == nil {
		s.Extra = map[string]any{}
	}
}

// About блок "о нас"
type About struct {
	Base        `bson:",inline"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	Image       Asset    `json:"image" bson:"image"`
	Highlights  []string `json:"highlights" bson:"highlights"`
}

func (a *About) Normalize() {
	a.Highlights = orEmpty(a.Highlights)
}

// Hero слайд главного экрана
type Hero struct {
	Base     `bson:",inline"`
	Title    string    `json:"title" bson:"title" validate:"required"`
	Subtitle string    `json:"subtitle" bson:"subtitle"`
	Type     MediaType `json:"type" bson:"type" validate:"required,oneof=image video"`
	MediaURL string    `json:"mediaUrl" bson:"mediaUrl" validate:"required,url"`
	PublicID string    `json:"publicId" bson:"publicId"`
	IsActive bool      `json:"isActive" bson:"isActive"`
	Order    int       `json:"order" bson:"order"`
}

type ServiceType string

const (
	ServicePhotography ServiceType = "photography"
	ServiceVideography ServiceType = "videography"
	ServicePhotoVideo  ServiceType = "photo-video"
	ServiceAlbum       ServiceType = "album"
	ServiceDrone       ServiceType = "drone"
)

// Service услуга студии
type Service struct {
	Base        `bson:",inline"`
	Title       string      `json:"title" bson:"title" validate:"required"`
	Description string      `json:"description" bson:"description" validate:"required"`
	ServiceType ServiceType `json:"serviceType" bson:"serviceType" validate:"required,oneof=photography videography photo-video album drone"`
	Price       string      `json:"price" bson:"price"`
	Features    []string    `json:"features" bson:"features"`
	Image       Asset       `json:"image" bson:"image"`
	Order       int         `json:"order" bson:"order"`
}

func (s *Service) Normalize() {
	s.Features = orEmpty(s.Features)
}
