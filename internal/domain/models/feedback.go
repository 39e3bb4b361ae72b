package models

// Testimonial отзыв клиента, показывается только после модерации
type Testimonial struct {
	Base       `bson:",inline"`
	ClientName string `json:"clientName" bson:"clientName" validate:"required"`
	Quote      string `json:"quote" bson:"quote" validate:"required"`
	Image      Asset  `json:"image" bson:"image"`
	EventType  string `json:"eventType" bson:"eventType"`
	Approved   bool   `json:"approved" bson:"approved"`
}

// Review оценка клиента с рейтингом
type Review struct {
	Base       `bson:",inline"`
	ClientName string `json:"clientName" bson:"clientName" validate:"required"`
	Rating     int    `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" bson:"comment" validate:"required"`
	EventType  string `json:"eventType" bson:"eventType"`
	Approved   bool   `json:"approved" bson:"approved"`
}
