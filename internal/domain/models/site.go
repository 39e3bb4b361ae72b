package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Фиксированные идентификаторы документов-одиночек. Конкурентные первые
// записи попадают в один и тот же _id и не плодят дубликаты.
var (
	SettingID = primitive.ObjectID{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	FooterID  = primitive.ObjectID{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2}
)

// Setting глобальные настройки сайта (один документ)
type Setting struct {
	Base           `bson:",inline"`
	HeroStoryID    *primitive.ObjectID `json:"heroStoryId" bson:"heroStoryId"`
	Counters       Counters            `json:"counters" bson:"counters"`
	WhatsAppNumber string              `json:"whatsappNumber" bson:"whatsappNumber"`
}

type Counters struct {
	Weddings        int `json:"weddings" bson:"weddings" validate:"min=0"`
	HappyCouples    int `json:"happyCouples" bson:"happyCouples" validate:"min=0"`
	Cities          int `json:"cities" bson:"cities" validate:"min=0"`
	YearsExperience int `json:"yearsExperience" bson:"yearsExperience" validate:"min=0"`
}

// DefaultSetting возвращается, пока настройки ни разу не сохранялись
func DefaultSetting() *Setting {
	return &Setting{Base: Base{ID: SettingID}}
}

// Footer контакты и ссылки подвала сайта (один документ)
type Footer struct {
	Base        `bson:",inline"`
	Phone       string      `json:"phone" bson:"phone"`
	Email       string      `json:"email" bson:"email" validate:"omitempty,email"`
	Address     string      `json:"address" bson:"address"`
	SocialLinks SocialLinks `json:"socialLinks" bson:"socialLinks"`
}

type SocialLinks struct {
	Instagram string `json:"instagram" bson:"instagram" validate:"omitempty,url"`
	Facebook  string `json:"facebook" bson:"facebook" validate:"omitempty,url"`
	YouTube   string `json:"youtube" bson:"youtube" validate:"omitempty,url"`
	Pinterest string `json:"pinterest" bson:"pinterest" validate:"omitempty,url"`
	WhatsApp  string `json:"whatsapp" bson:"whatsapp" validate:"omitempty,url"`
}

func DefaultFooter() *Footer {
	return &Footer{Base: Base{ID: FooterID}}
}
