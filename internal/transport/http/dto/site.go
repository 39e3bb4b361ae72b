package dto

// SettingRequest меняет только переданные поля настроек, в том числе
// отдельные счётчики. Пустая строка heroStoryId убирает ссылку.
type SettingRequest struct {
	HeroStoryID    *string          `json:"heroStoryId" validate:"omitnil,objectid|eq="`
	Counters       *CountersRequest `json:"counters"`
	WhatsAppNumber *string          `json:"whatsappNumber" validate:"omitnil,phone|eq="`
}

type CountersRequest struct {
	Weddings        *int `json:"weddings" validate:"omitnil,min=0"`
	HappyCouples    *int `json:"happyCouples" validate:"omitnil,min=0"`
	Cities          *int `json:"cities" validate:"omitnil,min=0"`
	YearsExperience *int `json:"yearsExperience" validate:"omitnil,min=0"`
}

func (r SettingRequest) Patch() map[string]any {
	patch := patchOf(r)

	if r.HeroStoryID != nil {
		patch["heroStoryId"] = objectIDPtr(*r.HeroStoryID)
	}

	delete(patch, "counters")
	if r.Counters != nil {
		nested(patch, "counters", patchOf(r.Counters))
	}

	return patch
}

type FooterRequest struct {
	Phone       *string             `json:"phone" validate:"omitnil,phone|eq="`
	Email       *string             `json:"email" validate:"omitnil,email|eq="`
	Address     *string             `json:"address"`
	SocialLinks *SocialLinksRequest `json:"socialLinks"`
}

type SocialLinksRequest struct {
	Instagram *string `json:"instagram" validate:"omitnil,url|eq="`
	Facebook  *string `json:"facebook" validate:"omitnil,url|eq="`
	YouTube   *string `json:"youtube" validate:"omitnil,url|eq="`
	Pinterest *string `json:"pinterest" validate:"omitnil,url|eq="`
	WhatsApp  *string `json:"whatsapp" validate:"omitnil,url|eq="`
}

func (r FooterRequest) Patch() map[string]any {
	patch := patchOf(r)

	delete(patch, "socialLinks")
	if r.SocialLinks != nil {
		nested(patch, "socialLinks", patchOf(r.SocialLinks))
	}

	return patch
}

// nested переносит поля вложенного документа в patch как "parent.field"
func nested(patch map[string]any, parent string, fields map[string]any) {
	for k, v := range fields {
		patch[parent+"."+k] = v
	}
}
