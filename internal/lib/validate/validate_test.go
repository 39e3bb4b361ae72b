package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type photoInput struct {
	ImageURL string   `json:"imageUrl" validate:"required,url"`
	Category string   `json:"category" validate:"required"`
	Type     string   `json:"type" validate:"omitempty,oneof=image video"`
	Key      string   `json:"key" validate:"omitempty,slug"`
	StoryID  string   `json:"storyId" validate:"omitempty,objectid"`
	Phone    string   `json:"phone" validate:"omitempty,phone"`
	Cover    *asset   `json:"cover"`
	Images   []asset  `json:"images" validate:"dive"`
	Tags     []string `json:"tags"`
}

type asset struct {
	URL string `json:"url" validate:"required,url"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	valid := photoInput{
		ImageURL: "https://cdn.example.com/a.jpg",
		Category: "wedding",
		Type:     "image",
		Key:      "home-hero",
		StoryID:  "65f1c2a9e4b0a1b2c3d4e5f6",
		Phone:    "+91 98765 43210",
	}

	tests := []struct {
		name      string
		mutate    func(p *photoInput)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid input",
			mutate: func(p *photoInput) {},
		},
		{
			name:      "missing imageUrl",
			mutate:    func(p *photoInput) { p.ImageURL = "" },
			wantField: "imageUrl",
			wantMsg:   "imageUrl is required",
		},
		{
			name:      "bad enum",
			mutate:    func(p *photoInput) { p.Type = "audio" },
			wantField: "type",
			wantMsg:   "type must be one of: image, video",
		},
		{
			name:      "bad slug",
			mutate:    func(p *photoInput) { p.Key = "Home Hero" },
			wantField: "key",
		},
		{
			name:      "bad object id",
			mutate:    func(p *photoInput) { p.StoryID = "42" },
			wantField: "storyId",
			wantMsg:   "storyId must be a valid object id",
		},
		{
			name:      "bad phone",
			mutate:    func(p *photoInput) { p.Phone = "call me" },
			wantField: "phone",
		},
		{
			name:      "nested struct",
			mutate:    func(p *photoInput) { p.Cover = &asset{URL: "not a url"} },
			wantField: "cover.url",
			wantMsg:   "cover.url must be a valid URL",
		},
		{
			name:      "slice element",
			mutate:    func(p *photoInput) { p.Images = []asset{{URL: "https://x.io/1.jpg"}, {}} },
			wantField: "images[1].url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := v.Struct(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, ve.Reason)
			}
		})
	}
}

func TestValidator_CollectsAllFields(t *testing.T) {
	err := New().Struct(photoInput{})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 2)
	assert.Equal(t, "imageUrl is required; category is required", ve.Details())
}

func TestValidator_NotAStruct(t *testing.T) {
	err := New().Struct("nope")

	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}
