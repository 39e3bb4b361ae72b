package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/logger/handlers/slogdiscard"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/services/auth"
	"studio_cms/internal/storage"
)

type MockContentService[T any] struct {
	mock.Mock
}

func (m *MockContentService[T]) List(ctx context.Context, f storage.Filter, limit int64) ([]T, error) {
	args := m.Called(ctx, f, limit)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockContentService[T]) Get(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockContentService[T]) Create(ctx context.Context, doc T) (T, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockContentService[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(T), args.Error(1)
}

type MockGalleryService struct {
	MockContentService[models.Gallery]
}

func (m *MockGalleryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSingletonService[T any] struct {
	mock.Mock
}

func (m *MockSingletonService[T]) GetSingleton(ctx context.Context) (T, error) {
	args := m.Called(ctx)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockSingletonService[T]) UpsertSingleton(ctx context.Context, patch map[string]any) (T, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(T), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, models.Principal, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(models.Principal), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	return time.Hour
}

type testValidator struct {
	v *validate.Validator
}

func (tv testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

type fixture struct {
	e            *echo.Echo
	auth         *MockAuthService
	gallery      *MockGalleryService
	media        *MockContentService[models.Media]
	testimonials *MockContentService[models.Testimonial]
	settings     *MockSingletonService[models.Setting]
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:            echo.New(),
		auth:         new(MockAuthService),
		gallery:      new(MockGalleryService),
		media:        new(MockContentService[models.Media]),
		testimonials: new(MockContentService[models.Testimonial]),
		settings:     new(MockSingletonService[models.Setting]),
	}

	r := NewRouter(slogdiscard.NewDiscardLogger(), Config{
		CookieSecure:    true,
		WhatsAppPhone:   "+1 555 000 1111",
		WhatsAppMessage: "Hello",
	}, Services{
		Auth:         f.auth,
		Gallery:      f.gallery,
		Media:        f.media,
		Testimonials: f.testimonials,
		Settings:     f.settings,
	})

	f.e.Validator = testValidator{v: validate.New()}
	f.e.HTTPErrorHandler = r.HandleError

	f.e.POST("/api/auth/login", r.Login)
	f.e.POST("/api/auth/logout", r.Logout)
	f.e.GET("/api/gallery", r.ListGallery)
	f.e.GET("/api/gallery/highlights", r.ListGalleryHighlights)
	f.e.POST("/api/gallery", r.CreateGallery)
	f.e.PUT("/api/gallery/:id", r.UpdateGallery)
	f.e.DELETE("/api/gallery/:id", r.DeleteGallery)
	f.e.GET("/api/media", r.ListMedia)
	f.e.POST("/api/testimonials", r.SubmitTestimonial)
	f.e.POST("/api/settings", r.SaveSettings)
	f.e.GET("/api/widgets/whatsapp", r.WhatsApp)
	f.e.GET("/api/widgets/whatsapp.html", r.WhatsAppHTML)

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])

	return body
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", validate.NewError("imageUrl", "imageUrl is required"), http.StatusBadRequest, "imageUrl is required"},
		{"unauthorized", auth.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"not found", storage.ErrNotFound, http.StatusNotFound, "not found"},
		{"wrapped not found", errors.Join(errors.New("op"), storage.ErrNotFound), http.StatusNotFound, "not found"},
		{"duplicate", storage.ErrDuplicateKey, http.StatusConflict, "already exists"},
		{"connection", storage.ErrConnection, http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"echo bad request", echo.NewHTTPError(http.StatusBadRequest, "Syntax error"), http.StatusBadRequest, "invalid request body"},
		{"unsupported media type", echo.ErrUnsupportedMediaType, http.StatusBadRequest, "invalid request body"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("sets cookie", func(t *testing.T) {
		f := setup(t)
		f.auth.On("Login", mock.Anything, "owner@studio.test", "secret-pass").
			Return("signed.jwt.token", models.Principal{Email: "owner@studio.test", Role: models.RoleAdmin}, nil)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"owner@studio.test","password":"secret-pass"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"owner@studio.test","role":"admin"}`, rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, AdminCookie, cookie.Name)
		assert.Equal(t, "signed.jwt.token", cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 3600, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := setup(t)
		f.auth.On("Login", mock.Anything, "owner@studio.test", "nope").
			Return("", models.Principal{}, auth.ErrInvalidCredentials)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"owner@studio.test","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"status":"error","error":"unauthorized"}`, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("invalid body", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"not-an-email","password":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		decodeError(t, rec)
		f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	f := setup(t)
	f.auth.On("Logout", mock.Anything, "signed.jwt.token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "signed.jwt.token"})
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AdminCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	f.auth.AssertExpectations(t)
}

func TestCreateGallery(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := setup(t)

		saved := models.Gallery{
			Base:     models.Base{ID: primitive.NewObjectID()},
			ImageURL: "https://cdn.test/a.jpg",
			Category: "wedding",
		}
		f.gallery.On("Create", mock.Anything, models.Gallery{
			ImageURL: "https://cdn.test/a.jpg",
			Category: "wedding",
		}).Return(saved, nil)

		rec := f.do(http.MethodPost, "/api/gallery", `{"imageUrl":"https://cdn.test/a.jpg","category":"wedding"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, saved.ID.Hex(), got["_id"])
		assert.Equal(t, false, got["isHighlight"])
	})

	t.Run("missing imageUrl never reaches the store", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/api/gallery", `{"category":"wedding"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "imageUrl is required", body["error"])
		f.gallery.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/api/gallery", `{"imageUrl":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		decodeError(t, rec)
	})
}

func TestUpdateGallery(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		f := setup(t)
		id := primitive.NewObjectID().Hex()

		f.gallery.On("Update", mock.Anything, id, map[string]any{"isHighlight": true}).
			Return(models.Gallery{IsHighlight: true}, nil)

		rec := f.do(http.MethodPut, "/api/gallery/"+id, `{"isHighlight":true}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		f.gallery.AssertExpectations(t)
	})

	t.Run("empty string is not a valid url", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPut, "/api/gallery/"+primitive.NewObjectID().Hex(), `{"imageUrl":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing document", func(t *testing.T) {
		f := setup(t)
		f.gallery.On("Update", mock.Anything, "nope", mock.Anything).
			Return(models.Gallery{}, storage.ErrNotFound)

		rec := f.do(http.MethodPut, "/api/gallery/nope", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteGallery(t *testing.T) {
	f := setup(t)
	id := primitive.NewObjectID().Hex()

	f.gallery.On("Delete", mock.Anything, id).Return(nil).Once()
	f.gallery.On("Delete", mock.Anything, id).Return(storage.ErrNotFound).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/gallery/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/gallery/"+id, "").Code)
}

func TestListFilters(t *testing.T) {
	t.Run("highlights", func(t *testing.T) {
		f := setup(t)
		f.gallery.On("List", mock.Anything, storage.Eq("isHighlight", true), int64(0)).
			Return([]models.Gallery{}, nil)

		rec := f.do(http.MethodGet, "/api/gallery/highlights", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("media by type tag and homepage", func(t *testing.T) {
		f := setup(t)
		want := storage.Filter{
			Eq:    map[string]any{"type": "video", "isHomepage": true},
			AnyOf: map[string][]string{"tags": {"wedding", "haldi"}},
		}
		f.media.On("List", mock.Anything, want, int64(5)).Return([]models.Media{}, nil)

		rec := f.do(http.MethodGet, "/api/media?type=video&tag=wedding&tag=haldi&homepage=true&limit=5", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		f.media.AssertExpectations(t)
	})

	t.Run("bad bool", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodGet, "/api/media?homepage=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodGet, "/api/gallery?limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitTestimonial_NeverApproved(t *testing.T) {
	f := setup(t)
	f.testimonials.On("Create", mock.Anything, mock.MatchedBy(func(doc models.Testimonial) bool {
		return doc.ClientName == "Asha" && !doc.Approved
	})).Return(models.Testimonial{ClientName: "Asha"}, nil)

	rec := f.do(http.MethodPost, "/api/testimonials", `{"clientName":"Asha","quote":"Lovely","approved":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	f.testimonials.AssertExpectations(t)
}

func TestWhatsApp(t *testing.T) {
	t.Run("falls back to configured phone", func(t *testing.T) {
		f := setup(t)
		f.settings.On("GetSingleton", mock.Anything).Return(*models.DefaultSetting(), nil)

		rec := f.do(http.MethodGet, "/api/widgets/whatsapp", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://wa.me/15550001111?text=Hello","phone":"+1 555 000 1111","message":"Hello"}`, rec.Body.String())
	})

	t.Run("settings number wins", func(t *testing.T) {
		f := setup(t)
		f.settings.On("GetSingleton", mock.Anything).Return(models.Setting{WhatsAppNumber: "+91 98765 43210"}, nil)

		rec := f.do(http.MethodGet, "/api/widgets/whatsapp.html", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), `href="https://wa.me/919876543210?text=Hello"`)
	})
}

func TestCreateGallery_NotJSON(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", strings.NewReader("imageUrl=https://cdn.test/a.jpg"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeError(t, rec)["error"])
	f.gallery.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaveSettings_OnlyProvidedFields(t *testing.T) {
	t.Run("single counter", func(t *testing.T) {
		f := setup(t)

		f.settings.On("UpsertSingleton", mock.Anything, map[string]any{"counters.cities": 2}).
			Return(models.Setting{Counters: models.Counters{Cities: 2}}, nil)

		rec := f.do(http.MethodPost, "/api/settings", `{"counters":{"cities":2}}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		f.settings.AssertExpectations(t)
	})

	t.Run("empty hero story clears the reference", func(t *testing.T) {
		f := setup(t)

		f.settings.On("UpsertSingleton", mock.Anything, map[string]any{
			"heroStoryId":    (*primitive.ObjectID)(nil),
			"whatsappNumber": "+1 555 123 4567",
		}).Return(models.Setting{WhatsAppNumber: "+1 555 123 4567"}, nil)

		rec := f.do(http.MethodPost, "/api/settings", `{"heroStoryId":"","whatsappNumber":"+1 555 123 4567"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		f.settings.AssertExpectations(t)
	})

	t.Run("negative counter", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/api/settings", `{"counters":{"weddings":-1}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.settings.AssertNotCalled(t, "UpsertSingleton", mock.Anything, mock.Anything)
	})
}

func TestQueryFilter_ErrorSurvivesChain(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/stories?homepage=maybe", nil), httptest.NewRecorder())

	_, err := filterFrom(c).Bool("homepage", "showOnHomepage").Fixed("isFeatured", true).Build()
	require.Error(t, err)
	assert.True(t, validate.IsValidationError(err))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/stories/featured", nil), httptest.NewRecorder())

	f, err := filterFrom(c).Fixed("isFeatured", true).Build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"isFeatured": true}, f.Eq)
}
