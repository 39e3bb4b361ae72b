// Package docs описание API для swagger UI. Обновляется командой
// swag init -g cmd/studio_cms/main.go после изменения аннотаций обработчиков.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/about": {
            "get": {
                "summary": "Блоки \"о нас\"",
                "tags": [
                    "about"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.About"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить блок \"о нас\"",
                "tags": [
                    "about"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Блок",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAboutRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.About"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/about/{id}": {
            "put": {
                "summary": "Изменить блок \"о нас\"",
                "tags": [
                    "about"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAboutRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.About"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "summary": "Вход администратора",
                "description": "Проверяет email и пароль, устанавливает cookie admin_token.",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Данные для входа",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Успешный вход",
                        "schema": {
                            "$ref": "#/definitions/models.Principal"
                        }
                    },
                    "400": {
                        "description": "Неверный формат запроса",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Неверный email или пароль",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Слишком много попыток",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "summary": "Выход администратора",
                "description": "Отзывает токен и очищает cookie. Отвечает 200 и без cookie.",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "summary": "Текущий администратор",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Principal"
                        }
                    },
                    "401": {
                        "description": "Нет действительного cookie",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/films": {
            "get": {
                "summary": "Свадебные фильмы",
                "tags": [
                    "films"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Только избранные",
                        "name": "featured",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Film"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить фильм",
                "tags": [
                    "films"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Фильм",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateFilmRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Film"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/films/{id}": {
            "put": {
                "summary": "Изменить фильм",
                "tags": [
                    "films"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateFilmRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Film"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/footer": {
            "get": {
                "summary": "Подвал сайта",
                "tags": [
                    "footer"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Footer"
                        }
                    }
                }
            },
            "post": {
                "summary": "Сохранить подвал сайта",
                "tags": [
                    "footer"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Подвал",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FooterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Footer"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/gallery": {
            "get": {
                "summary": "Галерея",
                "description": "Фотографии галереи, новые первыми.",
                "tags": [
                    "gallery"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Категория",
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Максимум документов",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Gallery"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить фотографию в галерею",
                "tags": [
                    "gallery"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Фотография",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateGalleryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Gallery"
                        }
                    },
                    "400": {
                        "description": "Ошибка валидации",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/gallery/highlights": {
            "get": {
                "summary": "Избранные фотографии галереи",
                "tags": [
                    "gallery"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Gallery"
                            }
                        }
                    }
                }
            }
        },
        "/api/gallery/{id}": {
            "put": {
                "summary": "Изменить фотографию галереи",
                "tags": [
                    "gallery"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateGalleryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Gallery"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Удалить фотографию галереи",
                "tags": [
                    "gallery"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hero": {
            "get": {
                "summary": "Слайды главного экрана",
                "description": "Отсортированы по order. active=true оставляет только включённые.",
                "tags": [
                    "hero"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Только активные",
                        "name": "active",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Hero"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить слайд",
                "description": "isActive по умолчанию true.",
                "tags": [
                    "hero"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Слайд",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateHeroRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Hero"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hero/{id}": {
            "put": {
                "summary": "Изменить слайд",
                "tags": [
                    "hero"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateHeroRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Hero"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/media": {
            "get": {
                "summary": "Медиафайлы",
                "tags": [
                    "media"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "image или video",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Категория",
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Любой из тегов",
                        "name": "tag",
                        "in": "query",
                        "required": false,
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "description": "Только для главной",
                        "name": "homepage",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Media"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить медиафайл",
                "tags": [
                    "media"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Медиафайл",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateMediaRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Media"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/media/{id}": {
            "put": {
                "summary": "Изменить медиафайл",
                "tags": [
                    "media"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMediaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Media"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/our-story": {
            "get": {
                "summary": "Блок \"наша история\"",
                "tags": [
                    "our-story"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.OurStory"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить блок \"наша история\"",
                "tags": [
                    "our-story"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Блок",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateOurStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OurStory"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/our-story/{id}": {
            "put": {
                "summary": "Изменить блок \"наша история\"",
                "tags": [
                    "our-story"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateOurStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OurStory"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/reels": {
            "get": {
                "summary": "Короткие видео",
                "tags": [
                    "reels"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Только для главной",
                        "name": "homepage",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Reel"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить видео",
                "tags": [
                    "reels"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Видео",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateReelRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Reel"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/reels/{id}": {
            "put": {
                "summary": "Изменить видео",
                "tags": [
                    "reels"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateReelRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Reel"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/reviews": {
            "get": {
                "summary": "Одобренные оценки клиентов",
                "tags": [
                    "reviews"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Review"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Оставить оценку",
                "description": "Публичная форма, новая оценка не одобрена.",
                "tags": [
                    "reviews"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Оценка",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Review"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/reviews/all": {
            "get": {
                "summary": "Все оценки, включая ожидающие модерации",
                "tags": [
                    "reviews"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Review"
                            }
                        }
                    }
                }
            }
        },
        "/api/reviews/{id}": {
            "put": {
                "summary": "Изменить или одобрить оценку",
                "tags": [
                    "reviews"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Review"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/sections": {
            "get": {
                "summary": "Секции страниц",
                "description": "Отсортированы по order по возрастанию.",
                "tags": [
                    "sections"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Section"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Создать или перезаписать секцию по ключу",
                "tags": [
                    "sections"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Секция",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SectionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Section"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/sections/{key}": {
            "put": {
                "summary": "Изменить секцию по ключу",
                "tags": [
                    "sections"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Ключ секции",
                        "name": "key",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateSectionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Section"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/services": {
            "get": {
                "summary": "Услуги студии",
                "tags": [
                    "services"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Тип услуги",
                        "name": "serviceType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Service"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить услугу",
                "tags": [
                    "services"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Услуга",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateServiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Service"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/services/{id}": {
            "put": {
                "summary": "Изменить услугу",
                "tags": [
                    "services"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateServiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Service"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings": {
            "get": {
                "summary": "Настройки сайта",
                "description": "Пока настройки не сохранялись, возвращаются значения по умолчанию.",
                "tags": [
                    "settings"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Setting"
                        }
                    }
                }
            },
            "post": {
                "summary": "Сохранить настройки сайта",
                "tags": [
                    "settings"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Настройки",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SettingRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Setting"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/stories": {
            "get": {
                "summary": "Истории съёмок",
                "tags": [
                    "stories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Только для главной",
                        "name": "homepage",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    },
                    {
                        "description": "Любой из тегов",
                        "name": "tag",
                        "in": "query",
                        "required": false,
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Story"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить историю",
                "tags": [
                    "stories"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "История",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Story"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/stories/featured": {
            "get": {
                "summary": "Избранные истории",
                "tags": [
                    "stories"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Story"
                            }
                        }
                    }
                }
            }
        },
        "/api/stories/{id}": {
            "get": {
                "summary": "История по ID",
                "tags": [
                    "stories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Story"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Изменить историю",
                "tags": [
                    "stories"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Story"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "summary": "Одобренные отзывы",
                "tags": [
                    "testimonials"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Testimonial"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Оставить отзыв",
                "description": "Публичная форма. Отзыв появляется на сайте после одобрения.",
                "tags": [
                    "testimonials"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Отзыв",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateTestimonialRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Testimonial"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/testimonials/all": {
            "get": {
                "summary": "Все отзывы, включая ожидающие модерации",
                "tags": [
                    "testimonials"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Testimonial"
                            }
                        }
                    }
                }
            }
        },
        "/api/testimonials/{id}": {
            "put": {
                "summary": "Изменить или одобрить отзыв",
                "tags": [
                    "testimonials"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateTestimonialRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Testimonial"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/wedding-gallery": {
            "get": {
                "summary": "Свадебная галерея",
                "tags": [
                    "wedding-gallery"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "bride, groom, couple, ceremony, candid, decor",
                        "name": "photoType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "ID свадебной истории",
                        "name": "weddingStoryId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.WeddingGalleryImage"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить фото в свадебную галерею",
                "tags": [
                    "wedding-gallery"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Фото",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWeddingGalleryImageRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WeddingGalleryImage"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/wedding-gallery/{id}": {
            "put": {
                "summary": "Изменить фото свадебной галереи",
                "tags": [
                    "wedding-gallery"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateWeddingGalleryImageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WeddingGalleryImage"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/wedding-stories": {
            "get": {
                "summary": "Свадебные истории",
                "tags": [
                    "wedding-stories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Только избранные",
                        "name": "featured",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.WeddingStory"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Добавить свадебную историю",
                "tags": [
                    "wedding-stories"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "История",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWeddingStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WeddingStory"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/wedding-stories/{id}": {
            "get": {
                "summary": "Свадебная история по ID",
                "tags": [
                    "wedding-stories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WeddingStory"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Изменить свадебную историю",
                "tags": [
                    "wedding-stories"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "AdminCookie": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID документа",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateWeddingStoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WeddingStory"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/widgets/whatsapp": {
            "get": {
                "summary": "Ссылка на чат WhatsApp",
                "description": "Номер берётся из настроек сайта, иначе из конфигурации.",
                "tags": [
                    "widgets"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.WhatsAppWidget"
                        }
                    }
                }
            }
        },
        "/api/widgets/whatsapp.html": {
            "get": {
                "summary": "Кнопка WhatsApp",
                "description": "HTML-фрагмент для вставки на страницу.",
                "tags": [
                    "widgets"
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.CreateAboutRequest": {
            "type": "object",
            "required": [
                "title",
                "description"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CreateFilmRequest": {
            "type": "object",
            "required": [
                "title",
                "videoUrl"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "coupleNames": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnail": {
                    "$ref": "#/definitions/models.Asset"
                },
                "location": {
                    "type": "string"
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreateGalleryRequest": {
            "type": "object",
            "required": [
                "imageUrl",
                "category"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "imagePublicId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "isHighlight": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateHeroRequest": {
            "type": "object",
            "required": [
                "title",
                "type",
                "mediaUrl"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "mediaUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateMediaRequest": {
            "type": "object",
            "required": [
                "type",
                "category",
                "url"
            ],
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "category": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreateOurStoryRequest": {
            "type": "object",
            "required": [
                "heading",
                "paragraphs"
            ],
            "properties": {
                "heading": {
                    "type": "string"
                },
                "paragraphs": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "signature": {
                    "type": "string"
                }
            }
        },
        "dto.CreateReelRequest": {
            "type": "object",
            "required": [
                "title",
                "videoUrl"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnailUrl": {
                    "type": "string"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreateReviewRequest": {
            "type": "object",
            "required": [
                "clientName",
                "rating",
                "comment"
            ],
            "properties": {
                "clientName": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                }
            }
        },
        "dto.CreateServiceRequest": {
            "type": "object",
            "required": [
                "title",
                "description",
                "serviceType"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string",
                    "enum": [
                        "photography",
                        "videography",
                        "photo-video",
                        "album",
                        "drone"
                    ]
                },
                "price": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateStoryRequest": {
            "type": "object",
            "required": [
                "title",
                "eventType"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "gallery": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "videos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreateTestimonialRequest": {
            "type": "object",
            "required": [
                "clientName",
                "quote"
            ],
            "properties": {
                "clientName": {
                    "type": "string"
                },
                "quote": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "eventType": {
                    "type": "string"
                }
            }
        },
        "dto.CreateWeddingGalleryImageRequest": {
            "type": "object",
            "required": [
                "imageUrl",
                "photoType"
            ],
            "properties": {
                "imageUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "photoType": {
                    "type": "string",
                    "enum": [
                        "bride",
                        "groom",
                        "couple",
                        "ceremony",
                        "candid",
                        "decor"
                    ]
                },
                "weddingStoryId": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateWeddingStoryRequest": {
            "type": "object",
            "required": [
                "coupleNames",
                "title"
            ],
            "properties": {
                "coupleNames": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "weddingDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "location": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "dto.CountersRequest": {
            "type": "object",
            "properties": {
                "weddings": {
                    "type": "integer",
                    "minimum": 0
                },
                "cities": {
                    "type": "integer",
                    "minimum": 0
                },
                "happyCouples": {
                    "type": "integer",
                    "minimum": 0
                },
                "yearsExperience": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "dto.FooterRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "socialLinks": {
                    "$ref": "#/definitions/dto.SocialLinksRequest"
                }
            }
        },
        "dto.SectionRequest": {
            "type": "object",
            "required": [
                "key"
            ],
            "properties": {
                "key": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Asset"
                    }
                },
                "extra": {
                    "type": "object",
                    "additionalProperties": true
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.SettingRequest": {
            "type": "object",
            "properties": {
                "heroStoryId": {
                    "type": "string"
                },
                "counters": {
                    "$ref": "#/definitions/dto.CountersRequest"
                },
                "whatsappNumber": {
                    "type": "string"
                }
            }
        },
        "dto.SocialLinksRequest": {
            "type": "object",
            "properties": {
                "instagram": {
                    "type": "string"
                },
                "facebook": {
                    "type": "string"
                },
                "youtube": {
                    "type": "string"
                },
                "pinterest": {
                    "type": "string"
                },
                "whatsapp": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateAboutRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.UpdateFilmRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "coupleNames": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnail": {
                    "$ref": "#/definitions/models.Asset"
                },
                "location": {
                    "type": "string"
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateGalleryRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "imagePublicId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "isHighlight": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateHeroRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "mediaUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateMediaRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "category": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateOurStoryRequest": {
            "type": "object",
            "properties": {
                "heading": {
                    "type": "string"
                },
                "paragraphs": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "signature": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateReelRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnailUrl": {
                    "type": "string"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateReviewRequest": {
            "type": "object",
            "properties": {
                "clientName": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                },
                "approved": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateSectionRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Asset"
                    }
                },
                "extra": {
                    "type": "object",
                    "additionalProperties": true
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateServiceRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string",
                    "enum": [
                        "photography",
                        "videography",
                        "photo-video",
                        "album",
                        "drone"
                    ]
                },
                "price": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateStoryRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "gallery": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "videos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateTestimonialRequest": {
            "type": "object",
            "properties": {
                "clientName": {
                    "type": "string"
                },
                "quote": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "eventType": {
                    "type": "string"
                },
                "approved": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateWeddingGalleryImageRequest": {
            "type": "object",
            "properties": {
                "imageUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "photoType": {
                    "type": "string",
                    "enum": [
                        "bride",
                        "groom",
                        "couple",
                        "ceremony",
                        "candid",
                        "decor"
                    ]
                },
                "weddingStoryId": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateWeddingStoryRequest": {
            "type": "object",
            "properties": {
                "coupleNames": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "weddingDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "location": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "http.WhatsAppWidget": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.About": {
            "type": "object",
            "required": [
                "title",
                "description"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.Asset": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                }
            }
        },
        "models.Counters": {
            "type": "object",
            "properties": {
                "weddings": {
                    "type": "integer"
                },
                "happyCouples": {
                    "type": "integer"
                },
                "cities": {
                    "type": "integer"
                },
                "yearsExperience": {
                    "type": "integer"
                }
            }
        },
        "models.Film": {
            "type": "object",
            "required": [
                "title",
                "videoUrl"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "coupleNames": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnail": {
                    "$ref": "#/definitions/models.Asset"
                },
                "location": {
                    "type": "string"
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "models.Footer": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "socialLinks": {
                    "$ref": "#/definitions/models.SocialLinks"
                }
            }
        },
        "models.Gallery": {
            "type": "object",
            "required": [
                "imageUrl",
                "category"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "imagePublicId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "isHighlight": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "models.Hero": {
            "type": "object",
            "required": [
                "title",
                "type",
                "mediaUrl"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "mediaUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "models.Media": {
            "type": "object",
            "required": [
                "type",
                "category",
                "url"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "image",
                        "video"
                    ]
                },
                "category": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isHomepage": {
                    "type": "boolean"
                }
            }
        },
        "models.OurStory": {
            "type": "object",
            "required": [
                "heading",
                "paragraphs"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "heading": {
                    "type": "string"
                },
                "paragraphs": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "signature": {
                    "type": "string"
                }
            }
        },
        "models.Principal": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "admin",
                        "editor"
                    ]
                }
            }
        },
        "models.Reel": {
            "type": "object",
            "required": [
                "title",
                "videoUrl"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "videoUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "thumbnailUrl": {
                    "type": "string"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "models.RequiredAsset": {
            "type": "object",
            "required": [
                "url"
            ],
            "properties": {
                "url": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                }
            }
        },
        "models.Review": {
            "type": "object",
            "required": [
                "clientName",
                "rating",
                "comment"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "clientName": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                },
                "approved": {
                    "type": "boolean"
                }
            }
        },
        "models.Section": {
            "type": "object",
            "required": [
                "key"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "key": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Asset"
                    }
                },
                "extra": {
                    "type": "object",
                    "additionalProperties": true
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "models.Service": {
            "type": "object",
            "required": [
                "title",
                "description",
                "serviceType"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string",
                    "enum": [
                        "photography",
                        "videography",
                        "photo-video",
                        "album",
                        "drone"
                    ]
                },
                "price": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "models.Setting": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "heroStoryId": {
                    "type": "string"
                },
                "counters": {
                    "$ref": "#/definitions/models.Counters"
                },
                "whatsappNumber": {
                    "type": "string"
                }
            }
        },
        "models.SocialLinks": {
            "type": "object",
            "properties": {
                "instagram": {
                    "type": "string"
                },
                "facebook": {
                    "type": "string"
                },
                "youtube": {
                    "type": "string"
                },
                "pinterest": {
                    "type": "string"
                },
                "whatsapp": {
                    "type": "string"
                }
            }
        },
        "models.Story": {
            "type": "object",
            "required": [
                "title",
                "eventType"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "title": {
                    "type": "string"
                },
                "eventType": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "gallery": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "videos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "showOnHomepage": {
                    "type": "boolean"
                }
            }
        },
        "models.Testimonial": {
            "type": "object",
            "required": [
                "clientName",
                "quote"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "clientName": {
                    "type": "string"
                },
                "quote": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/models.Asset"
                },
                "eventType": {
                    "type": "string"
                },
                "approved": {
                    "type": "boolean"
                }
            }
        },
        "models.WeddingGalleryImage": {
            "type": "object",
            "required": [
                "imageUrl",
                "photoType"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "imageUrl": {
                    "type": "string"
                },
                "publicId": {
                    "type": "string"
                },
                "photoType": {
                    "type": "string",
                    "enum": [
                        "bride",
                        "groom",
                        "couple",
                        "ceremony",
                        "candid",
                        "decor"
                    ]
                },
                "weddingStoryId": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "models.WeddingStory": {
            "type": "object",
            "required": [
                "coupleNames",
                "title"
            ],
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "coupleNames": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "weddingDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "location": {
                    "type": "string"
                },
                "coverImage": {
                    "$ref": "#/definitions/models.RequiredAsset"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RequiredAsset"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "request.LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "message": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "AdminCookie": {
            "type": "apiKey",
            "name": "admin_token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Studio CMS API",
	Description:      "Контент фотостудии: галереи, истории, отзывы, настройки сайта.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
