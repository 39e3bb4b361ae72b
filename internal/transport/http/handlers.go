package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

type creator[T any] interface {
	ToModel() T
}

type patcher interface {
	Patch() map[string]any
}

// bindValid разбирает тело и проверяет его; ни одна ошибка отсюда не доходит до хранилища
func bindValid(c echo.Context, log *slog.Logger, req any) error {
	if err := c.Bind(req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return err
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return err
	}

	return nil
}

func list[T any](c echo.Context, log *slog.Logger, svc ContentService[T], f storage.Filter) error {
	limit, err := limitParam(c)
	if err != nil {
		log.Warn("invalid limit", sl.Err(err))
		return err
	}

	docs, err := svc.List(c.Request().Context(), f, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, docs)
}

func get[T any](c echo.Context, svc ContentService[T]) error {
	doc, err := svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doc)
}

func create[T any, R creator[T]](c echo.Context, log *slog.Logger, svc ContentService[T]) error {
	var req R
	if err := bindValid(c, log, &req); err != nil {
		return err
	}

	doc, err := svc.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, doc)
}

func update[T any, R patcher](c echo.Context, log *slog.Logger, svc ContentService[T]) error {
	var req R
	if err := bindValid(c, log, &req); err != nil {
		return err
	}

	doc, err := svc.Update(c.Request().Context(), c.Param("id"), req.Patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doc)
}

func limitParam(c echo.Context) (int64, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, validate.NewError("limit", "limit must be a non-negative integer")
	}

	return limit, nil
}

// queryFilter собирает фильтр из параметров запроса
type queryFilter struct {
	c   echo.Context
	f   storage.Filter
	err error
}

func filterFrom(c echo.Context) *queryFilter {
	return &queryFilter{c: c}
}

// Str поле равно значению параметра, если он передан
func (q *queryFilter) Str(param, field string) *queryFilter {
	if v := q.c.QueryParam(param); v != "" {
		q.f = q.f.And(field, v)
	}
	return q
}

// Bool поле равно true/false из параметра
func (q *queryFilter) Bool(param, field string) *queryFilter {
	raw := q.c.QueryParam(param)
	if raw == "" || q.err != nil {
		return q
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.err = validate.NewError(param, param+" must be true or false")
		return q
	}

	q.f = q.f.And(field, v)
	return q
}

// ObjectID поле-ссылка равно идентификатору из параметра
func (q *queryFilter) ObjectID(param, field string) *queryFilter {
	raw := q.c.QueryParam(param)
	if raw == "" || q.err != nil {
		return q
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		q.err = validate.NewError(param, param+" must be a valid object id")
		return q
	}

	q.f = q.f.And(field, id)
	return q
}

// Tags массив поля содержит хотя бы одно из значений параметра
func (q *queryFilter) Tags(param, field string) *queryFilter {
	values := q.c.QueryParams()[param]
	if len(values) == 0 {
		return q
	}

	anyOf := make(map[string][]string, len(q.f.AnyOf)+1)
	for k, v := range q.f.AnyOf {
		anyOf[k] = v
	}
	anyOf[field] = values
	q.f.AnyOf = anyOf

	return q
}

// Fixed условие, которое клиент не может переопределить
func (q *queryFilter) Fixed(field string, value any) *queryFilter {
	q.f = q.f.And(field, value)
	return q
}

func (q *queryFilter) Build() (storage.Filter, error) {
	return q.f, q.err
}
