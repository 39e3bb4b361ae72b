// Package storagetest общий набор проверок для реализаций storage.Store.
package storagetest

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/storage"
)

const Collection = "things"

// Indexes уникальные индексы, которые ожидает набор
var Indexes = []storage.UniqueIndex{{Collection: Collection, Field: "key"}}

type Thing struct {
	ID        primitive.ObjectID `bson:"_id"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Key       string             `bson:"key"`
	Title     string             `bson:"title"`
	Tags      []string           `bson:"tags"`
	Featured  bool               `bson:"featured"`
	Order     int                `bson:"order"`
}

// Suite проверяет контракт storage.Collection. NewStore вызывается перед каждым тестом
// и должен вернуть пустое хранилище с индексами Indexes.
type Suite struct {
	suite.Suite
	NewStore func() storage.Store

	ctx   context.Context
	store storage.Store
	coll  storage.Collection
	clock time.Time
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore()
	s.coll = s.store.Collection(Collection)
	s.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *Suite) TearDownTest() {
	s.Require().NoError(s.store.Close(s.ctx))
}

func (s *Suite) newThing() Thing {
	s.clock = s.clock.Add(time.Minute)

	return Thing{
		ID:        primitive.NewObjectID(),
		CreatedAt: s.clock,
		UpdatedAt: s.clock,
		Key:       gofakeit.UUID(),
		Title:     gofakeit.Sentence(3),
		Tags:      []string{},
	}
}

func (s *Suite) insert(t Thing) Thing {
	s.Require().NoError(s.coll.Insert(s.ctx, t))
	return t
}

func (s *Suite) count() int {
	var all []Thing
	s.Require().NoError(s.coll.Find(s.ctx, storage.Query{}, &all))
	return len(all)
}

func (s *Suite) TestInsertAndFindOne() {
	in := s.insert(s.newThing())

	var got Thing
	s.Require().NoError(s.coll.FindOne(s.ctx, storage.ByID(in.ID), &got))

	s.Equal(in.ID, got.ID)
	s.Equal(in.Title, got.Title)
	s.True(in.CreatedAt.Equal(got.CreatedAt))
	s.NotNil(got.Tags)
}

func (s *Suite) TestFindOne_NotFound() {
	var got Thing
	err := s.coll.FindOne(s.ctx, storage.ByID(primitive.NewObjectID()), &got)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *Suite) TestInsert_DuplicateKey() {
	first := s.insert(s.newThing())

	dup := s.newThing()
	dup.Key = first.Key

	err := s.coll.Insert(s.ctx, dup)
	s.ErrorIs(err, storage.ErrDuplicateKey)
	s.Equal(1, s.count())
}

func (s *Suite) TestFind_FilterSortLimit() {
	a := s.newThing()
	a.Featured = true
	s.insert(a)

	s.insert(s.newThing())

	b := s.newThing()
	b.Featured = true
	s.insert(b)

	c := s.newThing()
	c.Featured = true
	s.insert(c)

	var got []Thing
	err := s.coll.Find(s.ctx, storage.Query{
		Filter: storage.Eq("featured", true),
		Sort:   []storage.SortField{{Field: "createdAt", Desc: true}},
		Limit:  2,
	}, &got)
	s.Require().NoError(err)

	s.Require().Len(got, 2)
	s.Equal(c.ID, got[0].ID)
	s.Equal(b.ID, got[1].ID)
}

func (s *Suite) TestFind_AnyOf() {
	a := s.newThing()
	a.Tags = []string{"wedding", "outdoor"}
	s.insert(a)

	b := s.newThing()
	b.Tags = []string{"studio"}
	s.insert(b)

	c := s.newThing()
	c.Tags = []string{"outdoor"}
	s.insert(c)

	var got []Thing
	err := s.coll.Find(s.ctx, storage.Query{
		Filter: storage.Filter{AnyOf: map[string][]string{"tags": {"outdoor", "drone"}}},
		Sort:   []storage.SortField{{Field: "createdAt"}},
	}, &got)
	s.Require().NoError(err)

	s.Require().Len(got, 2)
	s.Equal(a.ID, got[0].ID)
	s.Equal(c.ID, got[1].ID)
}

func (s *Suite) TestFind_SortByOrder() {
	third := s.newThing()
	third.Order = 3
	s.insert(third)

	first := s.newThing()
	first.Order = 1
	s.insert(first)

	second := s.newThing()
	second.Order = 2
	s.insert(second)

	var got []Thing
	err := s.coll.Find(s.ctx, storage.Query{
		Sort: []storage.SortField{{Field: "order"}, {Field: "createdAt"}},
	}, &got)
	s.Require().NoError(err)

	s.Require().Len(got, 3)
	s.Equal([]int{1, 2, 3}, []int{got[0].Order, got[1].Order, got[2].Order})
}

func (s *Suite) TestUpdate() {
	in := s.insert(s.newThing())
	later := in.UpdatedAt.Add(time.Hour)

	var got Thing
	err := s.coll.Update(s.ctx, storage.ByID(in.ID), map[string]any{
		"title":     "updated",
		"featured":  true,
		"updatedAt": later,
	}, &got)
	s.Require().NoError(err)

	s.Equal(in.ID, got.ID)
	s.Equal("updated", got.Title)
	s.True(got.Featured)
	s.Equal(in.Key, got.Key)
	s.True(later.Equal(got.UpdatedAt))
	s.True(in.CreatedAt.Equal(got.CreatedAt))

	var reread Thing
	s.Require().NoError(s.coll.FindOne(s.ctx, storage.ByID(in.ID), &reread))
	s.Equal("updated", reread.Title)
}

func (s *Suite) TestUpdate_NotFoundNeverCreates() {
	s.insert(s.newThing())

	var got Thing
	err := s.coll.Update(s.ctx, storage.ByID(primitive.NewObjectID()), map[string]any{"title": "x"}, &got)
	s.ErrorIs(err, storage.ErrNotFound)
	s.Equal(1, s.count())
}

func (s *Suite) TestUpdate_DuplicateKey() {
	a := s.insert(s.newThing())
	b := s.insert(s.newThing())

	var got Thing
	err := s.coll.Update(s.ctx, storage.ByID(b.ID), map[string]any{"key": a.Key}, &got)
	s.ErrorIs(err, storage.ErrDuplicateKey)
}

func (s *Suite) TestUpsert_ByKeyTwice() {
	created := s.clock
	filter := storage.Eq("key", "about")

	var first Thing
	err := s.coll.Upsert(s.ctx, filter,
		map[string]any{"title": "first", "order": 1, "updatedAt": created},
		map[string]any{"_id": primitive.NewObjectID(), "createdAt": created},
		&first)
	s.Require().NoError(err)
	s.Equal("about", first.Key)
	s.Equal("first", first.Title)

	var second Thing
	err = s.coll.Upsert(s.ctx, filter,
		map[string]any{"title": "second", "order": 2, "updatedAt": created.Add(time.Hour)},
		map[string]any{"_id": primitive.NewObjectID(), "createdAt": created.Add(time.Hour)},
		&second)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("second", second.Title)
	s.Equal(2, second.Order)
	s.True(created.Equal(second.CreatedAt))
	s.Equal(1, s.count())
}

func (s *Suite) TestUpsert_ByFixedID() {
	id := primitive.ObjectID{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9}
	filter := storage.ByID(id)

	for _, title := range []string{"one", "two"} {
		var got Thing
		err := s.coll.Upsert(s.ctx, filter,
			map[string]any{"title": title, "key": "singleton", "updatedAt": s.clock},
			map[string]any{"createdAt": s.clock},
			&got)
		s.Require().NoError(err)
		s.Equal(id, got.ID)
		s.Equal(title, got.Title)
	}

	s.Equal(1, s.count())
}

func (s *Suite) TestDelete() {
	a := s.insert(s.newThing())
	b := s.insert(s.newThing())

	s.Require().NoError(s.coll.Delete(s.ctx, storage.ByID(a.ID)))

	var left []Thing
	s.Require().NoError(s.coll.Find(s.ctx, storage.Query{}, &left))
	s.Require().Len(left, 1)
	s.Equal(b.ID, left[0].ID)

	err := s.coll.Delete(s.ctx, storage.ByID(a.ID))
	s.ErrorIs(err, storage.ErrNotFound)
}
