package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/storage"
)

// Store хранилище документов в памяти процесса для локального запуска и тестов.
// Документы хранятся в BSON, как в MongoDB.
type Store struct {
	mu      sync.RWMutex
	docs    map[string][]*record
	unique  map[string][]string
	nextSeq uint64
}

type record struct {
	raw bson.Raw
	seq uint64
}

func New(indexes ...storage.UniqueIndex) *Store {
	unique := make(map[string][]string)
	for _, idx := range indexes {
		unique[idx.Collection] = append(unique[idx.Collection], idx.Field)
	}

	return &Store{
		docs:   make(map[string][]*record),
		unique: unique,
	}
}

func (s *Store) Collection(name string) storage.Collection {
	return &Collection{store: s, name: name}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string][]*record)

	return nil
}

type Collection struct {
	store *Store
	name  string
}

func (c *Collection) Insert(ctx context.Context, doc any) error {
	const op = "storage.memory.Insert"

	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if err := c.insertLocked(raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Find(ctx context.Context, q storage.Query, out any) error {
	const op = "storage.memory.Find"

	c.store.mu.RLock()
	var matched []*record
	for _, rec := range c.store.docs[c.name] {
		if matches(rec.raw, q.Filter) {
			matched = append(matched, &record{raw: rec.raw, seq: rec.seq})
		}
	}
	c.store.mu.RUnlock()

	sortRecords(matched, q.Sort)

	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	raws := make([][]byte, 0, len(matched))
	for _, rec := range matched {
		raws = append(raws, rec.raw)
	}

	if err := storage.DecodeAll(raws, out, storage.DecodeBSON); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) FindOne(ctx context.Context, f storage.Filter, out any) error {
	const op = "storage.memory.FindOne"

	c.store.mu.RLock()
	var raw bson.Raw
	if rec := c.firstLocked(f); rec != nil {
		raw = rec.raw
	}
	c.store.mu.RUnlock()

	if raw == nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := storage.DecodeBSON(raw, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Update(ctx context.Context, f storage.Filter, set map[string]any, out any) error {
	const op = "storage.memory.Update"

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	rec := c.firstLocked(f)
	if rec == nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := c.applyLocked(rec, set); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := storage.DecodeBSON(rec.raw, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Upsert(ctx context.Context, f storage.Filter, set, setOnInsert map[string]any, out any) error {
	const op = "storage.memory.Upsert"

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	rec := c.firstLocked(f)
	if rec != nil {
		if err := c.applyLocked(rec, set); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := storage.DecodeBSON(rec.raw, out); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}

	// новый документ собирается так же, как при upsert в MongoDB:
	// поля равенства из фильтра, затем $setOnInsert, затем $set
	doc := bson.D{}
	for _, fields := range []map[string]any{f.Eq, setOnInsert, set} {
		for k, v := range fields {
			doc = setField(doc, k, v)
		}
	}

	if !hasField(doc, "_id") {
		doc = append(bson.D{{Key: "_id", Value: primitive.NewObjectID()}}, doc...)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.insertLocked(raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := storage.DecodeBSON(raw, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Delete(ctx context.Context, f storage.Filter) error {
	const op = "storage.memory.Delete"

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.docs[c.name]
	for i, rec := range docs {
		if matches(rec.raw, f) {
			c.store.docs[c.name] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func (c *Collection) firstLocked(f storage.Filter) *record {
	for _, rec := range c.store.docs[c.name] {
		if matches(rec.raw, f) {
			return rec
		}
	}

	return nil
}

func (c *Collection) insertLocked(raw bson.Raw) error {
	if err := c.checkUniqueLocked(raw, nil); err != nil {
		return err
	}

	c.store.nextSeq++
	c.store.docs[c.name] = append(c.store.docs[c.name], &record{raw: raw, seq: c.store.nextSeq})

	return nil
}

func (c *Collection) applyLocked(rec *record, set map[string]any) error {
	var doc bson.D
	if err := bson.Unmarshal(rec.raw, &doc); err != nil {
		return err
	}

	for k, v := range set {
		if k == "_id" {
			continue
		}
		doc = setField(doc, k, v)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}

	if err := c.checkUniqueLocked(raw, rec); err != nil {
		return err
	}

	rec.raw = raw

	return nil
}

func (c *Collection) checkUniqueLocked(raw bson.Raw, self *record) error {
	fields := append([]string{"_id"}, c.store.unique[c.name]...)

	for _, field := range fields {
		value, err := raw.LookupErr(field)
		if err != nil {
			continue
		}

		for _, other := range c.store.docs[c.name] {
			if other == self {
				continue
			}
			if existing, err := other.raw.LookupErr(field); err == nil && existing.Equal(value) {
				return fmt.Errorf("%w: %s.%s", storage.ErrDuplicateKey, c.name, field)
			}
		}
	}

	return nil
}

func matches(raw bson.Raw, f storage.Filter) bool {
	for field, want := range f.Eq {
		got, err := raw.LookupErr(field)
		if err != nil {
			return false
		}

		t, data, err := bson.MarshalValue(want)
		if err != nil || !got.Equal(bson.RawValue{Type: t, Value: data}) {
			return false
		}
	}

	for field, wanted := range f.AnyOf {
		got, err := raw.LookupErr(field)
		if err != nil || !containsAny(got, wanted) {
			return false
		}
	}

	return true
}

func containsAny(v bson.RawValue, wanted []string) bool {
	arr, ok := v.ArrayOK()
	if !ok {
		return false
	}

	values, err := arr.Values()
	if err != nil {
		return false
	}

	for _, value := range values {
		s, ok := value.StringValueOK()
		if !ok {
			continue
		}
		for _, w := range wanted {
			if s == w {
				return true
			}
		}
	}

	return false
}

// sortRecords сортирует по полям запроса; при равенстве порядок вставки
// идёт в направлении первого поля сортировки.
func sortRecords(recs []*record, fields []storage.SortField) {
	sort.SliceStable(recs, func(i, j int) bool {
		for _, f := range fields {
			c := compare(recs[i].raw.Lookup(f.Field), recs[j].raw.Lookup(f.Field))
			if c == 0 {
				continue
			}
			if f.Desc {
				return c > 0
			}
			return c < 0
		}

		if len(fields) > 0 && fields[0].Desc {
			return recs[i].seq > recs[j].seq
		}

		return recs[i].seq < recs[j].seq
	})
}

func compare(a, b bson.RawValue) int {
	if a.IsZero() || b.IsZero() {
		switch {
		case a.IsZero() && b.IsZero():
			return 0
		case a.IsZero():
			return -1
		default:
			return 1
		}
	}

	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}

	if at, ok := a.DateTimeOK(); ok {
		if bt, ok := b.DateTimeOK(); ok {
			switch {
			case at < bt:
				return -1
			case at > bt:
				return 1
			}
			return 0
		}
	}

	if as, ok := a.StringValueOK(); ok {
		if bs, ok := b.StringValueOK(); ok {
			return strings.Compare(as, bs)
		}
	}

	if ab, ok := a.BooleanOK(); ok {
		if bb, ok := b.BooleanOK(); ok && ab != bb {
			if bb {
				return -1
			}
			return 1
		}
	}

	return 0
}

func number(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bsontype.Int32:
		return float64(v.Int32()), true
	case bsontype.Int64:
		return float64(v.Int64()), true
	case bsontype.Double:
		return v.Double(), true
	}

	return 0, false
}

func setField(doc bson.D, key string, value any) bson.D {
	for i := range doc {
		if doc[i].Key == key {
			doc[i].Value = value
			return doc
		}
	}

	return append(doc, bson.E{Key: key, Value: value})
}

func hasField(doc bson.D, key string) bool {
	for _, e := range doc {
		if e.Key == key {
			return true
		}
	}

	return false
}
