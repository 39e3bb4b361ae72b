package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"studio_cms/internal/storage"
)

type Store struct {
	conn *storage.Lazy[*mongo.Database]
}

// New не подключается к серверу: подключение устанавливается при первом запросе.
func New(uri, database string, connectTimeout time.Duration, indexes ...storage.UniqueIndex) *Store {
	dial := func(ctx context.Context) (*mongo.Database, error) {
		return connect(ctx, uri, database, connectTimeout, indexes)
	}

	disconnect := func(ctx context.Context, db *mongo.Database) error {
		return db.Client().Disconnect(ctx)
	}

	return &Store{conn: storage.NewLazy(dial, disconnect)}
}

func connect(ctx context.Context, uri, database string, timeout time.Duration, indexes []storage.UniqueIndex) (*mongo.Database, error) {
	const op = "storage.mongodb.connect"

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	db := client.Database(database)

	for _, idx := range indexes {
		_, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("%s: index %s.%s: %w", op, idx.Collection, idx.Field, err)
		}
	}

	return db, nil
}

func (s *Store) Collection(name string) storage.Collection {
	return &Collection{store: s, name: name}
}

func (s *Store) Ping(ctx context.Context) error {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	return db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.conn.Reset(ctx)
}

type Collection struct {
	store *Store
	name  string
}

func (c *Collection) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := c.store.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(c.name), nil
}

func (c *Collection) Insert(ctx context.Context, doc any) error {
	const op = "storage.mongodb.Insert"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

func (c *Collection) Find(ctx context.Context, q storage.Query, out any) error {
	const op = "storage.mongodb.Find"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(sortDoc(q.Sort))
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := coll.Find(ctx, filterDoc(q.Filter), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) FindOne(ctx context.Context, f storage.Filter, out any) error {
	const op = "storage.mongodb.FindOne"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := coll.FindOne(ctx, filterDoc(f)).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

func (c *Collection) Update(ctx context.Context, f storage.Filter, set map[string]any, out any) error {
	const op = "storage.mongodb.Update"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = coll.FindOneAndUpdate(ctx, filterDoc(f), bson.M{"$set": withoutID(set)}, opts).Decode(out)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

func (c *Collection) Upsert(ctx context.Context, f storage.Filter, set, setOnInsert map[string]any, out any) error {
	const op = "storage.mongodb.Upsert"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	update := bson.M{"$set": withoutID(set)}
	if len(setOnInsert) > 0 {
		update["$setOnInsert"] = setOnInsert
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	if err := coll.FindOneAndUpdate(ctx, filterDoc(f), update, opts).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	return nil
}

func (c *Collection) Delete(ctx context.Context, f storage.Filter) error {
	const op = "storage.mongodb.Delete"

	coll, err := c.collection(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := coll.DeleteOne(ctx, filterDoc(f))
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func filterDoc(f storage.Filter) bson.M {
	doc := bson.M{}

	for field, value := range f.Eq {
		doc[field] = value
	}

	for field, values := range f.AnyOf {
		doc[field] = bson.M{"$in": values}
	}

	return doc
}

func sortDoc(fields []storage.SortField) bson.D {
	doc := make(bson.D, 0, len(fields))

	for _, f := range fields {
		dir := 1
		if f.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: f.Field, Value: dir})
	}

	return doc
}

func withoutID(set map[string]any) map[string]any {
	if _, ok := set["_id"]; !ok {
		return set
	}

	clean := make(map[string]any, len(set))
	for k, v := range set {
		if k != "_id" {
			clean[k] = v
		}
	}

	return clean
}

func mapError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	default:
		return err
	}
}
