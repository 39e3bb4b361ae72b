package postgresql

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/storage"
)

// Документы всех коллекций лежат в одной таблице в виде JSONB
// (relaxed Extended JSON, чтобы ObjectID и даты не теряли тип).
const (
	documentsTable = "documents"

	uniqueViolation = "23505"
)

var fieldName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

type Storage struct {
	conn *storage.Lazy[*pgxpool.Pool]
}

// New не подключается к базе: пул создаётся и миграции применяются при первом запросе.
func New(dsn string, indexes ...storage.UniqueIndex) *Storage {
	dial := func(ctx context.Context) (*pgxpool.Pool, error) {
		return connect(ctx, dsn, indexes)
	}

	closePool := func(ctx context.Context, db *pgxpool.Pool) error {
		db.Close()
		return nil
	}

	return &Storage{conn: storage.NewLazy(dial, closePool)}
}

func connect(ctx context.Context, dsn string, indexes []storage.UniqueIndex) (*pgxpool.Pool, error) {
	const op = "storage.postgresql.connect"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := migrate(ctx, db, indexes); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

func migrate(ctx context.Context, db *pgxpool.Pool, indexes []storage.UniqueIndex) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (collection, id)
		);

		CREATE INDEX IF NOT EXISTS documents_collection_created_at
			ON documents (collection, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	for _, idx := range indexes {
		if !fieldName.MatchString(idx.Field) || !fieldName.MatchString(idx.Collection) {
			return fmt.Errorf("invalid unique index %s.%s", idx.Collection, idx.Field)
		}

		stmt := fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS documents_%s_%s_key ON documents ((data->>'%s')) WHERE collection = '%s'`,
			idx.Collection, idx.Field, idx.Field, idx.Collection,
		)
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create index %s.%s: %w", idx.Collection, idx.Field, err)
		}
	}

	return nil
}

func (s *Storage) Collection(name string) storage.Collection {
	return &Collection{storage: s, name: name}
}

func (s *Storage) Ping(ctx context.Context) error {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	return db.Ping(ctx)
}

func (s *Storage) Close(ctx context.Context) error {
	return s.conn.Reset(ctx)
}

type Collection struct {
	storage *Storage
	name    string
}

func (c *Collection) Insert(ctx context.Context, doc any) error {
	const op = "storage.postgresql.Insert"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.insert(ctx, db, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) insert(ctx context.Context, db *pgxpool.Pool, doc any) error {
	query, args, err := c.insertSQL(doc, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return mapError(err)
	}

	return nil
}

// insertSQL строит INSERT документа; метки времени берутся из документа, иначе now
func (c *Collection) insertSQL(doc any, now time.Time) (string, []any, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return "", nil, err
	}
	raw := bson.Raw(data)

	id, ok := raw.Lookup("_id").ObjectIDOK()
	if !ok {
		return "", nil, errors.New("document has no _id")
	}

	createdAt, ok := raw.Lookup("createdAt").TimeOK()
	if !ok {
		createdAt = now
	}
	updatedAt, ok := raw.Lookup("updatedAt").TimeOK()
	if !ok {
		updatedAt = now
	}

	body, err := storage.EncodeExtJSON(raw)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sq.Insert(documentsTable).
		Columns("collection", "id", "data", "created_at", "updated_at").
		Values(c.name, id.Hex(), sq.Expr("?::jsonb", string(body)), createdAt, updatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("can't build sql: %w", err)
	}

	return query, args, nil
}

func (c *Collection) Find(ctx context.Context, q storage.Query, out any) error {
	const op = "storage.postgresql.Find"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	where, err := c.where(q.Filter)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	orderBy, err := orderBy(q.Sort)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	builder := sq.Select("data").From(documentsTable).Where(where).OrderBy(orderBy...)
	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return fmt.Errorf("%s: can't scan row: %w", op, err)
		}
		docs = append(docs, data)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := storage.DecodeAll(docs, out, storage.DecodeExtJSON); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) FindOne(ctx context.Context, f storage.Filter, out any) error {
	const op = "storage.postgresql.FindOne"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	where, err := c.where(f)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := sq.Select("data").From(documentsTable).Where(where).
		OrderBy("created_at").Limit(1).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if err := scanDocument(db.QueryRow(ctx, query, args...), out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Update(ctx context.Context, f storage.Filter, set map[string]any, out any) error {
	const op = "storage.postgresql.Update"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.update(ctx, db, f, set, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) update(ctx context.Context, db *pgxpool.Pool, f storage.Filter, set map[string]any, out any) error {
	where, err := c.where(f)
	if err != nil {
		return err
	}

	patch := make(bson.M, len(set))
	for k, v := range set {
		if k != "_id" {
			patch[k] = v
		}
	}

	data, err := storage.EncodeExtJSON(patch)
	if err != nil {
		return err
	}

	updatedAt, ok := set["updatedAt"].(time.Time)
	if !ok {
		updatedAt = time.Now().UTC()
	}

	// изменяется только первый подходящий документ, как в MongoDB
	target := sq.Select("id").From(documentsTable).Where(where).OrderBy("created_at").Limit(1)

	query, args, err := sq.Update(documentsTable).
		Set("data", sq.Expr("data || ?::jsonb", string(data))).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"collection": c.name}).
		Where(sq.Expr("id = (?)", target)).
		Suffix("RETURNING data").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	return scanDocument(db.QueryRow(ctx, query, args...), out)
}

func (c *Collection) Upsert(ctx context.Context, f storage.Filter, set, setOnInsert map[string]any, out any) error {
	const op = "storage.postgresql.Upsert"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = c.update(ctx, db, f, set, out)
	if !errors.Is(err, storage.ErrNotFound) {
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	doc := bson.M{}
	for _, fields := range []map[string]any{f.Eq, setOnInsert, set} {
		for k, v := range fields {
			doc[k] = v
		}
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	err = c.insert(ctx, db, doc)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// параллельный upsert успел вставить документ
		err = c.update(ctx, db, f, set, out)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.FindOne(ctx, storage.ByID(doc["_id"].(primitive.ObjectID)), out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection) Delete(ctx context.Context, f storage.Filter) error {
	const op = "storage.postgresql.Delete"

	db, err := c.storage.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	where, err := c.where(f)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	target := sq.Select("id").From(documentsTable).Where(where).OrderBy("created_at").Limit(1)

	query, args, err := sq.Delete(documentsTable).
		Where(sq.Eq{"collection": c.name}).
		Where(sq.Expr("id = (?)", target)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (c *Collection) where(f storage.Filter) (sq.And, error) {
	where := sq.And{sq.Eq{"collection": c.name}}

	contains := bson.M{}
	for field, value := range f.Eq {
		if field == "_id" {
			id, ok := value.(primitive.ObjectID)
			if !ok {
				return nil, fmt.Errorf("_id filter must be an ObjectID, got %T", value)
			}
			where = append(where, sq.Eq{"id": id.Hex()})
			continue
		}
		contains[field] = value
	}

	if len(contains) > 0 {
		data, err := storage.EncodeExtJSON(contains)
		if err != nil {
			return nil, err
		}
		where = append(where, sq.Expr("data @> ?::jsonb", string(data)))
	}

	for field, values := range f.AnyOf {
		if !fieldName.MatchString(field) {
			return nil, fmt.Errorf("invalid field name %q", field)
		}
		// ?? экранирует оператор ?| от подстановки плейсхолдеров
		where = append(where, sq.Expr(fmt.Sprintf("data->'%s' ??| ?", field), pq.Array(values)))
	}

	return where, nil
}

func orderBy(fields []storage.SortField) ([]string, error) {
	clauses := make([]string, 0, len(fields)+1)

	for _, f := range fields {
		var column string
		switch f.Field {
		case "createdAt":
			column = "created_at"
		case "updatedAt":
			column = "updated_at"
		default:
			if !fieldName.MatchString(f.Field) {
				return nil, fmt.Errorf("invalid sort field %q", f.Field)
			}
			column = fmt.Sprintf("data->'%s'", f.Field)
		}

		if f.Desc {
			column += " DESC"
		}
		clauses = append(clauses, column)
	}

	tiebreak := "id"
	if len(fields) > 0 && fields[0].Desc {
		tiebreak += " DESC"
	}

	return append(clauses, tiebreak), nil
}

func scanDocument(row pgx.Row, out any) error {
	var data []byte
	if err := row.Scan(&data); err != nil {
		return mapError(err)
	}

	return storage.DecodeExtJSON(data, out)
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, pgErr.ConstraintName)
	}

	return err
}
