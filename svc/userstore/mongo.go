package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/credkit/svc/auth"
)

const defaultMongoCollection = "users"

type userDocument struct {
	ID           bson.ObjectID  `bson:"_id,omitempty"`
	Email        string         `bson:"email"`
	Name         string         `bson:"name,omitempty"`
	Active       bool           `bson:"active"`
	Profile      map[string]any `bson:"profile,omitempty"`
	PasswordHash string         `bson:"passwordHash"`
	CreatedAt    time.Time      `bson:"createdAt"`
}

func (d userDocument) record() *auth.Record {
	profile := make(map[string]any, len(d.Profile))
	for k, v := range d.Profile {
		profile[k] = plainBSON(v)
	}
	if len(profile) == 0 {
		profile = nil
	}
	return &auth.Record{
		User: auth.User{
			ID:        d.ID.Hex(),
			Email:     d.Email,
			Name:      d.Name,
			Active:    d.Active,
			Profile:   profile,
			CreatedAt: d.CreatedAt.UTC(),
		},
		PasswordHash: d.PasswordHash,
	}
}

// plainBSON turns decoded bson containers into plain maps and slices so
// profile values serialize as ordinary JSON.
func plainBSON(v any) any {
	switch t := v.(type) {
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plainBSON(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = plainBSON(val)
		}
		return m
	case bson.A:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = plainBSON(val)
		}
		return s
	default:
		return v
	}
}

// Mongo is an auth.Store backed by a MongoDB collection.
type Mongo struct {
	coll *mongo.Collection
}

// MongoOption configures a Mongo store.
type MongoOption func(*mongoOptions)

type mongoOptions struct {
	collection string
}

// WithCollection overrides the collection name. Defaults to "users".
func WithCollection(name string) MongoOption {
	return func(o *mongoOptions) {
		if name != "" {
			o.collection = name
		}
	}
}

// NewMongo returns a store over a collection of db. Call EnsureIndexes
// before serving traffic.
func NewMongo(db *mongo.Database, opts ...MongoOption) *Mongo {
	o := mongoOptions{collection: defaultMongoCollection}
	for _, opt := range opts {
		opt(&o)
	}
	return &Mongo{coll: db.Collection(o.collection)}
}

// EnsureIndexes creates the unique email index. It is idempotent.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("created_order"),
		},
	})
	if err != nil {
		return fmt.Errorf("userstore: create mongo indexes: %w", err)
	}
	return nil
}

// CreateUser inserts rec and returns the hex ObjectID assigned to it.
func (s *Mongo) CreateUser(ctx context.Context, rec *auth.Record) (string, error) {
	doc := userDocument{
		ID:           bson.NewObjectID(),
		Email:        rec.Email,
		Name:         rec.Name,
		Active:       rec.Active,
		Profile:      rec.Profile,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", auth.ErrDuplicateIdentity
		}
		return "", fmt.Errorf("userstore: insert user: %w", err)
	}
	return doc.ID.Hex(), nil
}

// FindByEmail looks up a record by its normalized email.
func (s *Mongo) FindByEmail(ctx context.Context, email string) (*auth.Record, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByID looks up a record by hex ObjectID. Ids that do not parse are
// reported as auth.ErrNotFound.
func (s *Mongo) FindByID(ctx context.Context, id string) (*auth.Record, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrNotFound
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// ListAll returns every record ordered by creation time.
func (s *Mongo) ListAll(ctx context.Context) ([]*auth.Record, error) {
	cursor, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("userstore: list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("userstore: decode users: %w", err)
	}

	out := make([]*auth.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.record())
	}
	return out, nil
}

func (s *Mongo) findOne(ctx context.Context, filter bson.D) (*auth.Record, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("userstore: find user: %w", err)
	}
	return doc.record(), nil
}
