package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoCollection = "leads"

type leadDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Source    string    `bson:"source"`
	IP        string    `bson:"ip"`
	UserAgent string    `bson:"user_agent"`
	CreatedAt time.Time `bson:"created_at"`
}

func toDocument(l Lead) leadDocument {
	return leadDocument{
		ID:        l.ID.String(),
		Email:     l.Email,
		Source:    l.Source,
		IP:        l.IP,
		UserAgent: l.UserAgent,
		CreatedAt: l.CreatedAt,
	}
}

func (d leadDocument) toLead() (Lead, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Lead{}, err
	}
	return Lead{
		ID:        id,
		Email:     d.Email,
		Source:    d.Source,
		IP:        d.IP,
		UserAgent: d.UserAgent,
		CreatedAt: d.CreatedAt.UTC(),
	}, nil
}

// MongoStorage stores leads in the "leads" collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage ensures the unique email index exists.
func NewMongoStorage(ctx context.Context, db *mongo.Database) (*MongoStorage, error) {
	coll := db.Collection(mongoCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("leads_email_key"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("leads_created_at_idx"),
		},
	})
	if err != nil {
		return nil, err
	}
	return &MongoStorage{coll: coll}, nil
}

func (s *MongoStorage) CreateLead(ctx context.Context, l Lead) error {
	if _, err := s.coll.InsertOne(ctx, toDocument(l)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateLead
		}
		return err
	}
	return nil
}

func (s *MongoStorage) GetLeadByEmail(ctx context.Context, email string) (*Lead, error) {
	var doc leadDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	l, err := doc.toLead()
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *MongoStorage) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []leadDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	leads := make([]Lead, 0, len(docs))
	for _, doc := range docs {
		l, err := doc.toLead()
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}
