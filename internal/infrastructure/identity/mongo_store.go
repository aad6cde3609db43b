// Package identity implements the identity store on a dedicated MongoDB
// database. The store fails independently of the document database; the
// account service treats it as an external collaborator and owns the
// cross-store consistency contract.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

const (
	collectionUsers = "users"
	defaultTimeout  = 10 * time.Second
)

// MongoStore implements ports.IdentityStore. Records are keyed by the shared
// account id (_id), never by a store-generated one.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionUsers)}
}

func (s *MongoStore) Create(ctx context.Context, rec *domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := *rec
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrIdentityExists
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.Identity
	if err := s.col.FindOne(ctx, filter).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &rec, nil
}

func (s *MongoStore) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"password_hash": hash, "updated_at": time.Now().UTC()}}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update identity credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// Delete removes the record. Unlike the document store, deleting an unknown
// id is an error here, mirroring how managed identity services behave.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index used by login.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

var _ ports.IdentityStore = (*MongoStore)(nil)
