package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

const (
	collectionRestaurants = "restaurants"
	collectionMenus       = "menus"
)

// RestaurantRepository implements ports.RestaurantRepository on MongoDB.
type RestaurantRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{db: db, col: db.Collection(collectionRestaurants)}
}

// AllocateID draws a fresh ObjectID from the driver. The hex form is what
// gets reused as the identity-store user id.
func (r *RestaurantRepository) AllocateID() string {
	return primitive.NewObjectID().Hex()
}

// Create inserts the account document and its empty menu root inside one
// transaction, so the pair commits or aborts as a unit.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := r.col.InsertOne(sc, restaurant); err != nil {
			return nil, err
		}
		root := domain.MenuRoot{RestaurantID: restaurant.ID, Categories: []string{}}
		if _, err := r.db.Collection(collectionMenus).InsertOne(sc, root); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var restaurant domain.Restaurant
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []*domain.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByName matches the name field exactly; the query is case-sensitive by
// collection default.
func (r *RestaurantRepository) FindByName(ctx context.Context, name string) ([]*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"name": name})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []*domain.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	return restaurants, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return r.Update(ctx, id, map[string]any{"password_hash": hash})
}

// Delete removes the account document. Deleting an id that does not exist is
// a no-op, matching the document store's idempotent delete semantics.
func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)
