package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

const collectionMenuItems = "menu_items"

// MenuRepository implements ports.MenuRepository on MongoDB. Category names
// live in the menu root's categories array; items are flat documents filtered
// by restaurant and category.
type MenuRepository struct {
	roots *mongo.Collection
	items *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		roots: db.Collection(collectionMenus),
		items: db.Collection(collectionMenuItems),
	}
}

func (r *MenuRepository) RegisterCategory(ctx context.Context, restaurantID, category string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.roots.UpdateOne(ctx,
		bson.M{"_id": restaurantID},
		bson.M{"$addToSet": bson.M{"categories": category}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (r *MenuRepository) Categories(ctx context.Context, restaurantID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var root domain.MenuRoot
	err := r.roots.FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&root)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, err
	}
	return root.Categories, nil
}

func (r *MenuRepository) InsertItem(ctx context.Context, item *domain.MenuItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.items.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, id, restaurantID, category string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "restaurant_id": restaurantID, "category": category}
	res, err := r.items.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id, restaurantID, category string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "restaurant_id": restaurantID, "category": category}
	res, err := r.items.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *MenuRepository) ItemsByCategory(ctx context.Context, restaurantID, category string) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.items.Find(ctx, bson.M{"restaurant_id": restaurantID, "category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) ItemsByName(ctx context.Context, restaurantID, category, name string) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"restaurant_id": restaurantID, "category": category, "name": name}
	cursor, err := r.items.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return items, nil
}

func (r *MenuRepository) DeleteAll(ctx context.Context, restaurantID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.items.DeleteMany(ctx, bson.M{"restaurant_id": restaurantID}); err != nil {
		return err
	}
	_, err := r.roots.DeleteOne(ctx, bson.M{"_id": restaurantID})
	return err
}

// EnsureIndexes creates the indexes backing the item lookups.
func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "category", Value: 1}, {Key: "name", Value: 1}}},
	}

	_, err := r.items.Indexes().CreateMany(ctx, indexes)
	return err
}

var _ ports.MenuRepository = (*MenuRepository)(nil)
