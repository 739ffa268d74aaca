package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
	"github.com/nexashop/storefront/internal/domains/cart/ports"
)

const collectionName = "carts"

var _ ports.Repository = (*Repository)(nil)

// Repository durably stores one cart document per visitor in MongoDB.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(collectionName)}
}

func (r *Repository) Get(ctx context.Context, visitorID string) (*domain.Cart, error) {
	var cart domain.Cart
	filter := bson.M{"visitor_id": visitorID}
	err := r.collection.FindOne(ctx, filter).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

// Upsert writes the whole cart document, replacing any previous state for
// the visitor. Concurrent writers are last-write-wins.
func (r *Repository) Upsert(ctx context.Context, cart *domain.Cart) error {
	filter := bson.M{"visitor_id": cart.VisitorID}
	update := bson.M{"$set": cart}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, visitorID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"visitor_id": visitorID})
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if result.DeletedCount == 0 {
		return ports.ErrCartNotFound
	}
	return nil
}
