package store

import (
	"context"
	"fmt"

	"github.com/Bowya123/swiggybackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderStore records orders for authenticated users.
type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(database *mongo.Database) *OrderStore {
	return &OrderStore{coll: database.Collection("orders")}
}

// Place records an order. userID must come from the authenticated identity,
// never from the request body. restaurantID, items and totalPrice are
// stored exactly as the client asserted them; the total is not recomputed
// and the restaurant reference is not checked.
func (s *OrderStore) Place(ctx context.Context, userID, restaurantID primitive.ObjectID, items []models.OrderItem, totalPrice float64) (*models.Order, error) {
	if items == nil {
		items = []models.OrderItem{}
	}
	order := models.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		Items:        items,
		TotalPrice:   totalPrice,
		Status:       models.StatusPlaced,
	}
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return &order, nil
}

// ListByUser returns the caller's orders in natural (insertion) order.
func (s *OrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cur, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
